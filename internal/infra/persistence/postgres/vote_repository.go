package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"
)

// voteRepository implements the repository.VoteRepository interface using GORM.
type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository is the constructor for voteRepository.
func NewVoteRepository(db *gorm.DB) repository.VoteRepository {
	return &voteRepository{db: db}
}

// Find retrieves the vote for a (post, owner) pair.
func (repo *voteRepository) Find(ctx context.Context, postID, ownerID int64) (*entity.Vote, error) {
	var voteM model.VoteModel

	if err := repo.db.WithContext(ctx).
		Where("post_id = ? AND owner_id = ?", postID, ownerID).
		First(&voteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find vote")
	}

	return toVoteDomain(&voteM), nil
}

// Create persists a new vote. The composite primary key rejects duplicates,
// including the loser of a concurrent insert race.
func (repo *voteRepository) Create(ctx context.Context, vote *entity.Vote) error {
	voteM := fromVoteDomain(vote)

	if err := repo.db.WithContext(ctx).Create(voteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateKey
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPostNotFound.WrapMessage("voted post or user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vote")
	}

	vote.CreatedAt = voteM.CreatedAt

	return nil
}

// Delete removes the vote for a (post, owner) pair.
func (repo *voteRepository) Delete(ctx context.Context, postID, ownerID int64) error {
	result := repo.db.WithContext(ctx).
		Where("post_id = ? AND owner_id = ?", postID, ownerID).
		Delete(&model.VoteModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete vote")
	}

	// If no rows were affected, it means the vote was not found.
	if result.RowsAffected == 0 {
		return repository.ErrVoteNotFound
	}

	return nil
}

// toVoteDomain converts a GORM VoteModel to a domain Vote entity.
func toVoteDomain(data *model.VoteModel) *entity.Vote {
	if data == nil {
		return nil
	}

	return &entity.Vote{
		PostID:    data.PostID,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
	}
}

// fromVoteDomain converts a domain Vote entity to a GORM VoteModel for persistence.
func fromVoteDomain(data *entity.Vote) *model.VoteModel {
	if data == nil {
		return nil
	}

	return &model.VoteModel{
		PostID:  data.PostID,
		OwnerID: data.OwnerID,
	}
}
