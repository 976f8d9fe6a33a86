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

// postRepository implements the repository.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// postWithVotesRow is the scan target for the joined post/vote-count query.
type postWithVotesRow struct {
	model.PostModel
	Votes int64
}

// FindByID retrieves a single post by its unique ID.
func (repo *postRepository) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	var postM model.PostModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// FindByIDWithVotes retrieves a single post together with its vote count.
func (repo *postRepository) FindByIDWithVotes(ctx context.Context, id int64) (*entity.PostWithVotes, error) {
	var row postWithVotesRow

	err := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Select("posts.*, COUNT(votes.post_id) AS votes").
		Joins("LEFT JOIN votes ON votes.post_id = posts.id").
		Where("posts.id = ?", id).
		Group("posts.id").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post with votes")
	}

	return &entity.PostWithVotes{
		Post:  toPostDomain(&row.PostModel),
		Votes: row.Votes,
	}, nil
}

// ListWithVotes retrieves posts with their vote counts, filtered by a title
// substring and paginated.
func (repo *postRepository) ListWithVotes(ctx context.Context, query repository.ListPostsQuery) ([]*entity.PostWithVotes, error) {
	var rows []postWithVotesRow

	err := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Select("posts.*, COUNT(votes.post_id) AS votes").
		Joins("LEFT JOIN votes ON votes.post_id = posts.id").
		Where("posts.title LIKE ?", "%"+query.TitleSearch+"%").
		Group("posts.id").
		Order("posts.id").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts with votes")
	}

	posts := make([]*entity.PostWithVotes, 0, len(rows))
	for i := range rows {
		posts = append(posts, &entity.PostWithVotes{
			Post:  toPostDomain(&rows[i].PostModel),
			Votes: rows[i].Votes,
		})
	}

	return posts, nil
}

// Create persists a new post entity to the database.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("post owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required post information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Update modifies an existing post entity in the database.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Save(postM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required post information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update post")
	}

	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Delete removes a post by its ID.
func (repo *postRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PostModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete post")
	}

	// If no rows were affected, it means the post was not found.
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// toPostDomain converts a GORM PostModel to a domain Post entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Title:     data.Title,
		Content:   data.Content,
		Published: data.Published,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPostDomain converts a domain Post entity to a GORM PostModel for persistence.
func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Title:     data.Title,
		Content:   data.Content,
		Published: data.Published,
		CreatedAt: data.CreatedAt,
	}
}
