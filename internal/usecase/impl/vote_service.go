package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/usecase"
)

// voteService implements the VoteUsecase interface.
type voteService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// VoteServiceParams holds dependencies for VoteService, injected by Fx.
type VoteServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewVoteService is the constructor for voteService.
func NewVoteService(params VoteServiceParams) usecase.VoteUsecase {
	return &voteService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *voteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CastVote applies a vote transition for the acting user. Direction 1 adds a
// vote, direction 0 removes one. Adding twice is a conflict; removing an
// absent vote is not-found. The existence check and the mutation run in one
// transaction, and the unique constraint on (post_id, owner_id) is the final
// authority, so two concurrent adds resolve to one success and one conflict.
func (srv *voteService) CastVote(ctx context.Context, actorID int64, input *usecase.CastVoteInput) (*entity.Vote, error) {
	if input.Dir != entity.VoteDirectionAdd && input.Dir != entity.VoteDirectionRemove {
		return nil, errors.Wrapf(domainerrors.ErrInvalidVoteDirection, "unsupported vote direction: %d", input.Dir)
	}

	var casted *entity.Vote

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()
		voteRepo := repoFactory.VoteRepo()

		if _, err := postRepo.FindByID(ctx, input.PostID); err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
			}

			return errors.Wrap(err, "failed to find post")
		}

		switch input.Dir {
		case entity.VoteDirectionAdd:
			newVote := &entity.Vote{
				PostID:  input.PostID,
				OwnerID: actorID,
			}
			if err := voteRepo.Create(ctx, newVote); err != nil {
				if errors.Is(err, repository.ErrDuplicateKey) {
					return errors.Wrap(domainerrors.ErrAlreadyVoted, "vote already exists")
				}

				return errors.Wrap(err, "failed to create vote")
			}
			casted = newVote
		case entity.VoteDirectionRemove:
			if err := voteRepo.Delete(ctx, input.PostID, actorID); err != nil {
				if errors.Is(err, repository.ErrVoteNotFound) {
					return errors.Wrap(domainerrors.ErrVoteNotFound, "vote does not exist")
				}

				return errors.Wrap(err, "failed to delete vote")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Debug("Vote transition rejected",
			slog.Int64("postID", input.PostID),
			slog.Int64("actorID", actorID),
			slog.Int("dir", int(input.Dir)),
			slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Vote transition applied",
		slog.Int64("postID", input.PostID),
		slog.Int64("actorID", actorID),
		slog.Int("dir", int(input.Dir)))

	return casted, nil
}
