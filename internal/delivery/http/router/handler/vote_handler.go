package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"pulse/internal/delivery/http/response"
	"pulse/internal/domain/entity"
	"pulse/internal/usecase"
)

// VoteHandlerParams holds dependencies for VoteHandler, injected by Fx.
type VoteHandlerParams struct {
	fx.In

	VoteUC usecase.VoteUsecase
	Logger *slog.Logger
}

// VoteHandler holds dependencies for vote-related handlers
type VoteHandler struct {
	voteUC usecase.VoteUsecase
	logger *slog.Logger
}

// NewVoteHandler is the constructor for VoteHandler
func NewVoteHandler(params VoteHandlerParams) *VoteHandler {
	return &VoteHandler{
		voteUC: params.VoteUC,
		logger: params.Logger,
	}
}

// CastVoteRequest represents the request body for a vote transition.
// Dir is a pointer so a literal 0 (remove) still counts as provided.
type CastVoteRequest struct {
	PostID int64 `json:"post_id" validate:"required"`
	Dir    *int8 `json:"dir" validate:"required"`
}

// VoteResponse is the public projection of a stored vote.
type VoteResponse struct {
	PostID  int64 `json:"post_id"`
	OwnerID int64 `json:"owner_id"`
}

// CastVote handles adding or removing the acting user's vote on a post
func (h *VoteHandler) CastVote(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CastVoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vote input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	vote, err := h.voteUC.CastVote(c.Request().Context(), userID, &usecase.CastVoteInput{
		PostID: req.PostID,
		Dir:    *req.Dir,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if *req.Dir == entity.VoteDirectionAdd {
		return response.Success(c, http.StatusCreated, &VoteResponse{
			PostID:  vote.PostID,
			OwnerID: vote.OwnerID,
		}, "Vote added successfully")
	}

	return response.Success(c, http.StatusCreated, nil, "Vote removed successfully")
}
