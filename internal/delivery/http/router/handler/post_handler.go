package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"pulse/internal/delivery/http/response"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/usecase"
)

const (
	defaultPostLimit = 10
	maxPostLimit     = 100
)

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
	Logger *slog.Logger
}

// PostHandler holds dependencies for post-related handlers
type PostHandler struct {
	postUC usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler
func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{
		postUC: params.PostUC,
		logger: params.Logger,
	}
}

// PostRequest represents the request body for creating or replacing a post.
// Published defaults to true when the field is omitted.
type PostRequest struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Published *bool  `json:"published"`
}

func (req *PostRequest) published() bool {
	if req.Published == nil {
		return true
	}

	return *req.Published
}

// PostResponse is the public projection of a post.
type PostResponse struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
}

// PostWithVotesResponse pairs a post with its current vote count.
type PostWithVotesResponse struct {
	Post  *PostResponse `json:"post"`
	Votes int64         `json:"votes"`
}

func toPostResponse(post *entity.Post) *PostResponse {
	return &PostResponse{
		ID:        post.ID,
		OwnerID:   post.OwnerID,
		Title:     post.Title,
		Content:   post.Content,
		Published: post.Published,
		CreatedAt: post.CreatedAt,
	}
}

func toPostWithVotesResponse(post *entity.PostWithVotes) *PostWithVotesResponse {
	return &PostWithVotesResponse{
		Post:  toPostResponse(post.Post),
		Votes: post.Votes,
	}
}

// getUserID extracts the authenticated user's id set by the auth middleware.
// Reaching a guarded handler without it is an auth failure, not a 500.
func getUserID(c echo.Context) (int64, error) {
	userID, ok := c.Get("userID").(int64)
	if !ok {
		return 0, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return userID, nil
}

// CreatePost handles post creation
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	post, err := h.postUC.CreatePost(c.Request().Context(), userID, &usecase.CreatePostInput{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.published(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPostResponse(post), "Post created successfully")
}

// ListPosts handles listing posts with vote counts
func (h *PostHandler) ListPosts(c echo.Context) error {
	limit := intQueryParam(c, "limit", defaultPostLimit)
	if limit > maxPostLimit {
		limit = maxPostLimit
	}
	offset := intQueryParam(c, "offset", 0)

	posts, err := h.postUC.ListPosts(c.Request().Context(), &usecase.ListPostsInput{
		Limit:  limit,
		Offset: offset,
		Search: c.QueryParam("search"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]*PostWithVotesResponse, 0, len(posts))
	for _, post := range posts {
		items = append(items, toPostWithVotesResponse(post))
	}

	return response.Success(c, http.StatusOK, items, "Posts retrieved successfully")
}

// GetPost handles retrieving a single post with its vote count
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	post, err := h.postUC.GetPost(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPostWithVotesResponse(post), "Post retrieved successfully")
}

// UpdatePost handles full replacement of a post's content
func (h *PostHandler) UpdatePost(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	post, err := h.postUC.UpdatePost(c.Request().Context(), userID, id, &usecase.UpdatePostInput{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.published(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPostResponse(post), "Post updated successfully")
}

// DeletePost handles post deletion
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	if err := h.postUC.DeletePost(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// intQueryParam parses an integer query parameter, falling back to a default
// on absence or garbage.
func intQueryParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
