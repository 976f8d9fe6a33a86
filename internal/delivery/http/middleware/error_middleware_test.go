package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/internal/delivery/http/response"
	domainerrors "pulse/internal/domain/errors"
)

func executeErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/posts/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	NewErrorMiddleware(logger).HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_AppErrorMapping(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantErrorCode string
	}{
		{"unauthorized", domainerrors.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"ownership violation", domainerrors.ErrPostOwnershipViolation, http.StatusForbidden, "POST_OWNERSHIP_VIOLATION"},
		{"post not found", domainerrors.ErrPostNotFound, http.StatusNotFound, "POST_NOT_FOUND"},
		{"already voted", domainerrors.ErrAlreadyVoted, http.StatusConflict, "ALREADY_VOTED"},
		{"vote not found", domainerrors.ErrVoteNotFound, http.StatusNotFound, "VOTE_NOT_FOUND"},
		{"invalid vote direction", domainerrors.ErrInvalidVoteDirection, http.StatusBadRequest, "INVALID_VOTE_DIRECTION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Wrapped errors must map identically to bare sentinels.
			rec, body := executeErrorHandler(t, errors.Wrap(tt.err, "context"))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantErrorCode, body.Error.Code)
		})
	}
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := executeErrorHandler(t, echo.NewHTTPError(http.StatusBadRequest, "binding failed"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Equal(t, "binding failed", body.Message)
}

// Internal errors must never leak their cause to the client.
func TestErrorMiddleware_UnknownErrorIsGeneric(t *testing.T) {
	rec, body := executeErrorHandler(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, body.Message, "connection refused")
	assert.NotContains(t, body.Error.Details, "connection refused")
}
