package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/socialhub/api/internal/apperrors"
	"github.com/socialhub/api/internal/middleware"
)

// respondWithServiceError maps service error kinds to status codes. The error
// text is returned to the client for known kinds only.
func respondWithServiceError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials), errors.Is(err, apperrors.ErrInvalidMessage):
		middleware.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrUsernameConflict):
		middleware.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrAuthFailure):
		middleware.RespondWithError(c, http.StatusUnauthorized, err.Error())
	default:
		middleware.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
