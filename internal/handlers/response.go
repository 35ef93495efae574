package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_assistant_app/internal/apperrors"
	"github.com/SscSPs/finance_assistant_app/internal/dto"
	"github.com/SscSPs/finance_assistant_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

func respondOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.NewAPIResponse(message, data))
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.NewErrorResponse(status, message))
}

// respondServiceError maps a service error to its HTTP status. Client errors
// echo the error text; anything else is logged and answered with fallbackMsg.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, notFoundMsg, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(notFoundMsg)
		respondError(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		respondError(c, http.StatusForbidden, "Forbidden")
	case errors.Is(err, apperrors.ErrUnauthorized):
		respondError(c, http.StatusUnauthorized, "Unauthorized")
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, fallbackMsg)
	}
}

// requireUserID returns the authenticated user ID or writes a 401.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return userID, true
}
