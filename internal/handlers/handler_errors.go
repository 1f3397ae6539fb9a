package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fx_dashboard/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors to status codes and a JSON {"error"} body.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ValidationMessage(err)})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrTransport), errors.Is(err, apperrors.ErrMalformedRecord):
		logger.Error("Upstream rate source failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": apperrors.UserMessage(err, apperrors.FallbackFetchMessage)})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
