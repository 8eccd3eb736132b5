package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduverify/internship-portal/internal/app/models/dto"
	"github.com/eduverify/internship-portal/internal/pkg/apperrors"
	"github.com/eduverify/internship-portal/internal/pkg/logger"
)

// HandleAPIError translates service errors into HTTP responses. Every
// failure body is `{"message": ...}`; anything outside the taxonomy is a 500
// with a generic message, with the detail logged server-side only.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		respondError(c, http.StatusBadRequest, err, "Invalid request")
	case errors.Is(err, apperrors.ErrStudentNotFound):
		respondError(c, http.StatusNotFound, err, "Student not found. Please verify your credentials.")
	case errors.Is(err, apperrors.ErrNameMismatch):
		respondError(c, http.StatusForbidden, err, "Name does not match registration records.")
	case errors.Is(err, apperrors.ErrTemplateMissing):
		respondError(c, http.StatusInternalServerError, err, "Document template not found")
	default:
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Msg("Unexpected error handling request")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Message: "Server Error: Failed to generate document",
		})
	}
}

func respondError(c *gin.Context, status int, err error, fallback string) {
	c.JSON(status, dto.ErrorResponse{
		Message: apperrors.ClientMessage(err, fallback),
	})
}
