package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrebktas/modpack-assistant/internal/domain"
)

// respondError maps domain errors to distinct HTTP statuses so callers
// never see a generic 500 for a user-actionable failure.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrEmailTaken):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, domain.ErrAccountNotApproved):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, domain.ErrConversationNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domain.ErrInvalidApprovalToken),
		errors.Is(err, domain.ErrApprovalAlreadyResolved),
		errors.Is(err, domain.ErrInvalidAction):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domain.ErrGeneration):
		status = http.StatusBadGateway
		message = err.Error()
	}

	c.JSON(status, gin.H{"error": message})
}
