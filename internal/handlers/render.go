package handlers

import (
	"errors"
	"net/http"

	"erp_backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

// renderServiceError maps service errors onto the wire. Field errors keep
// their per-field shape; everything unexpected collapses to a 500.
func renderServiceError(c *gin.Context, err error) {
	var fieldErrs services.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, fieldErrs)
		return
	}

	switch {
	case errors.Is(err, services.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"item_id": "Item Id Not Found"})
	case errors.Is(err, services.ErrOrderNotFound), errors.Is(err, services.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
	case errors.Is(err, services.ErrOrderCreateFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while creating order"})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"email": "user with this email already exists."})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, services.ErrUserNotActivated):
		c.JSON(http.StatusBadRequest, gin.H{"error": "The user has not been activated"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func bindError(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
}
