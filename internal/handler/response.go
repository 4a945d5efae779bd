package handler

import (
	"errors"
	"net/http"

	"github.com/CreatorKit/api-service/internal/service"
	"github.com/gin-gonic/gin"
)

func respondSuccess(c *gin.Context, message string, payload interface{}) {
	if payload == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": message,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"payload": payload,
	})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// respondServiceError maps known domain errors onto 400 with their own
// message; everything else is an opaque 500.
func (h *Handler) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInsufficientCredits),
		errors.Is(err, service.ErrGenerationFailed),
		errors.Is(err, service.ErrInvalidOTP),
		errors.Is(err, service.ErrOTPCooldown),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrWorkspaceNotFound),
		errors.Is(err, service.ErrGoogleAuthFailed):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		h.logger.Sugar().Errorf("unexpected error handling %s %s: %s", c.Request.Method, c.Request.URL.Path, err.Error())
		respondError(c, http.StatusInternalServerError, "Something went wrong! Please contact your admin")
	}
}
