package handler

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) workspaceCheckAuth(c *gin.Context) {
	userID := c.GetString(ctxUserID)

	respondSuccess(c, "User authenticated successfully", gin.H{
		"userId": userID,
	})
}

func (h *Handler) workspaceHome(c *gin.Context) {
	userID := c.GetString(ctxUserID)

	// first visit after sign-in has no workspace yet; the service then
	// falls back to the user's personal workspace
	workspaceID := c.GetString(ctxWorkspaceID)

	data, err := h.services.Workspace.Home(c.Request.Context(), userID, workspaceID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondSuccess(c, "Workspace home data retrieved successfully", data)
}
