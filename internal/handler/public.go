package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) healthCheck(c *gin.Context) {
	respondSuccess(c, "API is up and running", nil)
}

func (h *Handler) uploadImage(c *gin.Context) {
	workspaceID := c.GetString(ctxWorkspaceID)
	if workspaceID == "" {
		respondError(c, http.StatusBadRequest, "Workspace ID is required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondValidationErrors(c, []FieldError{{Field: "file", Message: "file is required"}})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	defer file.Close()

	url, err := h.services.Public.UploadImage(c.Request.Context(), workspaceID, fileHeader.Filename, file)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondSuccess(c, "Image uploaded successfully", gin.H{
		"imageUrl": url,
	})
}
