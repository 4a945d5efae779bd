package handler

import (
	"net/http"

	"github.com/CreatorKit/api-service/internal/service"
	"github.com/gin-gonic/gin"
)

type generateImagesInput struct {
	TextPrompt string `json:"textPrompt" binding:"required"`
	SizeCode   string `json:"sizeCode" binding:"required"`
	NoOfImages int    `json:"noOfImages" binding:"omitempty,min=1,max=10"`
}

func (h *Handler) generateImages(c *gin.Context) {
	var input generateImagesInput
	if !h.bindJSON(c, &input) {
		return
	}
	if input.NoOfImages == 0 {
		input.NoOfImages = 1
	}

	workspaceID := c.GetString(ctxWorkspaceID)
	if workspaceID == "" {
		respondError(c, http.StatusForbidden, "Workspace ID is required for this endpoint")
		return
	}

	view, err := h.services.ImageGenerator.Generate(c.Request.Context(), c.GetString(ctxUserID), workspaceID, service.GenerationInput{
		TextPrompt: input.TextPrompt,
		SizeCode:   input.SizeCode,
		NoOfImages: input.NoOfImages,
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondSuccess(c, "Images generated successfully", gin.H{
		"newImages": view,
	})
}

type imagesHistoryInput struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

func (h *Handler) imagesHistory(c *gin.Context) {
	var input imagesHistoryInput
	if !h.bindQuery(c, &input) {
		return
	}
	if input.Page == 0 {
		input.Page = 1
	}
	if input.Limit == 0 {
		input.Limit = 10
	}

	workspaceID := c.GetString(ctxWorkspaceID)
	if workspaceID == "" {
		respondError(c, http.StatusForbidden, "Workspace ID is required for this endpoint")
		return
	}

	data, err := h.services.ImageGenerator.History(c.Request.Context(), workspaceID, input.Page, input.Limit)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondSuccess(c, "Art history retrieved successfully", data)
}
