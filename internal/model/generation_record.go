package model

import "time"

// Generation record lifecycle. A pending record is written before the
// provider is invoked and finalized once the outcome is known, so a crash
// mid-generation always leaves an auditable row behind.
const (
	GenerationStatusPending   = "pending"
	GenerationStatusCompleted = "completed"
	GenerationStatusFailed    = "failed"
)

type GeneratedImage struct {
	ID       string `json:"imageId"`
	ImageURL string `json:"imageUrl"`
	Feedback string `json:"feedback"`
}

type GenerationRecord struct {
	ID              string           `json:"id"`
	GenerationName  string           `json:"generationName"`
	SizeID          string           `json:"sizeId"`
	Width           int              `json:"width"`
	Height          int              `json:"height"`
	PromptText      string           `json:"promptText"`
	WorkspaceID     string           `json:"workspaceId"`
	UserID          string           `json:"userId"`
	UserInfo        UserInfo         `json:"userInfo"`
	GeneratedImages []GeneratedImage `json:"generatedImages"`
	IsPublic        bool             `json:"isPublic"`
	GenerationCost  int              `json:"generationCost"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}
