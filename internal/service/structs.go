package service

import (
	"time"

	"github.com/CreatorKit/api-service/internal/model"
)

type UserData struct {
	Name       string `json:"name"`
	IsSignUp   bool   `json:"isSignUp"`
	UserID     string `json:"userId"`
	EmailID    string `json:"emailId"`
	ProfilePic string `json:"profilePic"`
	Token      string `json:"token"`
}

type ProfileData struct {
	Name                string    `json:"name"`
	Handle              string    `json:"handle"`
	EmailID             string    `json:"emailId"`
	IsVerified          bool      `json:"isVerified"`
	ProfilePic          string    `json:"profilePic"`
	OnboardingCompleted bool      `json:"onboardingCompleted"`
	CreatedAt           time.Time `json:"createdAt"`
}

type HomeData struct {
	Name                 string `json:"name"`
	Avatar               string `json:"avatar"`
	EmailID              string `json:"emailId"`
	AICredits            int    `json:"aiCredits"`
	OnboardingCompleted  bool   `json:"onboardingCompleted"`
	CurrentWorkspaceName string `json:"currentWorkspaceName"`
	CurrentWorkspaceID   string `json:"currentWorkspaceId"`
	CurrentWorkspaceLogo string `json:"currentWorkspaceLogo"`
	PlanType             string `json:"planType"`
}

type GenerationInput struct {
	TextPrompt string
	SizeCode   string
	NoOfImages int
}

type GenerationView struct {
	GenerationRecordID string                 `json:"generationRecordId"`
	Images             []model.GeneratedImage `json:"images"`
	Prompt             string                 `json:"prompt"`
	CreatedAt          time.Time              `json:"createdAt"`
}

type Pagination struct {
	TotalRecords int  `json:"totalRecords"`
	TotalPages   int  `json:"totalPages"`
	CurrentPage  int  `json:"currentPage"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
	Limit        int  `json:"limit"`
}

type HistoryData struct {
	Records    []*GenerationView `json:"records"`
	Pagination Pagination        `json:"pagination"`
}
