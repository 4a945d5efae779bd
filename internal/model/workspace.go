package model

import "time"

const (
	WorkspaceTypePersonal = "personal"
	WorkspaceTypeTeam     = "team"
)

type Workspace struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	TeamSize           int       `json:"teamSize"`
	WorkspaceType      string    `json:"workspaceType"`
	AICredits          int       `json:"aiCredits"`
	MaximumCredits     int       `json:"maximumCredits"`
	Logo               string    `json:"logo"`
	OwnerUserID        string    `json:"userId"`
	PlanType           string    `json:"planType"`
	SubscriptionStatus string    `json:"subscriptionStatus"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
