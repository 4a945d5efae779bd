package model

import "time"

type User struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Handle              string    `json:"handle"`
	EmailID             string    `json:"emailId"`
	IsVerified          bool      `json:"isVerified"`
	ProfilePic          string    `json:"profilePic"`
	GoogleID            *string   `json:"googleId"`
	OnboardingCompleted bool      `json:"onboardingCompleted"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// UserInfo is the denormalized snapshot of the requesting user stored
// inside a generation record.
type UserInfo struct {
	Name       string `json:"name"`
	ProfilePic string `json:"profilePic"`
	Handle     string `json:"handle"`
}
