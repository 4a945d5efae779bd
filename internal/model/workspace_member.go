package model

import "time"

const (
	MemberPermissionOwner  = "OWNER"
	MemberPermissionAdmin  = "ADMIN"
	MemberPermissionEditor = "EDITOR"

	MemberStatusInvited = "invited"
	MemberStatusJoined  = "joined"
)

type WorkspaceMember struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	WorkspaceID   string    `json:"workspaceId"`
	WorkspaceName string    `json:"workspaceName"`
	Permission    string    `json:"permission"`
	Status        string    `json:"status"`
	InvitedBy     *string   `json:"invitedBy"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
