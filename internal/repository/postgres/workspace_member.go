package postgres

import (
	"context"

	"github.com/CreatorKit/api-service/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type workspaceMemberRepo struct {
	db *pgxpool.Pool
}

func newWorkspaceMemberRepo(db *pgxpool.Pool) WorkspaceMember {
	return &workspaceMemberRepo{db: db}
}

func (r *workspaceMemberRepo) Create(ctx context.Context, m *model.WorkspaceMember) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO workspace_members(id, user_id, workspace_id, workspace_name, permission, status, invited_by, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.UserID, m.WorkspaceID, m.WorkspaceName, m.Permission, m.Status, m.InvitedBy, m.CreatedAt, m.UpdatedAt,
	)
	return err
}

func (r *workspaceMemberRepo) SetStatus(ctx context.Context, workspaceID, userID, status string) error {
	_, err := r.db.Exec(
		ctx,
		"UPDATE workspace_members SET status = $1, updated_at = now() WHERE workspace_id = $2 AND user_id = $3",
		status, workspaceID, userID,
	)
	return err
}
