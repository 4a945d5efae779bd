package postgres

import (
	"context"
	"errors"

	"github.com/CreatorKit/api-service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type workspaceRepo struct {
	db *pgxpool.Pool
}

func newWorkspaceRepo(db *pgxpool.Pool) Workspace {
	return &workspaceRepo{db: db}
}

func (r *workspaceRepo) Create(ctx context.Context, w *model.Workspace) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO workspaces(id, name, team_size, workspace_type, ai_credits, maximum_credits, logo, user_id, plan_type, subscription_status, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		w.ID, w.Name, w.TeamSize, w.WorkspaceType, w.AICredits, w.MaximumCredits, w.Logo, w.OwnerUserID, w.PlanType, w.SubscriptionStatus, w.CreatedAt, w.UpdatedAt,
	)
	return err
}

func (r *workspaceRepo) FindByID(ctx context.Context, id string) (*model.Workspace, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *workspaceRepo) FindPersonalByOwner(ctx context.Context, userID string) (*model.Workspace, error) {
	return r.findOne(ctx, "user_id = $1 AND workspace_type = 'personal'", userID)
}

func (r *workspaceRepo) findOne(ctx context.Context, where string, arg any) (*model.Workspace, error) {
	w := new(model.Workspace)
	err := r.db.QueryRow(
		ctx,
		"SELECT id, name, team_size, workspace_type, ai_credits, maximum_credits, logo, user_id, plan_type, subscription_status, created_at, updated_at FROM workspaces WHERE "+where,
		arg,
	).Scan(&w.ID, &w.Name, &w.TeamSize, &w.WorkspaceType, &w.AICredits, &w.MaximumCredits, &w.Logo, &w.OwnerUserID, &w.PlanType, &w.SubscriptionStatus, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return w, nil
}

// ReserveCredits debits units from the workspace balance in a single
// conditional update, so concurrent generations can never overdraw it.
func (r *workspaceRepo) ReserveCredits(ctx context.Context, id string, units int) (bool, error) {
	tag, err := r.db.Exec(
		ctx,
		"UPDATE workspaces SET ai_credits = ai_credits - $1, updated_at = now() WHERE id = $2 AND ai_credits >= $1",
		units, id,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

func (r *workspaceRepo) RefundCredits(ctx context.Context, id string, units int) error {
	_, err := r.db.Exec(
		ctx,
		"UPDATE workspaces SET ai_credits = ai_credits + $1, updated_at = now() WHERE id = $2",
		units, id,
	)
	return err
}
