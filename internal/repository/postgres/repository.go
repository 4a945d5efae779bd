package postgres

import (
	"context"

	"github.com/CreatorKit/api-service/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type User interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, emailID string) (*model.User, error)
	UpdateGoogleInfo(ctx context.Context, id, name, profilePic, googleID string) error
}

type Workspace interface {
	Create(ctx context.Context, w *model.Workspace) error
	FindByID(ctx context.Context, id string) (*model.Workspace, error)
	FindPersonalByOwner(ctx context.Context, userID string) (*model.Workspace, error)
	ReserveCredits(ctx context.Context, id string, units int) (bool, error)
	RefundCredits(ctx context.Context, id string, units int) error
}

type WorkspaceMember interface {
	Create(ctx context.Context, m *model.WorkspaceMember) error
	SetStatus(ctx context.Context, workspaceID, userID, status string) error
}

type GenerationRecord interface {
	Create(ctx context.Context, rec *model.GenerationRecord) error
	Finalize(ctx context.Context, id string, images []model.GeneratedImage, cost int) error
	MarkFailed(ctx context.Context, id string) error
	FindCompletedByWorkspace(ctx context.Context, workspaceID string, limit, offset int) ([]*model.GenerationRecord, error)
	CountCompletedByWorkspace(ctx context.Context, workspaceID string) (int, error)
}

type PostgresRepository struct {
	User
	Workspace
	WorkspaceMember
	GenerationRecord
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		User:             newUserRepo(db),
		Workspace:        newWorkspaceRepo(db),
		WorkspaceMember:  newWorkspaceMemberRepo(db),
		GenerationRecord: newGenerationRecordRepo(db),
	}
}
