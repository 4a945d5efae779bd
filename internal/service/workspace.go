package service

import (
	"context"
	"time"

	"github.com/CreatorKit/api-service/internal/analytics"
	"github.com/CreatorKit/api-service/internal/model"
	"github.com/CreatorKit/api-service/internal/repository"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const defaultWorkspaceLogo = "https://fastly.picsum.photos/id/1/5000/3333.jpg?hmac=Asv2DU3rA_5D1xSe22xZK47WEAN0wjWeFOhzd13ujW4"

type workspaceService struct {
	logger *zap.Logger
	repo   *repository.Repository
	events analytics.Publisher
}

func newWorkspaceService(logger *zap.Logger, repo *repository.Repository, events analytics.Publisher) Workspace {
	return &workspaceService{
		logger: logger,
		repo:   repo,
		events: events,
	}
}

// Home resolves the workspace context for a user, lazily creating the
// personal workspace on first access when no workspace id is supplied.
func (s *workspaceService) Home(ctx context.Context, userID, workspaceID string) (*HomeData, error) {
	if workspaceID == "" {
		personal, err := s.repo.Postgres.Workspace.FindPersonalByOwner(ctx, userID)
		if err != nil {
			s.logger.Sugar().Errorf("failed to find personal workspace for user(%s): %s", userID, err.Error())
			return nil, errInternal
		}

		if personal == nil {
			personal, err = s.createPersonalWorkspace(ctx, userID)
			if err != nil {
				s.logger.Sugar().Errorf("failed to create personal workspace for user(%s): %s", userID, err.Error())
				return nil, errInternal
			}
		}

		workspaceID = personal.ID
	}

	workspace, err := s.repo.Postgres.Workspace.FindByID(ctx, workspaceID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find workspace(%s): %s", workspaceID, err.Error())
		return nil, errInternal
	}
	if workspace == nil {
		return nil, ErrWorkspaceNotFound
	}

	user, err := s.repo.Postgres.User.FindByID(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s): %s", userID, err.Error())
		return nil, errInternal
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// opening a workspace confirms a pending invite
	if err := s.repo.Postgres.WorkspaceMember.SetStatus(ctx, workspace.ID, user.ID, model.MemberStatusJoined); err != nil {
		s.logger.Sugar().Errorf("failed to update membership status for user(%s) in workspace(%s): %s", user.ID, workspace.ID, err.Error())
		return nil, errInternal
	}

	s.events.Publish(model.AnalyticsEvent{
		UserID:    userID,
		EventName: "Workspace Home Opened",
		Properties: map[string]interface{}{
			"workspaceId":   workspace.ID,
			"workspaceName": workspace.Name,
		},
	})

	return &HomeData{
		Name:                 user.Name,
		Avatar:               user.ProfilePic,
		EmailID:              user.EmailID,
		AICredits:            workspace.AICredits,
		OnboardingCompleted:  user.OnboardingCompleted,
		CurrentWorkspaceName: workspace.Name,
		CurrentWorkspaceID:   workspace.ID,
		CurrentWorkspaceLogo: workspace.Logo,
		PlanType:             workspace.PlanType,
	}, nil
}

func (s *workspaceService) createPersonalWorkspace(ctx context.Context, userID string) (*model.Workspace, error) {
	now := time.Now()
	freeCredits := viper.GetInt("credits.free")

	workspace := &model.Workspace{
		ID:                 uuid.NewString(),
		Name:               "Personal Workspace",
		TeamSize:           1,
		WorkspaceType:      model.WorkspaceTypePersonal,
		AICredits:          freeCredits,
		MaximumCredits:     freeCredits,
		Logo:               defaultWorkspaceLogo,
		OwnerUserID:        userID,
		PlanType:           "free",
		SubscriptionStatus: "inactive",
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Postgres.Workspace.Create(ctx, workspace); err != nil {
		return nil, err
	}

	member := &model.WorkspaceMember{
		ID:            uuid.NewString(),
		UserID:        userID,
		WorkspaceID:   workspace.ID,
		WorkspaceName: workspace.Name,
		Permission:    model.MemberPermissionOwner,
		Status:        model.MemberStatusJoined,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Postgres.WorkspaceMember.Create(ctx, member); err != nil {
		return nil, err
	}

	return workspace, nil
}
