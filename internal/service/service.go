package service

import (
	"context"
	"io"

	"github.com/CreatorKit/api-service/internal/analytics"
	"github.com/CreatorKit/api-service/internal/mailer"
	"github.com/CreatorKit/api-service/internal/provider"
	"github.com/CreatorKit/api-service/internal/repository"
	"github.com/CreatorKit/api-service/internal/storage"
	"go.uber.org/zap"
)

type User interface {
	SendMailOTP(ctx context.Context, emailID string) error
	VerifyMailOTP(ctx context.Context, emailID string, otp int) (*UserData, error)
	VerifyGoogleLogin(ctx context.Context, accessToken string) (*UserData, error)
	Profile(ctx context.Context, userID string) (*ProfileData, error)
}

type Workspace interface {
	Home(ctx context.Context, userID, workspaceID string) (*HomeData, error)
}

type ImageGenerator interface {
	Generate(ctx context.Context, userID, workspaceID string, input GenerationInput) (*GenerationView, error)
	History(ctx context.Context, workspaceID string, page, limit int) (*HistoryData, error)
}

type Public interface {
	UploadImage(ctx context.Context, workspaceID, filename string, body io.Reader) (string, error)
}

type Service struct {
	logger *zap.Logger
	User
	Workspace
	ImageGenerator
	Public
}

func New(logger *zap.Logger, repo *repository.Repository, store storage.ObjectStorage, generator provider.ImageGenerator, mail mailer.Sender, events analytics.Publisher) *Service {
	return &Service{
		logger:         logger,
		User:           newUserService(logger, repo, mail, events),
		Workspace:      newWorkspaceService(logger, repo, events),
		ImageGenerator: newImageGeneratorService(logger, repo, store, generator, events),
		Public:         newPublicService(logger, store),
	}
}
