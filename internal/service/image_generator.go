package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/CreatorKit/api-service/internal/analytics"
	"github.com/CreatorKit/api-service/internal/model"
	"github.com/CreatorKit/api-service/internal/provider"
	"github.com/CreatorKit/api-service/internal/repository"
	"github.com/CreatorKit/api-service/internal/storage"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type imageGeneratorService struct {
	logger    *zap.Logger
	repo      *repository.Repository
	store     storage.ObjectStorage
	generator provider.ImageGenerator
	events    analytics.Publisher
}

func newImageGeneratorService(logger *zap.Logger, repo *repository.Repository, store storage.ObjectStorage, generator provider.ImageGenerator, events analytics.Publisher) ImageGenerator {
	return &imageGeneratorService{
		logger:    logger,
		repo:      repo,
		store:     store,
		generator: generator,
		events:    events,
	}
}

// Generate runs one generation request end to end: reserve credits, write
// a pending record, invoke the provider, persist the surviving assets and
// finalize the record. Credits reserved for images that never materialized
// are refunded once the outcome is known.
func (s *imageGeneratorService) Generate(ctx context.Context, userID, workspaceID string, input GenerationInput) (*GenerationView, error) {
	size := sizeByCode(input.SizeCode)
	count := input.NoOfImages

	user, err := s.repo.Postgres.User.FindByID(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s): %s", userID, err.Error())
		return nil, errInternal
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	reserved, err := s.repo.Postgres.Workspace.ReserveCredits(ctx, workspaceID, count)
	if err != nil {
		s.logger.Sugar().Errorf("failed to reserve %d credits for workspace(%s): %s", count, workspaceID, err.Error())
		return nil, errInternal
	}
	if !reserved {
		return nil, ErrInsufficientCredits
	}

	record, err := s.createPendingRecord(ctx, user, workspaceID, input, size)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create generation record for workspace(%s): %s", workspaceID, err.Error())
		s.refund(ctx, workspaceID, count)
		return nil, errInternal
	}

	streams, err := s.generator.Generate(ctx, provider.GenerationInput{
		Prompt:      input.TextPrompt,
		AspectRatio: size.AspectRatio,
		Count:       count,
	})
	if err != nil {
		s.logger.Sugar().Errorf("provider call failed for record(%s): %s", record.ID, err.Error())
		s.failRecord(ctx, record.ID)
		s.refund(ctx, workspaceID, count)
		return nil, ErrGenerationFailed
	}

	images := s.persistAssets(ctx, workspaceID, streams)
	if len(images) == 0 {
		s.failRecord(ctx, record.ID)
		s.refund(ctx, workspaceID, count)
		return nil, ErrGenerationFailed
	}

	// billed by what actually survived, not by what was requested
	cost := len(images)
	if err := s.repo.Postgres.GenerationRecord.Finalize(ctx, record.ID, images, cost); err != nil {
		s.logger.Sugar().Errorf("failed to finalize record(%s): %s", record.ID, err.Error())
		s.failRecord(ctx, record.ID)
		s.refund(ctx, workspaceID, count)
		return nil, errInternal
	}

	if unused := count - cost; unused > 0 {
		s.refund(ctx, workspaceID, unused)
	}

	s.events.Publish(model.AnalyticsEvent{
		UserID:    userID,
		EventName: "Image Generated",
		Properties: map[string]interface{}{
			"workspaceId":        workspaceID,
			"sizeCode":           input.SizeCode,
			"noOfImages":         count,
			"aiCreditsUsed":      cost,
			"generationRecordId": record.ID,
		},
	})

	return &GenerationView{
		GenerationRecordID: record.ID,
		Images:             images,
		Prompt:             input.TextPrompt,
		CreatedAt:          record.CreatedAt,
	}, nil
}

func (s *imageGeneratorService) createPendingRecord(ctx context.Context, user *model.User, workspaceID string, input GenerationInput, size Size) (*model.GenerationRecord, error) {
	now := time.Now()

	name := input.TextPrompt
	if len(name) > 30 {
		name = name[:30]
	}

	record := &model.GenerationRecord{
		ID:             uuid.NewString(),
		GenerationName: fmt.Sprintf("Image generation: %s...", name),
		SizeID:         input.SizeCode,
		Width:          size.Width,
		Height:         size.Height,
		PromptText:     input.TextPrompt,
		WorkspaceID:    workspaceID,
		UserID:         user.ID,
		UserInfo: model.UserInfo{
			Name:       user.Name,
			ProfilePic: user.ProfilePic,
			Handle:     user.Handle,
		},
		GeneratedImages: []model.GeneratedImage{},
		Status:          model.GenerationStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Postgres.GenerationRecord.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// persistAssets uploads every stream it can and drops the ones it cannot;
// a partial batch is a valid outcome.
func (s *imageGeneratorService) persistAssets(ctx context.Context, workspaceID string, streams []io.ReadCloser) []model.GeneratedImage {
	var images []model.GeneratedImage
	for i, stream := range streams {
		key := assetKey(workspaceID, i)

		url, err := s.store.Upload(ctx, key, stream)
		stream.Close()
		if err != nil {
			s.logger.Sugar().Errorf("failed to upload asset %s: %s", key, err.Error())
			continue
		}

		images = append(images, model.GeneratedImage{
			ID:       uuid.NewString(),
			ImageURL: url,
		})
	}

	return images
}

func assetKey(workspaceID string, index int) string {
	key := fmt.Sprintf("workspace/%s/%d%d.png", workspaceID, time.Now().UnixMilli(), index)
	if viper.GetString("app.env") != "production" {
		key = "dev/" + key
	}

	return key
}

func (s *imageGeneratorService) failRecord(ctx context.Context, recordID string) {
	if err := s.repo.Postgres.GenerationRecord.MarkFailed(ctx, recordID); err != nil {
		s.logger.Sugar().Errorf("failed to mark record(%s) failed: %s", recordID, err.Error())
	}
}

func (s *imageGeneratorService) refund(ctx context.Context, workspaceID string, units int) {
	if err := s.repo.Postgres.Workspace.RefundCredits(ctx, workspaceID, units); err != nil {
		s.logger.Sugar().Errorf("failed to refund %d credits to workspace(%s): %s", units, workspaceID, err.Error())
	}
}

func (s *imageGeneratorService) History(ctx context.Context, workspaceID string, page, limit int) (*HistoryData, error) {
	offset := (page - 1) * limit

	records, err := s.repo.Postgres.GenerationRecord.FindCompletedByWorkspace(ctx, workspaceID, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to list generation records for workspace(%s): %s", workspaceID, err.Error())
		return nil, errInternal
	}

	total, err := s.repo.Postgres.GenerationRecord.CountCompletedByWorkspace(ctx, workspaceID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count generation records for workspace(%s): %s", workspaceID, err.Error())
		return nil, errInternal
	}

	views := make([]*GenerationView, 0, len(records))
	for _, record := range records {
		views = append(views, &GenerationView{
			GenerationRecordID: record.ID,
			Images:             record.GeneratedImages,
			Prompt:             record.PromptText,
			CreatedAt:          record.CreatedAt,
		})
	}

	totalPages := (total + limit - 1) / limit

	return &HistoryData{
		Records: views,
		Pagination: Pagination{
			TotalRecords: total,
			TotalPages:   totalPages,
			CurrentPage:  page,
			HasNextPage:  page < totalPages,
			HasPrevPage:  page > 1,
			Limit:        limit,
		},
	}, nil
}
