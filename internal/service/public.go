package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/CreatorKit/api-service/internal/storage"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type publicService struct {
	logger *zap.Logger
	store  storage.ObjectStorage
}

func newPublicService(logger *zap.Logger, store storage.ObjectStorage) Public {
	return &publicService{
		logger: logger,
		store:  store,
	}
}

func (s *publicService) UploadImage(ctx context.Context, workspaceID, filename string, body io.Reader) (string, error) {
	key := fmt.Sprintf("workspace/%s/%d%s", workspaceID, time.Now().UnixMilli(), filename)
	if viper.GetString("app.env") != "production" {
		key = "dev/" + key
	}

	url, err := s.store.Upload(ctx, key, body)
	if err != nil {
		s.logger.Sugar().Errorf("failed to upload image %s: %s", key, err.Error())
		return "", errInternal
	}

	return url, nil
}
