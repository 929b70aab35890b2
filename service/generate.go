package service

import (
	"Patchwork/config"
	"Patchwork/dao"
	"Patchwork/pkg/client"
	"Patchwork/pkg/imagegen"
	"Patchwork/pkg/imaging"
	"Patchwork/pkg/log"
	"Patchwork/pkg/response"
	"Patchwork/pkg/storage"
	"Patchwork/types"
	"bytes"
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CanvasSize 种子图和遮罩统一缩放到 512x512
const CanvasSize = 512

const (
	msgGenerateFailed     = "Failed to generate image"
	msgSeedDownloadFailed = "Failed to download seed image"
	msgImageDownloadFail  = "Failed to download image"
)

type IGenerateService interface {
	Generate(ctx context.Context, prompt, maskDataURL string) (*types.GenerateImageResponse, error)
}

type GenerateService struct {
	Config     *config.Config
	Seed       ISeedService
	Downloader *client.Downloader
	Editor     imagegen.Editor
	Store      storage.ObjectStore
	DayDAO     *dao.Day
	Clock      Clock
}

var _ IGenerateService = (*GenerateService)(nil)

// Generate 种子图 + 遮罩 -> 重绘 -> 上传 -> 确保当天 Day 记录存在
// 返回的错误都是 *response.BizError
func (s *GenerateService) Generate(ctx context.Context, prompt, maskDataURL string) (*types.GenerateImageResponse, error) {
	if err := s.Config.ValidateCredentials(); err != nil {
		return nil, response.Internal(msgGenerateFailed, err)
	}

	seedURL := s.Seed.Resolve(ctx)
	seed, err := s.Downloader.Get(ctx, seedURL)
	if err != nil {
		return nil, downloadError(msgSeedDownloadFailed, err)
	}

	mask, err := imaging.DecodeDataURL(maskDataURL)
	if err != nil {
		return nil, response.Internal(msgGenerateFailed, err)
	}

	seedCanvas, err := imaging.Canvas(seed, CanvasSize)
	if err != nil {
		return nil, response.Internal(msgGenerateFailed, err)
	}
	maskCanvas, err := imaging.Canvas(mask, CanvasSize)
	if err != nil {
		return nil, response.Internal(msgGenerateFailed, err)
	}

	resultURL, err := s.Editor.Edit(ctx, imagegen.EditRequest{
		Image:  seedCanvas,
		Mask:   maskCanvas,
		Prompt: prompt,
	})
	if err != nil {
		return nil, response.Upstream(msgGenerateFailed, err)
	}
	log.L.Info("Image edited", zap.String("url", resultURL))

	result, err := s.Downloader.Get(ctx, resultURL)
	if err != nil {
		return nil, downloadError(msgImageDownloadFail, err)
	}

	now := s.Clock()
	imageID := uuid.NewString()
	day := now.Format(DayLayout)
	key := storage.SubmissionKey(day, imageID)

	if err := s.Store.Put(ctx, key, bytes.NewReader(result), storage.ContentTypePNG); err != nil {
		return nil, response.Upstream(msgGenerateFailed, err)
	}
	log.L.Info("Image uploaded", zap.String("key", key))

	if err := s.DayDAO.Ensure(ctx, DateOf(now)); err != nil {
		return nil, response.Internal(msgGenerateFailed, err)
	}

	return &types.GenerateImageResponse{
		ImageURL:  s.Store.URL(key),
		ImageID:   imageID,
		Day:       day,
		CreatedAt: now.Format(TimestampLayout),
	}, nil
}

// 非 200 使用具体的提示, 网络错误归为通用失败
func downloadError(msg string, err error) error {
	var se *client.StatusError
	if errors.As(err, &se) {
		return response.Upstream(msg, err)
	}
	return response.Upstream(msgGenerateFailed, err)
}
