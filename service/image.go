package service

import (
	"Patchwork/dao"
	"Patchwork/models"
	"Patchwork/pkg/response"
	"Patchwork/types"
	"context"
	"errors"
	"fmt"
	"time"
)

const msgInsertFailed = "Failed to insert image into database"

type IImageService interface {
	Insert(ctx context.Context, req *types.InsertImageRequest) error
	ListByDay(ctx context.Context, day string) ([]types.ImageItem, error)
}

type ImageService struct {
	ImageDAO *dao.Image
}

var _ IImageService = (*ImageService)(nil)

// Insert 写入作品并尝试成为当天的种子图, 所有失败都返回同一个提示
func (s *ImageService) Insert(ctx context.Context, req *types.InsertImageRequest) error {
	if err := checkInsert(req); err != nil {
		return response.Internal(msgInsertFailed, err)
	}
	day, err := ParseDay(req.Day)
	if err != nil {
		return response.Internal(msgInsertFailed, fmt.Errorf("parse day %q: %w", req.Day, err))
	}
	createdAt, err := parseTimestamp(req.CreatedAt)
	if err != nil {
		return response.Internal(msgInsertFailed, err)
	}

	img := &models.Image{
		ImageID:    req.ImageID,
		S3Path:     req.S3Path,
		PromptText: req.PromptText,
		CreatorID:  req.CreatorID,
		Day:        day,
		CreatedAt:  createdAt,
		Upvotes:    req.Upvotes,
		Downvotes:  req.Downvotes,
		Flags:      req.Flags,
	}
	if err := s.ImageDAO.CreateAndLinkSeed(ctx, img); err != nil {
		return response.Internal(msgInsertFailed, err)
	}
	return nil
}

func (s *ImageService) ListByDay(ctx context.Context, day string) ([]types.ImageItem, error) {
	d, err := ParseDay(day)
	if err != nil {
		return nil, response.Validation("Day must be in YYYY-MM-DD format")
	}

	rows, err := s.ImageDAO.ListByDay(ctx, d)
	if err != nil {
		return nil, response.Internal("Failed to fetch images", err)
	}

	items := make([]types.ImageItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, types.ImageItem{
			ImageID:    row.ImageID,
			S3Path:     row.S3Path,
			PromptText: row.PromptText,
			Upvotes:    row.Upvotes,
			Downvotes:  row.Downvotes,
		})
	}
	return items, nil
}

// 空 image_id 会被当天的种子图引用且无法再修改, 计数不能为负
func checkInsert(req *types.InsertImageRequest) error {
	switch {
	case req.ImageID == "":
		return errors.New("image_id is empty")
	case req.S3Path == "":
		return errors.New("s3_path is empty")
	case req.Upvotes < 0 || req.Downvotes < 0 || req.Flags < 0:
		return fmt.Errorf("negative counters: upvotes=%d downvotes=%d flags=%d", req.Upvotes, req.Downvotes, req.Flags)
	}
	return nil
}

// created_at 由 /generate-image 返回, 格式 2006-01-02 15:04:05
func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{TimestampLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse created_at %q: unsupported format", s)
}
