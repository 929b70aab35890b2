package service

import (
	"Patchwork/config"
	"Patchwork/dao"
	"Patchwork/pkg/log"
	"Patchwork/pkg/storage"
	"context"
	"fmt"

	"go.uber.org/zap"
)

type ISeedService interface {
	// Resolve 返回当前编辑用的种子图地址, 任何错误都回退到默认图
	Resolve(ctx context.Context) string
}

type SeedService struct {
	Config   *config.Config
	ImageDAO *dao.Image
	Store    storage.ObjectStore
	Clock    Clock
}

var _ ISeedService = (*SeedService)(nil)

func (s *SeedService) Resolve(ctx context.Context) (url string) {
	defaultURL := s.Config.DefaultSeedURL()
	defer func() {
		if r := recover(); r != nil {
			log.L.Error("Error fetching seed image", zap.Error(fmt.Errorf("panic: %v", r)))
			url = defaultURL
		}
	}()

	today := DateOf(s.Clock())
	img, err := s.ImageDAO.TopOfPreviousDay(ctx, today)
	if err != nil {
		log.L.Error("Error fetching seed image", zap.Error(err))
		return defaultURL
	}
	if img == nil {
		return defaultURL
	}
	return s.Store.URL(img.S3Path)
}
