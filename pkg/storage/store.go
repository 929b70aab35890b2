package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"Patchwork/config"
)

const ContentTypePNG = "image/png"

// ObjectStore 对象存储, 只需要上传和拼接公开访问地址
type ObjectStore interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	URL(key string) string
}

// NewObjectStore 根据 storage.driver 创建对应的实现
func NewObjectStore(ctx context.Context, cfg *config.Storage) (ObjectStore, error) {
	switch cfg.Driver {
	case config.DriverS3:
		return NewS3Store(ctx, cfg)
	case config.DriverOss:
		return NewOssStore(cfg), nil
	case config.DriverGcs:
		return NewGcsStore(ctx, cfg)
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

// SubmissionKey daily-submissions/{YYYY-MM-DD}/{id}.png
func SubmissionKey(day, imageID string) string {
	return fmt.Sprintf("daily-submissions/%s/%s.png", day, imageID)
}

func publicURL(prefix, key string) string {
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(key, "/")
}
