package storage

import (
	"context"
	"fmt"
	"io"

	"Patchwork/config"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

type OssStore struct {
	Client     *oss.Client
	BucketName string
	PublicURL  string
}

var _ ObjectStore = (*OssStore)(nil)

func NewOssStore(cfg *config.Storage) *OssStore {
	var provider credentials.CredentialsProvider
	if cfg.Oss.AccessKeyID != "" {
		provider = credentials.NewStaticCredentialsProvider(cfg.Oss.AccessKeyID, cfg.Oss.AccessKeySecret)
	} else {
		provider = credentials.NewEnvironmentVariableCredentialsProvider()
	}

	ossCfg := oss.LoadDefaultConfig().
		WithEndpoint(cfg.Oss.Endpoint).
		WithRegion(cfg.Oss.Region).
		WithCredentialsProvider(provider)

	prefix := cfg.PublicURL
	if prefix == "" {
		prefix = fmt.Sprintf("https://%s.%s", cfg.Bucket, cfg.Oss.Endpoint)
	}
	return &OssStore{
		Client:     oss.NewClient(ossCfg),
		BucketName: cfg.Bucket,
		PublicURL:  prefix,
	}
}

func (s *OssStore) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	_, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket:      oss.Ptr(s.BucketName),
		Key:         oss.Ptr(key),
		Body:        body,
		ContentType: oss.Ptr(contentType),
	})
	return err
}

func (s *OssStore) URL(key string) string {
	return publicURL(s.PublicURL, key)
}
