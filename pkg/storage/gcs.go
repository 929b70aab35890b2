package storage

import (
	"context"
	"fmt"
	"io"

	"Patchwork/config"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type GcsStore struct {
	Client     *gcs.Client
	BucketName string
	PublicURL  string
}

var _ ObjectStore = (*GcsStore)(nil)

func NewGcsStore(ctx context.Context, cfg *config.Storage) (*GcsStore, error) {
	var opts []option.ClientOption
	if cfg.Gcs.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Gcs.CredentialsFile))
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}

	prefix := cfg.PublicURL
	if prefix == "" {
		prefix = "https://storage.googleapis.com/" + cfg.Bucket
	}
	return &GcsStore{
		Client:     client,
		BucketName: cfg.Bucket,
		PublicURL:  prefix,
	}, nil
}

func (s *GcsStore) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	w := s.Client.Bucket(s.BucketName).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func (s *GcsStore) URL(key string) string {
	return publicURL(s.PublicURL, key)
}
