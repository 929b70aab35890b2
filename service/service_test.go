package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"
	"testing"
	"time"

	"Patchwork/config"
	"Patchwork/models"
	"Patchwork/pkg/imagegen"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var fixedNow = time.Date(2026, 10, 19, 14, 30, 5, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	conf, err := config.Parse(nil)
	require.NoError(t, err)
	conf.OpenAI.APIKey = "sk-test"
	conf.Storage.S3.AccessKeyID = "ak"
	conf.Storage.S3.SecretAccessKey = "sk"
	conf.Seed.DefaultURL = "https://patchwork.example.com/static/data/seed_image.png"
	return conf
}

func insertImage(t *testing.T, db *gorm.DB, id, day string, up, down int, createdAt time.Time) {
	t.Helper()
	d, err := ParseDay(day)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Image{
		ImageID:   id,
		S3Path:    "daily-submissions/" + day + "/" + id + ".png",
		Day:       d,
		CreatedAt: createdAt,
		Upvotes:   up,
		Downvotes: down,
	}).Error)
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 10, G: 200, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// memStore 内存对象存储
type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	err     error
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memStore) Put(_ context.Context, key string, body io.Reader, contentType string) error {
	if m.err != nil {
		return m.err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	m.types[key] = contentType
	return nil
}

func (m *memStore) URL(key string) string {
	return "https://pixelspatchwork.s3.amazonaws.com/" + key
}

type fakeEditor struct {
	url   string
	err   error
	calls []imagegen.EditRequest
}

func (f *fakeEditor) Edit(_ context.Context, req imagegen.EditRequest) (string, error) {
	f.calls = append(f.calls, req)
	return f.url, f.err
}
