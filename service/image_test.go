package service

import (
	"context"
	"testing"
	"time"

	"Patchwork/dao"
	"Patchwork/models"
	"Patchwork/pkg/response"
	"Patchwork/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageService_Insert(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	require.NoError(t, dao.NewDay(db).Ensure(ctx, DateOf(fixedNow)))
	s := &ImageService{ImageDAO: dao.NewImage(db)}

	req := &types.InsertImageRequest{
		ImageID:    "img-1",
		S3Path:     "daily-submissions/2026-10-19/img-1.png",
		PromptText: "a red balloon",
		CreatorID:  "user-1",
		Day:        "2026-10-19",
		CreatedAt:  "2026-10-19 14:30:05",
	}
	require.NoError(t, s.Insert(ctx, req))

	var img models.Image
	require.NoError(t, db.First(&img, "image_id = ?", "img-1").Error)
	assert.Equal(t, 0, img.Upvotes)
	assert.Equal(t, 0, img.Downvotes)
	assert.Equal(t, 0, img.Flags)
	assert.Equal(t, "a red balloon", img.PromptText)

	var day models.Day
	require.NoError(t, db.First(&day).Error)
	require.NotNil(t, day.SeedImageID)
	assert.Equal(t, "img-1", *day.SeedImageID)

	// 第二张不会覆盖种子图
	second := *req
	second.ImageID = "img-2"
	require.NoError(t, s.Insert(ctx, &second))
	require.NoError(t, db.First(&day).Error)
	assert.Equal(t, "img-1", *day.SeedImageID)
}

func TestImageService_InsertFailures(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	s := &ImageService{ImageDAO: dao.NewImage(db)}

	valid := types.InsertImageRequest{ImageID: "dup", S3Path: "p", Day: "2026-10-19", CreatedAt: "2026-10-19 10:00:00"}
	require.NoError(t, s.Insert(ctx, &valid))

	tests := []struct {
		name string
		req  types.InsertImageRequest
	}{
		{"duplicate id", valid},
		{"bad day", types.InsertImageRequest{ImageID: "x", S3Path: "p", Day: "19/10/2026", CreatedAt: "2026-10-19 10:00:00"}},
		{"bad created_at", types.InsertImageRequest{ImageID: "y", S3Path: "p", Day: "2026-10-19", CreatedAt: "yesterday"}},
		{"empty image_id", types.InsertImageRequest{S3Path: "p", Day: "2026-10-19", CreatedAt: "2026-10-19 10:00:00"}},
		{"empty s3_path", types.InsertImageRequest{ImageID: "z", Day: "2026-10-19", CreatedAt: "2026-10-19 10:00:00"}},
		{"negative upvotes", types.InsertImageRequest{ImageID: "n1", S3Path: "p", Day: "2026-10-19", CreatedAt: "2026-10-19 10:00:00", Upvotes: -7}},
		{"negative downvotes", types.InsertImageRequest{ImageID: "n2", S3Path: "p", Day: "2026-10-19", CreatedAt: "2026-10-19 10:00:00", Downvotes: -3}},
		{"negative flags", types.InsertImageRequest{ImageID: "n3", S3Path: "p", Day: "2026-10-19", CreatedAt: "2026-10-19 10:00:00", Flags: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Insert(ctx, &tt.req)
			require.Error(t, err)
			assert.Equal(t, "Failed to insert image into database", bizMsg(t, err))
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.Image{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestImageService_ListByDay(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	insertImage(t, db, "first", "2026-10-18", 2, 1, base)
	insertImage(t, db, "second", "2026-10-18", 0, 0, base.Add(time.Hour))
	s := &ImageService{ImageDAO: dao.NewImage(db)}

	items, err := s.ListByDay(context.Background(), "2026-10-18")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].ImageID)
	assert.Equal(t, types.ImageItem{
		ImageID:   "first",
		S3Path:    "daily-submissions/2026-10-18/first.png",
		Upvotes:   2,
		Downvotes: 1,
	}, items[1])

	items, err = s.ListByDay(context.Background(), "2026-10-01")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestImageService_ListByDay_InvalidDay(t *testing.T) {
	s := &ImageService{ImageDAO: dao.NewImage(newTestDB(t))}

	_, err := s.ListByDay(context.Background(), "yesterday")
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, response.KindValidation, be.Kind)
}
