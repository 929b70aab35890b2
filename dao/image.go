package dao

import (
	"Patchwork/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const ListLimit = 10

type Image struct {
	Repo[models.Image]
}

func NewImage(db *gorm.DB) *Image {
	return &Image{
		Repo: NewRepo[models.Image](db),
	}
}

// CreateAndLinkSeed 写入作品, 同一事务内尝试把它设为当天的种子图
// 当天已有种子图时不会覆盖
func (i *Image) CreateAndLinkSeed(ctx context.Context, image *models.Image) error {
	return i.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(image).Error; err != nil {
			return fmt.Errorf("dao.Image.Create: %w", err)
		}
		err := tx.Model(&models.Day{}).
			Where("date = ? AND seed_image_id IS NULL", image.Day).
			Update("seed_image_id", image.ImageID).Error
		if err != nil {
			return fmt.Errorf("dao.Image.LinkSeed: %w", err)
		}
		return nil
	})
}

// ListByDay 返回某天最多 ListLimit 条作品, created_at 倒序
func (i *Image) ListByDay(ctx context.Context, day datatypes.Date) ([]models.Image, error) {
	var images []models.Image
	err := i.Db.WithContext(ctx).
		Select("image_id", "s3_path", "prompt_text", "upvotes", "downvotes").
		Where("day = ?", day).
		Order("created_at DESC").
		Order("image_id ASC").
		Limit(ListLimit).
		Find(&images).Error
	return images, err
}

// TopOfPreviousDay 找到 before 之前最近一个有作品的日期, 返回当天得票最高的作品
// 排序: upvotes 降序, downvotes 升序, created_at 升序
func (i *Image) TopOfPreviousDay(ctx context.Context, before datatypes.Date) (*models.Image, error) {
	db := i.Db.WithContext(ctx)
	previousDay := db.Model(&models.Image{}).Select("MAX(day)").Where("day < ?", before)

	var image models.Image
	err := db.Where("day = (?)", previousDay).
		Order("upvotes DESC").
		Order("downvotes ASC").
		Order("created_at ASC").
		First(&image).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// ApplyVote 相对当前值更新票数, 结果不小于 0
// image_id 不存在时影响 0 行, 不报错
func (i *Image) ApplyVote(ctx context.Context, imageID string, upDelta, downDelta int) (int64, error) {
	result := i.Db.WithContext(ctx).
		Model(&models.Image{}).
		Where("image_id = ?", imageID).
		Updates(map[string]any{
			"upvotes":   clampedAdd("upvotes", upDelta),
			"downvotes": clampedAdd("downvotes", downDelta),
		})
	return result.RowsAffected, result.Error
}

// GREATEST 在 sqlite 中不可用, 用 CASE 保持两边一致
func clampedAdd(column string, delta int) clause.Expr {
	return gorm.Expr(fmt.Sprintf("CASE WHEN %[1]s + ? < 0 THEN 0 ELSE %[1]s + ? END", column), delta, delta)
}
