package dao

import (
	"Patchwork/models"
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Day struct {
	Repo[models.Day]
}

func NewDay(db *gorm.DB) *Day {
	return &Day{
		Repo: NewRepo[models.Day](db),
	}
}

// Ensure 当天记录不存在时创建 (seed_image_id 为空), 已存在时不做任何修改
func (d *Day) Ensure(ctx context.Context, date datatypes.Date) error {
	day := models.Day{
		Date:      date,
		IsCurrent: true,
	}
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&day).Error
}

func (d *Day) FindByDate(ctx context.Context, date datatypes.Date) (*models.Day, error) {
	return d.Repo.FindByWhere(ctx, "date = ?", date)
}
