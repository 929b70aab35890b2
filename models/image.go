package models

import (
	"time"

	"gorm.io/datatypes"
)

// Image 用户提交的作品
// upvotes / downvotes 只由投票接口修改, 始终 >= 0
type Image struct {
	ImageID    string         `gorm:"column:image_id;primaryKey;type:varchar(36)" json:"image_id"`
	S3Path     string         `gorm:"column:s3_path;type:varchar(255);not null" json:"s3_path"`
	PromptText string         `gorm:"column:prompt_text;type:text" json:"prompt_text"`
	CreatorID  string         `gorm:"column:creator_id;type:varchar(64);index:idx_creator" json:"creator_id"`
	Day        datatypes.Date `gorm:"column:day;not null;index:idx_day_votes,priority:1" json:"day"`
	CreatedAt  time.Time      `gorm:"column:created_at;not null" json:"created_at"`
	Upvotes    int            `gorm:"column:upvotes;not null;index:idx_day_votes,priority:2" json:"upvotes"`
	Downvotes  int            `gorm:"column:downvotes;not null" json:"downvotes"`
	Flags      int            `gorm:"column:flags;not null" json:"flags"`
}

func (Image) TableName() string {
	return "Image"
}
