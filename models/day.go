package models

import "gorm.io/datatypes"

// Day 每日汇总, seed_image_id 只会被写入一次
type Day struct {
	Date              datatypes.Date `gorm:"column:date;primaryKey" json:"date"`
	SeedImageID       *string        `gorm:"column:seed_image_id;type:varchar(36)" json:"seed_image_id"`
	TotalVotes        int            `gorm:"column:total_votes;not null" json:"total_votes"`
	TotalParticipants int            `gorm:"column:total_participants;not null" json:"total_participants"`
	IsCurrent         bool           `gorm:"column:is_current;not null" json:"is_current"`
}

func (Day) TableName() string {
	return "Day"
}
