package models

import "time"

const PlaceholderUsername = "Unknown"

type User struct {
	UserID    string    `gorm:"column:user_id;primaryKey;type:varchar(64)" json:"user_id"`
	Username  string    `gorm:"column:username;type:varchar(64);not null" json:"username"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	IsBanned  bool      `gorm:"column:is_banned;not null" json:"is_banned"`
}

func (User) TableName() string {
	return "User"
}

// All 迁移时使用的全部模型
func All() []any {
	return []any{&User{}, &Image{}, &Day{}}
}
