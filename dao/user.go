package dao

import (
	"Patchwork/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// Insert 新增用户, user_id 重复时返回数据库错误
func (u *Users) Insert(ctx context.Context, user *models.User) error {
	if err := u.Repo.Create(ctx, user); err != nil {
		return fmt.Errorf("dao.Users.Insert error: %w", err)
	}
	return nil
}

func (u *Users) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "user_id = ?", userID)
}
