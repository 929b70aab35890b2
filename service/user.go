package service

import (
	"Patchwork/dao"
	"Patchwork/models"
	"Patchwork/pkg/log"
	"Patchwork/pkg/response"
	"context"
	"time"

	"go.uber.org/zap"
)

// ClientTimestampLayout 前端 toLocaleString("en-US") 的格式, 月/日/小时可以不补零
const ClientTimestampLayout = "1/2/2006, 3:04:05 PM"

type IUserService interface {
	Track(ctx context.Context, userID, createdAt string) error
}

type UserService struct {
	UserDAO *dao.Users
}

var _ IUserService = (*UserService)(nil)

func (s *UserService) Track(ctx context.Context, userID, createdAt string) error {
	ts, err := time.Parse(ClientTimestampLayout, createdAt)
	if err != nil {
		return response.Validation("Invalid created_at format")
	}
	log.L.Info("tracking user", zap.String("user_id", userID), zap.String("created_at", ts.Format(TimestampLayout)))

	user := &models.User{
		UserID:    userID,
		Username:  models.PlaceholderUsername,
		CreatedAt: ts,
		IsBanned:  false,
	}
	if err := s.UserDAO.Insert(ctx, user); err != nil {
		return response.Internal("Failed to track user", err)
	}
	return nil
}
