package service

import (
	"Patchwork/dao"
	"Patchwork/pkg/log"
	"Patchwork/pkg/response"
	"context"

	"go.uber.org/zap"
)

type IVoteService interface {
	Vote(ctx context.Context, imageID string, current, next int) error
}

type VoteService struct {
	ImageDAO *dao.Image
}

var _ IVoteService = (*VoteService)(nil)

// ValidVote 投票状态: -1 踩, 0 未投, 1 赞
func ValidVote(v int) bool {
	return v == -1 || v == 0 || v == 1
}

// VoteDelta 由投票状态变化计算赞/踩的增量, 表外的组合不改变计数
func VoteDelta(current, next int) (up, down int) {
	switch {
	case current == 0 && next == 1:
		return 1, 0
	case current == 1 && next == 0:
		return -1, 0
	case current == 1 && next == -1:
		return -1, 1
	case current == 0 && next == -1:
		return 0, 1
	case current == -1 && next == 0:
		return 0, -1
	case current == -1 && next == 1:
		return 1, -1
	}
	return 0, 0
}

func (s *VoteService) Vote(ctx context.Context, imageID string, current, next int) error {
	up, down := VoteDelta(current, next)
	affected, err := s.ImageDAO.ApplyVote(ctx, imageID, up, down)
	if err != nil {
		return response.Internal("Failed to record vote", err)
	}
	log.L.Info("vote recorded",
		zap.String("image_id", imageID),
		zap.Int("upvote_change", up),
		zap.Int("downvote_change", down),
		zap.Int64("rows", affected),
	)
	return nil
}
