package types

// VoteImageRequest 投票状态只能是 -1, 0, 1; 使用指针区分缺省值
type VoteImageRequest struct {
	ImageID     string `json:"image_id"`
	CurrentVote *int   `json:"current_vote"`
	NewVote     *int   `json:"new_vote"`
}
