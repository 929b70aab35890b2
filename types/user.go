package types

// TrackUserRequest created_at 格式: 01/02/2006, 03:04:05 PM
type TrackUserRequest struct {
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
}
