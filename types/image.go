package types

type GenerateImageRequest struct {
	Prompt string `json:"prompt"`
	Mask   string `json:"mask"` // data url, base64 编码的 PNG
}

type GenerateImageResponse struct {
	ImageURL  string `json:"imageUrl"`
	ImageID   string `json:"image_id"`
	Day       string `json:"day"`
	CreatedAt string `json:"created_at"`
}

type InsertImageRequest struct {
	ImageID    string `json:"image_id"`
	S3Path     string `json:"s3_path"`
	PromptText string `json:"prompt_text"`
	CreatorID  string `json:"creator_id"`
	Day        string `json:"day"`
	CreatedAt  string `json:"created_at"`
	Upvotes    int    `json:"upvotes"`
	Downvotes  int    `json:"downvotes"`
	Flags      int    `json:"flags"`
}

type ImageItem struct {
	ImageID    string `json:"image_id"`
	S3Path     string `json:"s3_path"`
	PromptText string `json:"prompt_text"`
	Upvotes    int    `json:"upvotes"`
	Downvotes  int    `json:"downvotes"`
}

type ListImagesResponse struct {
	Images []ImageItem `json:"images"`
}
