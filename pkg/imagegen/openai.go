package imagegen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"Patchwork/config"
	"Patchwork/pkg/log"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

var ErrEmptyResult = errors.New("image provider returned no image")

// EditRequest 局部重绘请求, Image 与 Mask 都是同尺寸的 PNG
type EditRequest struct {
	Image  []byte
	Mask   []byte
	Prompt string
}

// Editor 局部重绘服务, 返回结果图片的下载地址
type Editor interface {
	Edit(ctx context.Context, req EditRequest) (string, error)
}

type OpenAIEditor struct {
	client openai.Client
	model  string
}

var _ Editor = (*OpenAIEditor)(nil)

func NewOpenAIEditor(cfg *config.OpenAIConfig) *OpenAIEditor {
	// 失败直接返回给调用方, 不重试
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIEditor{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}
}

func (e *OpenAIEditor) Edit(ctx context.Context, req EditRequest) (string, error) {
	startTime := time.Now()

	params := openai.ImageEditParams{
		Image: openai.ImageEditParamsImageUnion{
			OfFile: openai.File(bytes.NewReader(req.Image), "image.png", "image/png"),
		},
		Mask:           openai.File(bytes.NewReader(req.Mask), "mask.png", "image/png"),
		Prompt:         req.Prompt,
		Model:          openai.ImageModel(e.model),
		N:              openai.Int(1),
		Size:           openai.ImageEditParamsSize512x512,
		ResponseFormat: openai.ImageEditParamsResponseFormatURL,
	}

	resp, err := e.client.Images.Edit(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai images.edit: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", ErrEmptyResult
	}

	log.L.Info("image edited", zap.String("url", resp.Data[0].URL), zap.Duration("gen time", time.Since(startTime)))
	return resp.Data[0].URL, nil
}
