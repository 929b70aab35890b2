package handler

import (
	"Patchwork/pkg/context"
	"Patchwork/pkg/log"
	"Patchwork/pkg/response"
	"Patchwork/service"
	"Patchwork/types"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Image struct {
	GenerateService service.IGenerateService
	ImageService    service.IImageService
	VoteService     service.IVoteService
}

func (h *Image) RegisterRouter(r gin.IRouter) {
	r.POST("/generate-image", context.Wrap(h.Generate))
	r.POST("/insert-image", context.Wrap(h.Insert))
	r.GET("/get-images", context.Wrap(h.List))
	r.POST("/vote-image", context.Wrap(h.Vote))
}

func (h *Image) Generate(c *gin.Context) error {
	log.L.Info("Endpoint /generate-image was hit")

	var req types.GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("Invalid request body")
	}
	if req.Prompt == "" {
		return response.Validation("Prompt is required")
	}
	if req.Mask == "" {
		return response.Validation("Mask is required")
	}

	resp, err := h.GenerateService.Generate(c.Request.Context(), req.Prompt, req.Mask)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, resp)
	return nil
}

// Insert 请求体错误也按入库失败处理
func (h *Image) Insert(c *gin.Context) error {
	log.L.Info("Endpoint /insert-image was hit")

	var req types.InsertImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Internal("Failed to insert image into database", err)
	}
	log.L.Info("inserting image",
		zap.String("image_id", req.ImageID),
		zap.String("s3_path", req.S3Path),
		zap.String("creator_id", req.CreatorID),
		zap.String("day", req.Day),
	)

	if err := h.ImageService.Insert(c.Request.Context(), &req); err != nil {
		return err
	}
	response.Message(c, http.StatusCreated, "Image inserted successfully")
	return nil
}

func (h *Image) List(c *gin.Context) error {
	log.L.Info("Endpoint /get-images was hit")

	day := c.Query("day")
	if day == "" {
		return response.Validation("Day is required")
	}

	images, err := h.ImageService.ListByDay(c.Request.Context(), day)
	if err != nil {
		return err
	}
	if len(images) == 0 {
		response.Message(c, http.StatusOK, "Looks like there were no images from today!")
		return nil
	}
	c.JSON(http.StatusOK, types.ListImagesResponse{Images: images})
	return nil
}

func (h *Image) Vote(c *gin.Context) error {
	log.L.Info("Endpoint /vote-image was hit")

	var req types.VoteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.ImageID == "" ||
		req.CurrentVote == nil || !service.ValidVote(*req.CurrentVote) ||
		req.NewVote == nil || !service.ValidVote(*req.NewVote) {
		return response.Validation("Invalid image ID or vote values")
	}

	if err := h.VoteService.Vote(c.Request.Context(), req.ImageID, *req.CurrentVote, *req.NewVote); err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "Vote recorded successfully")
	return nil
}
