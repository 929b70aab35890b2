package context

import (
	"errors"
	"net/http"

	"Patchwork/pkg/log"
	"Patchwork/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HandlerFunc func(*gin.Context) error

// Wrap 统一处理 handler 返回的错误, 只把 BizError.Msg 返回给调用方
func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c)
		if err == nil {
			return
		}

		var be *response.BizError
		if !errors.As(err, &be) {
			log.L.Error("unexpected error", zap.String("path", c.FullPath()), zap.Error(err))
			if !c.Writer.Written() {
				response.Fail(c, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		fields := []zap.Field{
			zap.String("path", c.FullPath()),
			zap.String("kind", be.Kind.String()),
			zap.String("msg", be.Msg),
		}
		if be.Err != nil {
			fields = append(fields, zap.Error(be.Err))
		}
		if be.Kind == response.KindValidation {
			log.L.Warn("request rejected", fields...)
		} else {
			log.L.Error("request failed", fields...)
		}

		// 如果已经写过响应，直接返回
		if c.Writer.Written() {
			return
		}
		response.Fail(c, be.Kind.Status(), be.Msg)
	}
}
