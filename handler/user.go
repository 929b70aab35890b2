package handler

import (
	"Patchwork/pkg/context"
	"Patchwork/pkg/log"
	"Patchwork/pkg/response"
	"Patchwork/service"
	"Patchwork/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type User struct {
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	r.POST("/track-user", context.Wrap(u.Track))
}

func (u *User) Track(c *gin.Context) error {
	log.L.Info("Endpoint /track-user was hit")

	var req types.TrackUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("Invalid request body")
	}
	if req.UserID == "" || req.CreatedAt == "" {
		return response.Validation("Missing user_id or created_at")
	}

	if err := u.UserService.Track(c.Request.Context(), req.UserID, req.CreatedAt); err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "User tracked successfully")
	return nil
}
