package response

import "github.com/gin-gonic/gin"

type ErrorBody struct {
	Error string `json:"error"`
}

type MessageBody struct {
	Message string `json:"message"`
}

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, MessageBody{Message: msg})
}

func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorBody{Error: msg})
}
