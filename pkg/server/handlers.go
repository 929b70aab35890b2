package server

import (
	"Patchwork/handler"
)

type Handlers struct {
	Image *handler.Image
	User  *handler.User
	Page  *handler.Page
}
