package handler

import (
	"net/http"

	"Patchwork/pkg/storage"
	"Patchwork/service"

	"github.com/gin-gonic/gin"
)

// Page 前端页面, 模板由 web 包内嵌
type Page struct {
	SeedService service.ISeedService
	Store       storage.ObjectStore
}

func (p *Page) RegisterRouter(r gin.IRouter) {
	r.GET("/", p.render("index.html"))
	r.GET("/generate", p.Generate)
	r.GET("/vote", p.Vote)
	r.GET("/goodbye", p.render("goodbye.html"))
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
}

func (p *Page) Generate(c *gin.Context) {
	c.HTML(http.StatusOK, "generate.html", gin.H{
		"seed_image_url": p.SeedService.Resolve(c.Request.Context()),
	})
}

// Vote get-images 只返回对象 key, 页面用存储的公开地址拼图片链接
func (p *Page) Vote(c *gin.Context) {
	c.HTML(http.StatusOK, "vote.html", gin.H{
		"image_base_url": p.Store.URL(""),
	})
}

func (p *Page) render(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, nil)
	}
}
