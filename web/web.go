package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

// Templates 解析内嵌的页面模板, 模板名为文件名
func Templates() (*template.Template, error) {
	return template.ParseFS(templates, "templates/*.html")
}

// Static 内嵌的静态资源, 包含默认种子图 data/seed_image.png
func Static() http.FileSystem {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
