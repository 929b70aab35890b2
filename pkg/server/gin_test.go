package server

import (
	"context"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"Patchwork/config"
	"Patchwork/handler"
	"Patchwork/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	log.L = zap.NewNop()
	m.Run()
}

type staticSeed string

func (s staticSeed) Resolve(context.Context) string { return string(s) }

type bucketStore struct{}

func (bucketStore) Put(context.Context, string, io.Reader, string) error { return nil }

func (bucketStore) URL(key string) string { return "https://pixelspatchwork.s3.amazonaws.com/" + key }

func newTestEngine(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	t.Setenv("PORT", "")
	t.Setenv("SEED_DEFAULT_URL", "")

	conf, err := config.Parse(nil)
	require.NoError(t, err)

	h := &Handlers{
		Image: &handler.Image{},
		User:  &handler.User{},
		Page:  &handler.Page{SeedService: staticSeed(conf.DefaultSeedURL()), Store: bucketStore{}},
	}
	engine, err := NewGinEngine(h, conf)
	require.NoError(t, err)
	return engine, conf
}

func serve(engine *gin.Engine, method, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCORS_Preflight(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := serve(engine, http.MethodOptions, "/vote-image", map[string]string{
		"Origin":                         "https://patchwork.example.com",
		"Access-Control-Request-Method":  http.MethodPost,
		"Access-Control-Request-Headers": "Content-Type",
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
	assert.Empty(t, w.Body.String())
}

func TestCORS_NormalResponse(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := serve(engine, http.MethodGet, "/healthz", map[string]string{"Origin": "https://patchwork.example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestDefaultSeedIsServed(t *testing.T) {
	engine, conf := newTestEngine(t)

	u, err := url.Parse(conf.DefaultSeedURL())
	require.NoError(t, err)
	assert.Equal(t, "/static/data/seed_image.png", u.Path)

	w := serve(engine, http.MethodGet, u.Path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	img, err := png.Decode(w.Body)
	require.NoError(t, err)
	assert.Equal(t, 512, img.Bounds().Dx())
	assert.Equal(t, 512, img.Bounds().Dy())
}

func TestEngineRoutes(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := serve(engine, http.MethodGet, "/generate", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http://localhost:8080/static/data/seed_image.png")

	w = serve(engine, http.MethodGet, "/static/css/style.css", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(engine, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "patchwork_http_requests_total")
}
