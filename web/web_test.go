package web

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	tpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"index.html", "generate.html", "vote.html", "goodbye.html"} {
		assert.NotNil(t, tpl.Lookup(name), name)
	}

	var buf bytes.Buffer
	require.NoError(t, tpl.ExecuteTemplate(&buf, "generate.html", map[string]any{
		"seed_image_url": "https://cdn.example.com/seed.png",
	}))
	assert.Contains(t, buf.String(), `src="https://cdn.example.com/seed.png"`)
}

func TestStatic_SeedImage(t *testing.T) {
	f, err := Static().Open("/data/seed_image.png")
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 512, img.Bounds().Dx())
	assert.Equal(t, 512, img.Bounds().Dy())
}
