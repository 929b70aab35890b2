package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var ErrInvalidDataURL = errors.New("invalid data url")

// DecodeDataURL 解析 data:image/png;base64,xxxx 格式的图片
func DecodeDataURL(dataURL string) ([]byte, error) {
	_, encoded, ok := strings.Cut(dataURL, ",")
	if !ok {
		return nil, ErrInvalidDataURL
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	return data, nil
}

// Canvas decodes any supported image, stretches it to size x size RGBA and
// returns it PNG-encoded. Transparency is kept so masks stay usable.
func Canvas(data []byte, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %d", size)
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode %s as png: %w", format, err)
	}
	return buf.Bytes(), nil
}
