package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// StatusError 远端返回了非 200 状态码
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

type Downloader struct {
	Client *http.Client
}

func NewDownloader() *Downloader {
	return &Downloader{Client: http.DefaultClient}
}

// Get 下载整个响应体, 非 200 返回 *StatusError
func (d *Downloader) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := d.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}
