package config

import (
	"fmt"
	"net/url"
	"strings"
)

// 由服务自身从内嵌资源提供
const defaultSeedPath = "/static/data/seed_image.png"

type Seed struct {
	// DefaultURL is used when no earlier day has any submission.
	DefaultURL string `json:"default_url" yaml:"default_url"`
}

// DefaultSeedURL 默认种子图的绝对地址
func (c *Config) DefaultSeedURL() string {
	if c.Seed.DefaultURL != "" {
		return c.Seed.DefaultURL
	}
	return strings.TrimRight(c.App.PublicURL, "/") + defaultSeedPath
}

// 种子图需要服务端下载, 只接受 http(s) 绝对地址
func (c *Config) validateSeed() error {
	raw := c.DefaultSeedURL()
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("default seed url %q is not an absolute http(s) url, check app.public_url or seed.default_url", raw)
	}
	return nil
}
