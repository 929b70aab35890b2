package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App     *App          `json:"app" yaml:"app"`
	Server  *Server       `json:"server" yaml:"server"`
	MySQL   *MySQL        `json:"mysql" yaml:"mysql"`
	Storage *Storage      `json:"storage" yaml:"storage"`
	OpenAI  *OpenAIConfig `json:"openai" yaml:"openai"`
	Seed    *Seed         `json:"seed" yaml:"seed"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// New 读取 yaml 配置, 文件不存在时只使用默认值和环境变量
func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}

	return conf
}

// Parse decodes yaml content, fills defaults and applies environment overrides.
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}

	conf.setDefaults()
	if err := conf.applyEnv(); err != nil {
		return nil, err
	}
	// 未配置对外地址时默认种子图走本机端口
	if conf.App.PublicURL == "" {
		conf.App.PublicURL = fmt.Sprintf("http://localhost:%d", conf.Server.Http)
	}
	if err := conf.validateSeed(); err != nil {
		return nil, err
	}

	return &conf, nil
}

func (c *Config) setDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.MySQL == nil {
		c.MySQL = &MySQL{}
	}
	if c.MySQL.Port == 0 {
		c.MySQL.Port = 3306
	}
	if c.Storage == nil {
		c.Storage = &Storage{}
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverS3
	}
	if c.Storage.Bucket == "" {
		c.Storage.Bucket = "pixelspatchwork"
	}
	if c.Storage.S3 == nil {
		c.Storage.S3 = &S3Config{}
	}
	if c.Storage.Oss == nil {
		c.Storage.Oss = &OssConfig{}
	}
	if c.Storage.Gcs == nil {
		c.Storage.Gcs = &GcsConfig{}
	}
	if c.OpenAI == nil {
		c.OpenAI = &OpenAIConfig{}
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "dall-e-2"
	}
	if c.Seed == nil {
		c.Seed = &Seed{}
	}
}

func (c *Config) applyEnv() error {
	setString(&c.MySQL.Host, "RDS_HOST")
	setString(&c.MySQL.Database, "RDS_DATABASE")
	setString(&c.MySQL.Username, "RDS_USERNAME")
	setString(&c.MySQL.Password, "RDS_PASSWORD")
	if err := setInt(&c.MySQL.Port, "RDS_PORT"); err != nil {
		return err
	}
	if err := setInt(&c.Server.Http, "PORT"); err != nil {
		return err
	}

	setString(&c.OpenAI.APIKey, "OPENAI_API_KEY")

	setString(&c.Storage.S3.AccessKeyID, "AWS_ACCESS_KEY_ID")
	setString(&c.Storage.S3.SecretAccessKey, "AWS_SECRET_ACCESS_KEY")
	setString(&c.Storage.S3.Region, "AWS_REGION")
	setString(&c.Storage.Oss.AccessKeyID, "OSS_ACCESS_KEY_ID")
	setString(&c.Storage.Oss.AccessKeySecret, "OSS_ACCESS_KEY_SECRET")
	setString(&c.Storage.Gcs.CredentialsFile, "GOOGLE_APPLICATION_CREDENTIALS")

	setString(&c.Seed.DefaultURL, "SEED_DEFAULT_URL")
	return nil
}

// ValidateCredentials 检查生成图片所需的第三方凭证
func (c *Config) ValidateCredentials() error {
	var missing []string
	if c.OpenAI.APIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	missing = append(missing, c.Storage.missingCredentials()...)

	if len(missing) > 0 {
		return fmt.Errorf("missing credentials: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s env variable: %w", key, err)
	}
	*dst = n
	return nil
}
