package config

const (
	DriverS3  = "s3"
	DriverOss = "oss"
	DriverGcs = "gcs"
)

// Storage 对象存储配置, driver 决定使用哪一个云厂商
type Storage struct {
	Driver string `json:"driver" yaml:"driver"`
	Bucket string `json:"bucket" yaml:"bucket"`
	// PublicURL overrides the provider's default public URL prefix when set.
	PublicURL string     `json:"public_url" yaml:"public_url"`
	S3        *S3Config  `json:"s3" yaml:"s3"`
	Oss       *OssConfig `json:"oss" yaml:"oss"`
	Gcs       *GcsConfig `json:"gcs" yaml:"gcs"`
}

type S3Config struct {
	Region          string `json:"region" yaml:"region"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	SecretAccessKey string `json:"sk" yaml:"sk"`
}

type GcsConfig struct {
	CredentialsFile string `json:"credentials_file" yaml:"credentials_file"`
}

func ProvideStorageConfig(cfg *Config) *Storage {
	return cfg.Storage
}

func (s *Storage) missingCredentials() []string {
	var missing []string
	switch s.Driver {
	case DriverS3:
		if s.S3.AccessKeyID == "" {
			missing = append(missing, "AWS_ACCESS_KEY_ID")
		}
		if s.S3.SecretAccessKey == "" {
			missing = append(missing, "AWS_SECRET_ACCESS_KEY")
		}
	case DriverOss:
		if s.Oss.AccessKeyID == "" {
			missing = append(missing, "OSS_ACCESS_KEY_ID")
		}
		if s.Oss.AccessKeySecret == "" {
			missing = append(missing, "OSS_ACCESS_KEY_SECRET")
		}
	}
	// gcs 使用 ADC, 没有静态凭证也可以运行
	return missing
}
