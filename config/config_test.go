package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SEED_DEFAULT_URL", "")

	conf, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, 8080, conf.Server.Http)
	assert.Equal(t, 3306, conf.MySQL.Port)
	assert.Equal(t, DriverS3, conf.Storage.Driver)
	assert.Equal(t, "pixelspatchwork", conf.Storage.Bucket)
	assert.Equal(t, "dall-e-2", conf.OpenAI.Model)
	assert.Equal(t, "http://localhost:8080/static/data/seed_image.png", conf.DefaultSeedURL())
}

func TestParse_PublicURLFollowsPort(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SEED_DEFAULT_URL", "")

	conf, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9090/static/data/seed_image.png", conf.DefaultSeedURL())
}

func TestParse_RelativeSeedURL(t *testing.T) {
	t.Setenv("SEED_DEFAULT_URL", "")

	for _, content := range []string{
		"seed:\n  default_url: /static/data/seed_image.png\n",
		"app:\n  public_url: patchwork.example.com\n",
		"seed:\n  default_url: ftp://files.example.com/seed.png\n",
	} {
		_, err := Parse([]byte(content))
		assert.Error(t, err, content)
	}
}

func TestParse_YamlAndEnv(t *testing.T) {
	t.Setenv("RDS_HOST", "db.internal")
	t.Setenv("RDS_PORT", "3307")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SEED_DEFAULT_URL", "")

	content := []byte(`
app:
  public_url: https://patchwork.example.com/
mysql:
  host: localhost
  database: patchwork
storage:
  driver: oss
  bucket: my-bucket
`)
	conf, err := Parse(content)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", conf.MySQL.Host)
	assert.Equal(t, 3307, conf.MySQL.Port)
	assert.Equal(t, "patchwork", conf.MySQL.Database)
	assert.Equal(t, "sk-test", conf.OpenAI.APIKey)
	assert.Equal(t, DriverOss, conf.Storage.Driver)
	assert.Equal(t, "my-bucket", conf.Storage.Bucket)
	assert.Equal(t, "https://patchwork.example.com/static/data/seed_image.png", conf.DefaultSeedURL())
}

func TestParse_InvalidPort(t *testing.T) {
	t.Setenv("RDS_PORT", "not-a-port")

	_, err := Parse(nil)
	assert.Error(t, err)
}

func TestDefaultSeedURL_Override(t *testing.T) {
	t.Setenv("SEED_DEFAULT_URL", "https://cdn.example.com/seed.png")

	conf, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/seed.png", conf.DefaultSeedURL())
}

func TestValidateCredentials(t *testing.T) {
	conf, err := Parse([]byte("storage:\n  driver: s3\n"))
	require.NoError(t, err)
	conf.OpenAI.APIKey = ""
	conf.Storage.S3.AccessKeyID = ""
	conf.Storage.S3.SecretAccessKey = ""

	err = conf.ValidateCredentials()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	assert.Contains(t, err.Error(), "AWS_SECRET_ACCESS_KEY")

	conf.OpenAI.APIKey = "sk"
	conf.Storage.S3.AccessKeyID = "ak"
	conf.Storage.S3.SecretAccessKey = "sk"
	assert.NoError(t, conf.ValidateCredentials())

	conf.Storage.Driver = DriverGcs
	assert.NoError(t, conf.ValidateCredentials())
}

func TestMySQLDsn(t *testing.T) {
	m := &MySQL{Host: "h", Port: 3306, Database: "d", Username: "u", Password: "p"}
	assert.Equal(t, "u:p@tcp(h:3306)/d?charset=utf8mb4&parseTime=True&loc=UTC", m.Dsn())
}
