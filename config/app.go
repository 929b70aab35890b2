package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// PublicURL 对外访问地址, 用于拼接静态资源的绝对路径
	PublicURL string `json:"public_url" yaml:"public_url"`
}
