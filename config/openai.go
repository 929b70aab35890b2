package config

type OpenAIConfig struct {
	APIKey  string `json:"api_key" yaml:"api_key"`
	BaseURL string `json:"base_url" yaml:"base_url"`
	Model   string `json:"model" yaml:"model"`
}

func ProvideOpenAIConfig(cfg *Config) *OpenAIConfig {
	return cfg.OpenAI
}
