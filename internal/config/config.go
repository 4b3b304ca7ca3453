package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Gateway struct {
		BaseURL        string `yaml:"baseURL"`
		Model          string `yaml:"model"`
		TimeoutSeconds int    `yaml:"timeoutSeconds"`
	} `yaml:"gateway"`

	RateLimit struct {
		Capacity   int `yaml:"capacity"`
		RefillRate int `yaml:"refillRate"`
	} `yaml:"rateLimit"`
}

// apiKeyEnv is the only source for the gateway credential; it is never read
// from the config file.
const apiKeyEnv = "AI_GATEWAY_API_KEY"

// Load reads the yaml config at path. A missing file yields the defaults so
// the server still starts with env-only configuration.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Gateway.BaseURL = "https://ai.gateway.lovable.dev/v1"
	cfg.Gateway.Model = "google/gemini-2.5-pro"
	cfg.Gateway.TimeoutSeconds = 90
	cfg.RateLimit.Capacity = 10
	cfg.RateLimit.RefillRate = 1
	return cfg
}

// APIKey returns the gateway credential from the environment. Absence is a
// per-request configuration error, not a startup failure.
func (c *Config) APIKey() string {
	return os.Getenv(apiKeyEnv)
}

// GatewayTimeout returns the bound applied to each upstream call.
func (c *Config) GatewayTimeout() time.Duration {
	if c.Gateway.TimeoutSeconds <= 0 {
		return 90 * time.Second
	}
	return time.Duration(c.Gateway.TimeoutSeconds) * time.Second
}
