package config

import (
	"flag"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Addr             string   `env:"RUN_ADDRESS" env-default:"localhost:8080"`
	DatabaseURL      string   `env:"DATABASE_URI"`
	PrivateKey       string   `env:"PRIVATE_KEY" env-default:"privatekey"`
	AuthDisabledURLs []string `env:"AUTH_DISABLED_URLS" env-default:"/login,/register,/api/news,/settings/public,/metrics" env-separator:","`
}

func Load() (*Config, error) {
	cfg := &Config{}

	flag.StringVar(&cfg.Addr, "a", "localhost:8080", "HTTP server address")
	flag.StringVar(&cfg.DatabaseURL, "d", "", "database URL")

	flag.Parse()

	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, fmt.Errorf("couldn't read environment variables: %w", err)
	}

	return cfg, nil
}
