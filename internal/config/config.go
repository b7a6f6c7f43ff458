package config

import (
	"fmt"
	"os"
	"time"

	"github.com/Nyaughh/verceiptify/internal/repository"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	repository.PostgresCfg

	HTTPPort        string        `env:"PORT"             env-default:"8080"`
	VercelAPIURL    string        `env:"VERCEL_API_URL"   env-default:"https://api.vercel.com"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" env-default:"30s"`
}

func NewConfig() (*Config, error) {
	var cfg Config

	path := os.Getenv("ENV_PATH")
	if path == "" {
		path = "./config/.env"
	}

	err := cleanenv.ReadConfig(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return &cfg, err
}
