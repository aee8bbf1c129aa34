package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	DatabaseURL  string `env:"DATABASE_URL,required"`
	GeminiAPIKey string `env:"GEMINI_API_KEY,required"`
	GroqAPIKey   string `env:"GROQ_API_KEY,required"`

	// Provider endpoints. Overridable mainly for local testing.
	GroqAPIURL string `env:"GROQ_API_URL" envDefault:"https://api.groq.com/openai/v1"`

	// Server
	Port int `env:"PORT" envDefault:"3000"`

	// Image uploads
	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
