package config

import (
	"fmt"
	"log"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the server configuration. Everything comes from the
// environment; an optional .env file is loaded by main before this.
type Config struct {
	// Server settings
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// SQLite database file. ":memory:" gives a throwaway instance.
	DBPath string `envconfig:"DB_PATH" default:"stories.db"`

	// CORS
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// AI assistant settings. An empty API key disables the assistant
	// (requests get a localized error) but the rest of the app works.
	OpenAIAPIKey     string `envconfig:"OPENAI_API_KEY"`
	AIModel          string `envconfig:"AI_MODEL" default:"gpt-3.5-turbo"`
	AIBaseURL        string `envconfig:"AI_BASE_URL"`
	AITimeoutSeconds int    `envconfig:"AI_TIMEOUT_SECONDS" default:"60"`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log.Printf("Configuration loaded:")
	log.Printf("  Port: %s", cfg.Port)
	log.Printf("  LogLevel: %s", cfg.LogLevel)
	log.Printf("  DBPath: %s", cfg.DBPath)
	log.Printf("  AI Model: %s", cfg.AIModel)
	if cfg.OpenAIAPIKey != "" {
		log.Println("  OpenAI API Key: [SET]")
	} else {
		log.Println("  OpenAI API Key: [NOT SET] - AI assistant disabled")
	}

	return &cfg, nil
}
