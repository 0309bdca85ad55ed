package toolloop

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultModel is the tool-use model queried when nothing else is configured.
const DefaultModel = "llama-3.3-70b-versatile"

type Config struct {
	APIKey        string `yaml:"api_key"`
	Model         string `yaml:"model"`
	BaseURL       string `yaml:"base_url"`
	StoreDSN      string `yaml:"store_dsn"`
	WeatherAPIKey string `yaml:"weather_api_key"`
}

// LoadConfig reads the optional YAML file at path, then lets environment
// variables override it. A .env file is honored when present. A missing API
// key is not an error here; it fails downstream at the first model call.
func LoadConfig(path string) (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, falling back to environment variables")
	}

	cfg := &Config{
		Model:   DefaultModel,
		BaseURL: DefaultBaseURL,
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.APIKey = getEnv("GROQ_API_KEY", cfg.APIKey)
	cfg.Model = getEnv("TOOLLOOP_MODEL", cfg.Model)
	cfg.BaseURL = getEnv("TOOLLOOP_BASE_URL", cfg.BaseURL)
	cfg.StoreDSN = getEnv("TOOLLOOP_STORE_DSN", cfg.StoreDSN)
	cfg.WeatherAPIKey = getEnv("WEATHER_API_KEY", cfg.WeatherAPIKey)
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
