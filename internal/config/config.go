package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	API     APIConfig
	Session SessionConfig
	Redis   RedisConfig
	Web     WebConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
	// RateLimit throttles outgoing backend calls; zero disables the limiter.
	RateLimit float64
	Burst     int
}

type SessionConfig struct {
	// Backend selects where the session survives restarts: "file", "redis" or "memory".
	Backend       string
	FilePath      string
	TTL           time.Duration
	CheckInterval time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Prefix   string
}

type WebConfig struct {
	Host string
	Port string
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	viper.AutomaticEnv()

	viper.SetDefault("API_BASE_URL", "http://localhost:8080/api")
	viper.SetDefault("API_TIMEOUT", 10)
	viper.SetDefault("API_RATE_LIMIT", 0.0)
	viper.SetDefault("API_BURST", 1)
	viper.SetDefault("SESSION_BACKEND", "file")
	viper.SetDefault("SESSION_FILE", ".pharmadesk-session.json")
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("SESSION_CHECK_MINUTES", 5)
	viper.SetDefault("REDIS_PREFIX", "pharmadesk:auth:")
	viper.SetDefault("WEB_HOST", "127.0.0.1")
	viper.SetDefault("WEB_PORT", "5173")

	cfg := &Config{
		API: APIConfig{
			BaseURL:   viper.GetString("API_BASE_URL"),
			Timeout:   time.Duration(viper.GetInt("API_TIMEOUT")) * time.Second,
			RateLimit: viper.GetFloat64("API_RATE_LIMIT"),
			Burst:     viper.GetInt("API_BURST"),
		},
		Session: SessionConfig{
			Backend:       viper.GetString("SESSION_BACKEND"),
			FilePath:      viper.GetString("SESSION_FILE"),
			TTL:           time.Duration(viper.GetInt("SESSION_TTL_HOURS")) * time.Hour,
			CheckInterval: time.Duration(viper.GetInt("SESSION_CHECK_MINUTES")) * time.Minute,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       0,
			Prefix:   viper.GetString("REDIS_PREFIX"),
		},
		Web: WebConfig{
			Host: viper.GetString("WEB_HOST"),
			Port: viper.GetString("WEB_PORT"),
		},
	}

	return cfg, nil
}
