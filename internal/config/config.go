package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string
	DatabaseURL    string
	DatabasePath   string
	MigrationsPath string

	// Admin auth
	AdminBootstrapUser     string
	AdminBootstrapPassword string
	AdminTokenSecret       string
	AdminTokenTTL          time.Duration
	AdminEmailAllowlist    []string

	// Session tracking
	SessionInactiveAfter time.Duration

	// Rate limiting for credential endpoints
	LoginRateLimit  int
	LoginRateWindow time.Duration

	// Email (SES)
	AWSRegion    string
	SESFromEmail string
	SESFromName  string
	AppBaseURL   string

	// Google SSO for the admin panel
	GoogleClientID     string
	GoogleClientSecret string

	// Generative-AI API for the admin coding assistant
	LLMBaseURL    string
	LLMAPIKey     string
	LLMModels     []string
	AgentRoot     string
	AgentMaxSteps int

	// Uploaded images
	UploadMaxSize int64
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		DatabaseType:   getEnv("DB_TYPE", "sqlite"),
		DatabaseURL:    getEnv("DB_URL", ""),
		DatabasePath:   getEnv("DB_PATH", "./velocilector.db"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),

		AdminBootstrapUser:     getEnv("ADMIN_USER", "admin"),
		AdminBootstrapPassword: getEnv("ADMIN_PASSWORD", ""),
		AdminTokenSecret:       getEnv("ADMIN_TOKEN_SECRET", ""),
		AdminTokenTTL:          getDuration("ADMIN_TOKEN_TTL", 8*time.Hour),
		AdminEmailAllowlist:    getList("ADMIN_EMAIL_ALLOWLIST"),

		SessionInactiveAfter: getDuration("SESSION_INACTIVE_AFTER", 5*time.Minute),

		LoginRateLimit:  getInt("LOGIN_RATE_LIMIT", 10),
		LoginRateWindow: getDuration("LOGIN_RATE_WINDOW", time.Minute),

		AWSRegion:    getEnv("AWS_REGION", "eu-west-1"),
		SESFromEmail: getEnv("SES_FROM_EMAIL", ""),
		SESFromName:  getEnv("SES_FROM_NAME", "Velocilector"),
		AppBaseURL:   getEnv("APP_BASE_URL", "http://localhost:8080"),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),

		LLMBaseURL:    getEnv("LLM_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		LLMAPIKey:     getEnv("LLM_API_KEY", ""),
		LLMModels:     getListDefault("LLM_MODELS", []string{"gemini-2.0-flash", "gemini-1.5-flash", "gemini-1.5-pro"}),
		AgentRoot:     getEnv("AGENT_ROOT", "."),
		AgentMaxSteps: getInt("AGENT_MAX_STEPS", 8),

		UploadMaxSize: 5 * 1024 * 1024, // 5MB
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getInt reads an integer environment variable or returns a default value
func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getDuration reads a duration environment variable or returns a default value
func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getList reads a comma-separated environment variable
func getList(key string) []string {
	return getListDefault(key, nil)
}

func getListDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
