package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once at process start and handed to wire.Build. Components
// receive what they need through their constructors — nothing reads the
// environment after startup.
type Config struct {
	Port        string
	DatabaseURL string

	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	RewriteLogPath string

	// PromptCacheTTL bounds how long cached prompt reads may serve without
	// revalidating against the database.
	PromptCacheTTL time.Duration

	// StrictToneUpdates makes PUT /prompts/tones/:keyword fail with 404 on an
	// unknown keyword instead of the historical silent no-op.
	StrictToneUpdates bool
}

// Load reads .env (if present) and the environment. Only the two API keys and
// the database URL are required.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4"),
		RewriteLogPath:    getEnv("REWRITE_LOG_PATH", "rewrite_history.json"),
		PromptCacheTTL:    getDuration("PROMPT_CACHE_TTL_SECONDS", 30*time.Second),
		StrictToneUpdates: getBool("STRICT_TONE_UPDATES", false),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL not set")
	}
	if cfg.GeminiAPIKey == "" {
		return Config{}, fmt.Errorf("GEMINI_API_KEY not set")
	}
	if cfg.OpenAIAPIKey == "" {
		return Config{}, fmt.Errorf("OPENAI_API_KEY not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
