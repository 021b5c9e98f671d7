package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	BotDebug      bool
	PollTimeout   time.Duration

	LogLevel string

	// EnvFileLoaded reports whether a .env file was found.
	EnvFileLoaded bool
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getSecondsEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return time.Duration(n) * time.Second
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(envFiles ...string) *Config {
	loaded := godotenv.Load(envFiles...) == nil

	return &Config{
		TelegramToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		BotDebug:      getBoolEnv("MOTIVETYPE_BOT_DEBUG", false),
		PollTimeout:   getSecondsEnv("MOTIVETYPE_POLL_TIMEOUT", 60*time.Second),
		LogLevel:      getEnv("MOTIVETYPE_LOG_LEVEL", "info"),
		EnvFileLoaded: loaded,
	}
}

// ValidateBot checks the settings the Telegram bot cannot run without.
func (c *Config) ValidateBot() error {
	if c.TelegramToken == "" {
		return errors.New("TELEGRAM_BOT_TOKEN environment variable is required")
	}
	return nil
}
