package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const defaultAPIEndpoint = "https://api.twitter.com/2"

// Load builds the process configuration once at startup. Precedence, lowest
// to highest: defaults, TOML config file, environment. A .env file is read
// into the environment first without overriding variables already set.
func Load() (Configs, error) {
	loadDotEnv()

	cfg := Configs{LogLevel: "INFO"}

	if path := configFile(); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, err
		}
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := firstEnv("X_BEARER_TOKEN", "BEARER_TOKEN"); v != "" {
		cfg.Twitter.AppAccessToken = v
	}
	if v := firstEnv("X_API_KEY", "TWITTER_API_KEY"); v != "" {
		cfg.Twitter.ConsumerAPIKey = v
	}
	if v := firstEnv("X_API_SECRET", "TWITTER_API_SECRET"); v != "" {
		cfg.Twitter.ConsumerAPISecret = v
	}
	if v := firstEnv("X_ACCESS_TOKEN", "TWITTER_ACCESS_TOKEN"); v != "" {
		cfg.Twitter.AccessToken = v
	}
	if v := firstEnv("X_ACCESS_TOKEN_SECRET", "TWITTER_ACCESS_TOKEN_SECRET"); v != "" {
		cfg.Twitter.AccessTokenSecret = v
	}

	if len(cfg.Twitter.APIEndpoints) == 0 {
		cfg.Twitter.APIEndpoints = []string{defaultAPIEndpoint}
	}

	return cfg, nil
}

func loadDotEnv() {
	if path := os.Getenv("XFETCH_ENV_FILE"); path != "" {
		_ = godotenv.Load(path)
		return
	}
	// godotenv never overrides variables that are already set.
	_ = godotenv.Load()
}

func configFile() string {
	if path := os.Getenv("XFETCH_CONFIG"); path != "" {
		return path
	}
	if _, err := os.Stat("xfetch.toml"); err == nil {
		return "xfetch.toml"
	}
	return ""
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
