package config

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	cfg, err := FromEnv(os.LookupEnv)
	if err != nil {
		log.Fatalf("Error: %s", err)
	}
	return cfg
}

// FromEnv builds a Config using lookup to read variables.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	var missing []string
	getEnv := func(key string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		missing = append(missing, key)
		return ""
	}
	getEnvDefault := func(key, def string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		return def
	}

	cfg := Config{
		DBName:   getEnvDefault("DB_NAME", "overlay.db"),
		Port:     getEnvDefault("PORT", "8080"),
		LogLevel: getEnvDefault("LOG_LEVEL", "info"),
		Overlay: OverlayConfig{
			Dir: getEnv("OVERLAY_DIR"),
		},
		Slack: SlackConfig{
			Token:         getEnvDefault("SLACK_BOT_TOKEN", ""),
			ChannelID:     getEnvDefault("SLACK_CHANNEL_ID", ""),
			SigningSecret: getEnvDefault("SLACK_SIGNING_SECRET", ""),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnvDefault("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvDefault("TURSO_AUTH_TOKEN", ""),
		},
		PubSub: PubSubConfig{
			ProjectID: getEnvDefault("GCP_PROJECT", ""),
		},
	}
	if len(missing) > 0 {
		return Config{}, &MissingError{Keys: missing}
	}

	interval, err := time.ParseDuration(getEnvDefault("POLL_INTERVAL", "5s"))
	if err != nil || interval <= 0 {
		return Config{}, &InvalidError{Key: "POLL_INTERVAL", Value: getEnvDefault("POLL_INTERVAL", "")}
	}
	cfg.Overlay.PollInterval = interval

	keep, err := strconv.Atoi(getEnvDefault("KEEP_RENDERS", "500"))
	if err != nil || keep < 0 {
		return Config{}, &InvalidError{Key: "KEEP_RENDERS", Value: getEnvDefault("KEEP_RENDERS", "")}
	}
	cfg.Overlay.KeepRenders = keep

	return cfg, nil
}

// SlackEnabled reports whether enough is configured to post to Slack.
func (c Config) SlackEnabled() bool {
	return c.Slack.Token != "" && c.Slack.ChannelID != ""
}
