package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName   string
	Port     string
	LogLevel string
	Overlay  OverlayConfig
	Slack    SlackConfig
	Turso    TursoConfig
	PubSub   PubSubConfig
}

type OverlayConfig struct {
	// Dir is where the league runner writes summary.json and current_match.json.
	Dir          string
	PollInterval time.Duration
	// KeepRenders is how many renders the store retains; 0 keeps all.
	KeepRenders int
}

type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type PubSubConfig struct {
	// ProjectID is empty when publishing is disabled.
	ProjectID string
}
