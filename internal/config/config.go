package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const defaultFromName = "HandBall Coaching"

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	cfg, err := FromEnv(os.LookupEnv)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	return cfg
}

// FromEnv builds a Config using lookup. DB_NAME and PORT are required.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	var missing error
	// A helper function to get a required env var.
	getEnv := func(key string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		if missing == nil {
			missing = fmt.Errorf("required environment variable %s is not set", key)
		}
		return ""
	}
	optional := func(key, fallback string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		return fallback
	}

	cfg := Config{
		DBName: getEnv("DB_NAME"),
		Port:   getEnv("PORT"),
		Turso: TursoConfig{
			PrimaryURL: optional("TURSO_PRIMARY_URL", ""),
			AuthToken:  optional("TURSO_AUTH_TOKEN", ""),
		},
		Mail: MailConfig{
			PublicKey:  optional("MJ_APIKEY_PUBLIC", ""),
			PrivateKey: optional("MJ_APIKEY_PRIVATE", ""),
			FromEmail:  optional("MAIL_FROM_EMAIL", ""),
			FromName:   optional("MAIL_FROM_NAME", defaultFromName),
		},
		Slack: SlackConfig{
			Token:     optional("SLACK_BOT_TOKEN", ""),
			ChannelID: optional("SLACK_CHANNEL_ID", ""),
		},
		ProjectID: optional("GCP_PROJECT", ""),
	}
	if missing != nil {
		return Config{}, missing
	}
	return cfg, nil
}
