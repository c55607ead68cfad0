package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(map[string]string{
		"DB_NAME":           "handball.db",
		"PORT":              "8080",
		"MJ_APIKEY_PUBLIC":  "pub",
		"MJ_APIKEY_PRIVATE": "priv",
		"MAIL_FROM_EMAIL":   "coach@club.es",
		"SLACK_BOT_TOKEN":   "xoxb",
	}))
	require.NoError(t, err)

	assert.Equal(t, "handball.db", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "", cfg.Turso.PrimaryURL)
	assert.True(t, cfg.Mail.Enabled())
	assert.Equal(t, "HandBall Coaching", cfg.Mail.FromName)
	assert.False(t, cfg.Slack.Enabled(), "channel is missing")
	assert.Equal(t, "", cfg.ProjectID)
}

func TestFromEnv_MissingRequired(t *testing.T) {
	_, err := FromEnv(lookupFrom(map[string]string{"DB_NAME": "handball.db"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")

	_, err = FromEnv(lookupFrom(map[string]string{"DB_NAME": "", "PORT": "8080"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_NAME")
}

func TestMailEnabled_RequiresSender(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(map[string]string{
		"DB_NAME":           "handball.db",
		"PORT":              "8080",
		"MJ_APIKEY_PUBLIC":  "pub",
		"MJ_APIKEY_PRIVATE": "priv",
	}))
	require.NoError(t, err)
	assert.False(t, cfg.Mail.Enabled(), "sender address is missing")

	cfg.Mail.FromEmail = "coach@club.es"
	assert.True(t, cfg.Mail.Enabled())
}
