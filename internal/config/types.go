package config

// Config holds all configuration for the application.
type Config struct {
	DBName    string
	Port      string
	Turso     TursoConfig
	Mail      MailConfig
	Slack     SlackConfig
	ProjectID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type MailConfig struct {
	PublicKey  string
	PrivateKey string
	FromEmail  string
	FromName   string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

// Enabled reports whether mass email can be sent.
func (m MailConfig) Enabled() bool {
	return m.PublicKey != "" && m.PrivateKey != "" && m.FromEmail != ""
}

// Enabled reports whether match results are posted to Slack.
func (s SlackConfig) Enabled() bool {
	return s.Token != "" && s.ChannelID != ""
}
