package notifier

import (
	"context"
	"errors"
	"strings"

	"github.com/mauv0809/handball-stats/internal/handball"
)

// ErrNoRecipients is returned when a mass email has no usable address.
var ErrNoRecipients = errors.New("no valid email addresses provided")

// Notifier announces match events to the team channel.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	SendResultNotification(match *handball.Match, dryRun bool) error
}

// MassEmail is one message addressed to many recipients.
type MassEmail struct {
	ToEmails []string
	ToName   string
	Subject  string
	Text     string
	HTML     string
}

// Mailer sends a mass email through the configured provider. The returned
// body is the provider's response payload.
type Mailer interface {
	SendMassEmail(ctx context.Context, email MassEmail, dryRun bool) (any, error)
}

// ParseRecipients splits a comma separated address list, trimming blanks and
// dropping empty entries.
func ParseRecipients(raw string) []string {
	recipients := []string{}
	for _, part := range strings.Split(raw, ",") {
		if email := strings.TrimSpace(part); email != "" {
			recipients = append(recipients, email)
		}
	}
	return recipients
}
