package mailjet

import (
	"context"
	"encoding/json"

	"github.com/charmbracelet/log"
	mailjet "github.com/mailjet/mailjet-apiv3-go/v4"
	"github.com/mauv0809/handball-stats/internal/metrics"
	"github.com/mauv0809/handball-stats/internal/notifier"
)

// CustomID tags every mass email in the provider's dashboard.
const CustomID = "MassEmail"

var _ notifier.Mailer = &Mailer{}

type sendFunc func(messages *mailjet.MessagesV31) (*mailjet.ResultsV31, error)

// Mailer sends mass emails through the Mailjet v3.1 send API.
type Mailer struct {
	send      sendFunc
	fromEmail string
	fromName  string
	metrics   metrics.Metrics
}

// NewMailer creates a Mailer authenticated with the given API key pair.
func NewMailer(publicKey, privateKey, fromEmail, fromName string, metrics metrics.Metrics) *Mailer {
	client := mailjet.NewMailjetClient(publicKey, privateKey)
	return NewMailerWithSender(func(messages *mailjet.MessagesV31) (*mailjet.ResultsV31, error) {
		return client.SendMailV31(messages)
	}, fromEmail, fromName, metrics)
}

// NewMailerWithSender creates a Mailer with a custom send function.
// Useful for tests that need to intercept API calls.
func NewMailerWithSender(send sendFunc, fromEmail, fromName string, metrics metrics.Metrics) *Mailer {
	return &Mailer{
		send:      send,
		fromEmail: fromEmail,
		fromName:  fromName,
		metrics:   metrics,
	}
}

// SendMassEmail sends one message to every recipient. Provider errors are
// returned as is and never retried.
func (m *Mailer) SendMassEmail(ctx context.Context, email notifier.MassEmail, dryRun bool) (any, error) {
	if len(email.ToEmails) == 0 {
		return nil, notifier.ErrNoRecipients
	}
	messages := m.buildMessages(email)

	if dryRun {
		jsonMsg, _ := json.MarshalIndent(messages, "", "  ")
		log.Info("[Dry Run] Would send mass email", "recipients", len(email.ToEmails), "message", string(jsonMsg))
		return map[string]any{"dryRun": true, "recipients": len(email.ToEmails)}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := m.send(messages)
	if err != nil {
		m.metrics.IncEmailsFailed()
		log.Error("Failed to send mass email", "error", err, "recipients", len(email.ToEmails))
		return nil, err
	}

	m.metrics.IncEmailsSent(len(email.ToEmails))
	log.Info("Successfully sent mass email", "recipients", len(email.ToEmails), "subject", email.Subject)
	return res, nil
}

func (m *Mailer) buildMessages(email notifier.MassEmail) *mailjet.MessagesV31 {
	to := make(mailjet.RecipientsV31, 0, len(email.ToEmails))
	for _, addr := range email.ToEmails {
		to = append(to, mailjet.RecipientV31{Email: addr, Name: email.ToName})
	}
	return &mailjet.MessagesV31{
		Info: []mailjet.InfoMessagesV31{
			{
				From: &mailjet.RecipientV31{
					Email: m.fromEmail,
					Name:  m.fromName,
				},
				To:       &to,
				Subject:  email.Subject,
				TextPart: email.Text,
				HTMLPart: email.HTML,
				CustomID: CustomID,
			},
		},
	}
}
