package handlers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/handball-stats/internal/notifier"
)

// MassEmailRequest is the body of POST /mass-email. ToEmails is a comma
// separated address list.
type MassEmailRequest struct {
	ToEmails string `json:"toEmails"`
	ToName   string `json:"toName"`
	Subject  string `json:"subject"`
	Text     string `json:"text"`
	HTML     string `json:"html"`
}

// MassEmailResponse reports the outcome of a mass email.
type MassEmailResponse struct {
	Success bool   `json:"success"`
	Body    any    `json:"body,omitempty"`
	Error   string `json:"error,omitempty"`
}

// errMailNotConfigured is reported when no provider credentials are set.
var errMailNotConfigured = errors.New("mass email is not configured")

func MassEmailHandler(mailer notifier.Mailer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MassEmailRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, MassEmailResponse{Error: err.Error()})
			return
		}
		recipients := notifier.ParseRecipients(req.ToEmails)
		if len(recipients) == 0 {
			writeJSON(w, http.StatusBadRequest, MassEmailResponse{Error: notifier.ErrNoRecipients.Error()})
			return
		}
		if mailer == nil {
			writeJSON(w, http.StatusServiceUnavailable, MassEmailResponse{Error: errMailNotConfigured.Error()})
			return
		}

		body, err := mailer.SendMassEmail(r.Context(), notifier.MassEmail{
			ToEmails: recipients,
			ToName:   req.ToName,
			Subject:  req.Subject,
			Text:     req.Text,
			HTML:     req.HTML,
		}, IsDryRunFromContext(r))
		if err != nil {
			log.Error("Mass email failed", "error", err, "recipients", len(recipients))
			writeJSON(w, http.StatusInternalServerError, MassEmailResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, MassEmailResponse{Success: true, Body: body})
	}
}
