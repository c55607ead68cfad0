package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/mauv0809/handball-stats/internal/processor"
	"github.com/mauv0809/handball-stats/internal/pubsub"
)

// EventPushHandler receives Pub/Sub push deliveries for the event named in the path.
func EventPushHandler(proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topic := pubsub.EventType(r.PathValue("topic"))
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received pushed event", "topic", topic, "body", string(bodyBytes))

		var pushMsg pubsub.PushMessage
		if err := json.Unmarshal(bodyBytes, &pushMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			writeError(w, r, fmt.Errorf("%w: invalid push envelope", handball.ErrInvalidInput))
			return
		}
		rawData, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			writeError(w, r, fmt.Errorf("%w: invalid base64 data", handball.ErrInvalidInput))
			return
		}

		if err := proc.HandleEvent(topic, rawData, IsDryRunFromContext(r)); err != nil {
			writeError(w, r, err)
			return
		}
		w.Write([]byte("OK"))
	}
}
