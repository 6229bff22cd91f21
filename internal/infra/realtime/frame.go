package realtime

import (
	"encoding/json"

	"household-services/internal/domain/notification"
)

// Inbound and control events of the wire protocol.
const (
	EventJoin       = "join"
	EventJoinLegacy = "joinRoom"
	EventJoined     = "joined"
	EventError      = "error"
)

type inboundFrame struct {
	Event     string `json:"event"`
	SubjectID string `json:"subjectId"`
}

type controlFrame struct {
	Event     string `json:"event"`
	Message   string `json:"message,omitempty"`
	SubjectID string `json:"subjectId,omitempty"`
}

// EncodeEvent flattens the payload next to event and message: {event, message, booking?, service?, ...}.
func EncodeEvent(event notification.Event) ([]byte, error) {
	body := make(map[string]any, len(event.Payload)+2)
	for k, v := range event.Payload {
		body[k] = v
	}
	body["event"] = event.Kind.String()
	body["message"] = event.Message
	return json.Marshal(body)
}

func encodeControl(f controlFrame) []byte {
	b, _ := json.Marshal(f)
	return b
}
