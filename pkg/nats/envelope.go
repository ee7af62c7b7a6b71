package nats

import (
	"encoding/json"
	"time"

	"samvidhan-be/pkg/events"
)

const (
	StreamName    = "SAMVIDHAN_EVENTS"
	subjectPrefix = "events."
)

// envelope is the wire format on the bus. The type travels with the payload so
// consumers do not have to derive it from the subject.
type envelope struct {
	Type       string                 `json:"type"`
	OccurredAt time.Time              `json:"occurred_at"`
	Data       map[string]interface{} `json:"data"`
}

func Subject(eventType string) string {
	return subjectPrefix + eventType
}

func encode(e events.Event) ([]byte, error) {
	return json.Marshal(envelope{
		Type:       e.EventType(),
		OccurredAt: e.Timestamp().UTC(),
		Data:       e.Payload(),
	})
}

func decode(subject string, raw []byte) (events.BaseEvent, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return events.BaseEvent{}, err
	}
	if env.Type == "" && len(subject) > len(subjectPrefix) {
		env.Type = subject[len(subjectPrefix):]
	}
	if env.OccurredAt.IsZero() {
		env.OccurredAt = time.Now()
	}
	return events.BaseEvent{Type: env.Type, Data: env.Data, OccurredAt: env.OccurredAt}, nil
}
