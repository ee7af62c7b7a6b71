package events

import (
	"context"
	"time"
)

const (
	UserRegistered       = "USER_REGISTERED"
	LawyerRegistered     = "LAWYER_REGISTERED"
	LawyerApproved       = "LAWYER_APPROVED"
	DeletionRequested    = "DELETION_REQUESTED"
	ConsultationRecorded = "CONSULTATION_RECORDED"
	PaymentCompleted     = "PAYMENT_COMPLETED"
	MessageReceived      = "MESSAGE_RECEIVED"
)

// Event defines the contract for all system events.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

// Publisher is the sending side of the event bus.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now()}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }

// StringField reads a string value from an event payload.
func StringField(e Event, key string) string {
	if e == nil || e.Payload() == nil {
		return ""
	}
	v, _ := e.Payload()[key].(string)
	return v
}
