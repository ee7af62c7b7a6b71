package entity

import (
	"time"

	"github.com/google/uuid"
)

type ConsultationMode string

const (
	ModeText   ConsultationMode = "text"
	ModeVoice  ConsultationMode = "voice"
	ModeVisual ConsultationMode = "visual"
)

func (m ConsultationMode) Valid() bool {
	switch m {
	case ModeText, ModeVoice, ModeVisual:
		return true
	}
	return false
}

// Consultation outcomes, recorded for later quality review.
const (
	OutcomeParsed   = "parsed"
	OutcomeFallback = "fallback"
	OutcomeDegraded = "degraded"
)

type Consultation struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Query      string
	Mode       ConsultationMode
	Response   string
	Citations  []string
	Disclaimer string
	IsPremium  bool
	VisualData *string
	TopicId    string
	Outcome    string
	CreatedAt  time.Time
}

type ChatHistoryEntry struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	ConsultationId uuid.UUID
	Query          string
	Response       string
	Mode           ConsultationMode
	IsPremium      bool
	Citations      []string
	CreatedAt      time.Time
}
