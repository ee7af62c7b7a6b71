package nats

import (
	"testing"
	"time"

	"samvidhan-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_CarriesTypeAndTime(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	in := events.BaseEvent{
		Type:       events.LawyerApproved,
		Data:       map[string]interface{}{"lawyer_id": "abc"},
		OccurredAt: at,
	}

	raw, err := encode(in)
	require.NoError(t, err)

	out, err := decode("events.SOMETHING_ELSE", raw)
	require.NoError(t, err)
	assert.Equal(t, events.LawyerApproved, out.Type)
	assert.True(t, at.Equal(out.OccurredAt))
	assert.Equal(t, "abc", events.StringField(out, "lawyer_id"))
}

func TestDecode_TypeFromSubject(t *testing.T) {
	out, err := decode(Subject(events.UserRegistered), []byte(`{"data":{"user_id":"u1"}}`))
	require.NoError(t, err)
	assert.Equal(t, events.UserRegistered, out.Type)
	assert.False(t, out.OccurredAt.IsZero())

	_, err = decode("events.X", []byte("nope"))
	assert.Error(t, err)
}
