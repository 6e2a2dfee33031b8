package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
)

func TestParseDate(t *testing.T) {
	got, err := parseDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	for in, want := range map[string]time.Time{
		"2025-03-14":           time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		"2025-03-14T09:30":     time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		"2025-03-14T09:30:00Z": time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	} {
		got, err := parseDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(*got), in)
	}

	_, err = parseDate("14/03/2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestToRegisteredEventResponses(t *testing.T) {
	out := ToRegisteredEventResponses([]entity.RegisteredEvent{
		{RegistrationEntry: entity.RegistrationEntry{EventID: "e1", RegistrationCode: "c1"}, Event: &entity.Event{ID: "e1"}},
		{RegistrationEntry: entity.RegistrationEntry{EventID: "e2", RegistrationCode: "c2"}},
	})
	require.Len(t, out, 2)
	assert.Equal(t, "e1", out[0].Event.ID)
	assert.Equal(t, "", out[0].Event.CreatedAt)
	assert.Nil(t, out[1].Event)
	assert.Equal(t, "c2", out[1].RegistrationCode)
}
