package speedreading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from State
		ev   Event
		want State
		ok   bool
	}{
		{Idle, EventStart, Playing, true},
		{Idle, EventPause, Idle, false},
		{Idle, EventResume, Idle, false},
		{Idle, EventStop, Idle, false},
		{Idle, EventComplete, Idle, false},
		{Idle, EventReschedule, Idle, false},

		{Playing, EventStart, Playing, false},
		{Playing, EventPause, Paused, true},
		{Playing, EventResume, Playing, false},
		{Playing, EventStop, Idle, true},
		{Playing, EventComplete, Idle, true},
		{Playing, EventReschedule, Playing, true},

		{Paused, EventStart, Paused, false},
		{Paused, EventPause, Paused, false},
		{Paused, EventResume, Playing, true},
		{Paused, EventStop, Idle, true},
		{Paused, EventComplete, Paused, false},
		{Paused, EventReschedule, Paused, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.ev.String(), func(t *testing.T) {
			got, err := Transition(tt.from, tt.ev)
			assert.Equal(t, tt.want, got)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "playing", Playing.String())
	assert.Equal(t, "paused", Paused.String())
	assert.Equal(t, "State(9)", State(9).String())
	assert.Equal(t, "reschedule", EventReschedule.String())
	assert.Equal(t, "Event(-1)", Event(-1).String())
}
