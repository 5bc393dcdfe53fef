package speedreading

import (
	"errors"
	"fmt"
)

// State is the playback state of a Player.
type State int

const (
	Idle State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Event drives a State transition.
type Event int

const (
	EventStart Event = iota
	EventPause
	EventResume
	EventStop
	EventComplete
	EventReschedule
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventStop:
		return "stop"
	case EventComplete:
		return "complete"
	case EventReschedule:
		return "reschedule"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

var ErrInvalidTransition = errors.New("invalid transition")

// Transition returns the state reached from "from" on ev. Illegal
// combinations leave the state unchanged and return ErrInvalidTransition.
func Transition(from State, ev Event) (State, error) {
	switch from {
	case Idle:
		if ev == EventStart {
			return Playing, nil
		}
	case Playing:
		switch ev {
		case EventPause:
			return Paused, nil
		case EventStop, EventComplete:
			return Idle, nil
		case EventReschedule:
			return Playing, nil
		}
	case Paused:
		switch ev {
		case EventResume:
			return Playing, nil
		case EventStop:
			return Idle, nil
		}
	}
	return from, fmt.Errorf("%w: %s while %s", ErrInvalidTransition, ev, from)
}
