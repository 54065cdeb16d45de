package queries

import (
	"strings"

	"shareit/internal/pkg/errs"
)

// State filters booking lists. ALL is the default; CURRENT, PAST and
// FUTURE slice by time against the clock, WAITING and REJECTED by status.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

func ParseState(raw string) (State, error) {
	if raw == "" {
		return StateAll, nil
	}
	switch s := State(strings.ToUpper(raw)); s {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return s, nil
	default:
		return "", errs.Wrapf(errs.ErrUnsupportedState, "unknown state %q", raw)
	}
}
