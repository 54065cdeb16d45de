package booking

import (
	"time"

	"shareit/internal/pkg/errs"
)

// Period is the requested rental window. Start must lie strictly before
// end; equal timestamps are rejected as well.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if end.Before(start) || start.Equal(end) {
		return Period{}, errs.ErrInvalidDateRange
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

// StartedBefore reports whether the window opens before the given instant.
func (p Period) StartedBefore(t time.Time) bool {
	return p.start.Before(t)
}
