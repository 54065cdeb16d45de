package booking

import (
	"time"

	"shareit/internal/pkg/errs"
)

// Policy carries creation rules that varied across historical deployments.
type Policy struct {
	// RejectPastStart refuses windows that open before "now".
	RejectPastStart bool
}

type Booking struct {
	id       int64
	itemID   int64
	bookerID int64
	period   Period
	status   Status
}

// New validates the requested window and returns a WAITING booking ready
// for persistence. Item availability and self-booking checks are the
// caller's responsibility since they need item state.
func New(itemID, bookerID int64, start, end time.Time, now time.Time, policy Policy) (*Booking, error) {
	period, err := NewPeriod(start, end)
	if err != nil {
		return nil, err
	}
	if policy.RejectPastStart && period.StartedBefore(now) {
		return nil, errs.ErrInvalidDateRange
	}
	return &Booking{
		itemID:   itemID,
		bookerID: bookerID,
		period:   period,
		status:   StatusWaiting,
	}, nil
}

// Reconstruct rebuilds a persisted booking without re-running creation
// validation.
func Reconstruct(id, itemID, bookerID int64, start, end time.Time, status Status) *Booking {
	return &Booking{
		id:       id,
		itemID:   itemID,
		bookerID: bookerID,
		period:   Period{start: start, end: end},
		status:   status,
	}
}

// Decide performs the owner's terminal WAITING -> APPROVED/REJECTED
// transition. A second decision fails regardless of the value passed.
func (b *Booking) Decide(approved bool) error {
	if b.status != StatusWaiting {
		return errs.ErrBookingAlreadyDecided
	}
	if approved {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

func (b *Booking) ID() int64       { return b.id }
func (b *Booking) ItemID() int64   { return b.itemID }
func (b *Booking) BookerID() int64 { return b.bookerID }
func (b *Booking) Period() Period  { return b.period }
func (b *Booking) Status() Status  { return b.status }
