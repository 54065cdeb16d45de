package booking

// Status is the approval state of a booking.
//
// WAITING is the only non-terminal status: the item owner moves it to
// APPROVED or REJECTED exactly once. CANCELED exists as a stored value for
// archival rows but no operation produces it.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusCanceled Status = "CANCELED"
)

func (s Status) Decided() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s Status) Valid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected, StatusCanceled:
		return true
	}
	return false
}
