package errs

// Domain sentinel errors shared by the usecase layers. Handlers translate
// these to HTTP statuses; nothing below this layer knows about HTTP.
var (
	// NotFound class. Also used to hide existence from users without
	// visibility (non-owner booking updates, third-party getById).
	ErrUserNotFound    = New("user not found")
	ErrItemNotFound    = New("item not found")
	ErrBookingNotFound = New("booking not found")
	ErrRequestNotFound = New("request not found")

	// SelfBooking is distinct from NotFound but mapped identically at the
	// boundary so the reason is not disclosed.
	ErrSelfBooking = New("owner cannot book own item")

	// BookingConflict class: domain rule violations.
	ErrItemUnavailable       = New("item unavailable")
	ErrInvalidDateRange      = New("invalid booking date range")
	ErrBookingAlreadyDecided = New("booking already approved or rejected")
	ErrCommentWithoutBooking = New("cannot comment without a completed booking")

	// UnsupportedState: unrecognized listing filter token.
	ErrUnsupportedState = New("unsupported state")

	// Conflicts owned by the user module.
	ErrDuplicateEmail = New("email already in use")

	// Validation of request-level inputs (pagination bounds, blank fields).
	ErrInvalidInput = New("invalid input")

	// Operation marker for unexpected persistence failures.
	ErrDatabaseOperationFailed = New("database operation failed")
)
