package request

import (
	"strings"
	"time"

	"shareit/internal/pkg/errs"
)

// Request is a user's post describing an item they need; items may later
// reference the request they answer.
type Request struct {
	id          int64
	description string
	userID      int64
	created     time.Time
}

func New(userID int64, description string, created time.Time) (*Request, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, errs.ErrInvalidInput
	}
	return &Request{
		description: description,
		userID:      userID,
		created:     created,
	}, nil
}

func (r *Request) ID() int64           { return r.id }
func (r *Request) Description() string { return r.description }
func (r *Request) UserID() int64       { return r.userID }
func (r *Request) Created() time.Time  { return r.created }
