package item

import (
	"strings"

	"shareit/internal/pkg/errs"
)

type Item struct {
	id          int64
	name        string
	description string
	available   bool
	ownerID     int64
	requestID   *int64
}

func New(ownerID int64, name, description string, available bool, requestID *int64) (*Item, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, errs.ErrInvalidInput
	}
	return &Item{
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
	}, nil
}

func Reconstruct(id, ownerID int64, name, description string, available bool, requestID *int64) *Item {
	return &Item{
		id:          id,
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
	}
}

// ApplyPatch overwrites only the fields present in the request; blank
// strings are treated as absent.
func (i *Item) ApplyPatch(name, description *string, available *bool) {
	if name != nil && strings.TrimSpace(*name) != "" {
		i.name = strings.TrimSpace(*name)
	}
	if description != nil && strings.TrimSpace(*description) != "" {
		i.description = strings.TrimSpace(*description)
	}
	if available != nil {
		i.available = *available
	}
}

func (i *Item) IsOwnedBy(userID int64) bool { return i.ownerID == userID }

func (i *Item) ID() int64           { return i.id }
func (i *Item) Name() string        { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) Available() bool     { return i.available }
func (i *Item) OwnerID() int64      { return i.ownerID }
func (i *Item) RequestID() *int64   { return i.requestID }
