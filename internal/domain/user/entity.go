package user

import (
	"strings"

	"shareit/internal/pkg/errs"
)

type User struct {
	id    int64
	name  string
	email string
}

func New(name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, errs.ErrInvalidInput
	}
	if !validEmail(email) {
		return nil, errs.ErrInvalidInput
	}
	return &User{name: name, email: email}, nil
}

func Reconstruct(id int64, name, email string) *User {
	return &User{id: id, name: name, email: email}
}

// ApplyPatch applies partial-update semantics: nil means keep, a blank
// name is ignored.
func (u *User) ApplyPatch(name, email *string) error {
	if email != nil {
		trimmed := strings.TrimSpace(*email)
		if !validEmail(trimmed) {
			return errs.ErrInvalidInput
		}
		u.email = trimmed
	}
	if name != nil && strings.TrimSpace(*name) != "" {
		u.name = strings.TrimSpace(*name)
	}
	return nil
}

func validEmail(s string) bool {
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t")
}

func (u *User) ID() int64     { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }
