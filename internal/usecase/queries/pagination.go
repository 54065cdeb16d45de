package queries

import (
	"shareit/internal/pkg/errs"
)

// Page is an offset window over a result set. Limit 0 means no limit,
// which the SQL layer turns into LIMIT NULL.
type Page struct {
	Limit  int64
	Offset int64
}

func NewPage(from, size int64) (Page, error) {
	if from < 0 {
		return Page{}, errs.Wrap(errs.ErrInvalidInput, "from must not be negative")
	}
	if size < 0 {
		return Page{}, errs.Wrap(errs.ErrInvalidInput, "size must not be negative")
	}
	return Page{Limit: size, Offset: from}, nil
}
