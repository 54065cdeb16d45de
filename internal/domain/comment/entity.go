package comment

import (
	"strings"
	"time"

	"shareit/internal/pkg/errs"
)

const MaxTextLength = 2000

type Comment struct {
	id       int64
	text     string
	itemID   int64
	authorID int64
	created  time.Time
}

// New validates the text only. Eligibility (a completed booking of the
// item by the author) is checked by the command layer against persistence.
func New(itemID, authorID int64, text string, created time.Time) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errs.ErrInvalidInput
	}
	if len(text) > MaxTextLength {
		return nil, errs.ErrInvalidInput
	}
	return &Comment{
		text:     text,
		itemID:   itemID,
		authorID: authorID,
		created:  created,
	}, nil
}

func (c *Comment) ID() int64          { return c.id }
func (c *Comment) Text() string       { return c.text }
func (c *Comment) ItemID() int64      { return c.itemID }
func (c *Comment) AuthorID() int64    { return c.authorID }
func (c *Comment) Created() time.Time { return c.created }
