package queries

import (
	"context"
	"strings"
	"time"

	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
)

type ItemView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"-"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// BookingRef is the short booking projection shown on an item card.
type BookingRef struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentView struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemDetails struct {
	ItemView
	LastBooking *BookingRef    `json:"lastBooking"`
	NextBooking *BookingRef    `json:"nextBooking"`
	Comments    []*CommentView `json:"comments"`
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id int64) (*ItemView, error)
	FindByOwner(ctx context.Context, ownerID int64, page Page) ([]*ItemView, error)
	FindByRequest(ctx context.Context, requestID int64) ([]*ItemView, error)
	Search(ctx context.Context, text string, page Page) ([]*ItemView, error)
	// LastBooking and NextBooking return nil without error when the item
	// has no approved booking on that side of now.
	LastBooking(ctx context.Context, itemID int64, now time.Time) (*BookingRef, error)
	NextBooking(ctx context.Context, itemID int64, now time.Time) (*BookingRef, error)
	CommentsByItem(ctx context.Context, itemID int64) ([]*CommentView, error)
}

type ItemQueries interface {
	// GetByID projects last and next approved bookings only when the
	// requester owns the item; comments are visible to everyone.
	GetByID(ctx context.Context, requesterID, itemID int64) (*ItemDetails, error)
	ListByOwner(ctx context.Context, ownerID int64, page Page) ([]*ItemDetails, error)
	Search(ctx context.Context, text string, page Page) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	repo  ItemReadStore
	clock clock.Clock
}

func NewItemQueries(repo ItemReadStore, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{repo: repo, clock: clk}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, requesterID, itemID int64) (*ItemDetails, error) {
	iv, err := q.repo.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, err
	}
	return q.buildDetails(ctx, iv, requesterID == iv.OwnerID)
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID int64, page Page) ([]*ItemDetails, error) {
	items, err := q.repo.FindByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, err
	}
	details := make([]*ItemDetails, 0, len(items))
	for _, iv := range items {
		d, err := q.buildDetails(ctx, iv, true)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string, page Page) ([]*ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []*ItemView{}, nil
	}
	return q.repo.Search(ctx, text, page)
}

func (q *itemQueriesImpl) buildDetails(ctx context.Context, iv *ItemView, withBookings bool) (*ItemDetails, error) {
	d := &ItemDetails{ItemView: *iv}

	if withBookings {
		now := q.clock.Now()
		last, err := q.repo.LastBooking(ctx, iv.ID, now)
		if err != nil {
			return nil, err
		}
		next, err := q.repo.NextBooking(ctx, iv.ID, now)
		if err != nil {
			return nil, err
		}
		d.LastBooking = last
		d.NextBooking = next
	}

	comments, err := q.repo.CommentsByItem(ctx, iv.ID)
	if err != nil {
		return nil, err
	}
	d.Comments = comments
	return d, nil
}
