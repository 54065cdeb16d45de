//go:build unit || e2e

package builder

import (
	"time"

	dombooking "shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
)

type BookingBuilder struct {
	ID          int64
	ItemID      int64
	ItemName    string
	ItemOwnerID int64
	BookerID    int64
	Start       time.Time
	End         time.Time
	Status      dombooking.Status
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().Truncate(time.Second)
	return &BookingBuilder{
		ID:          1,
		ItemID:      5,
		ItemName:    "Cordless Drill",
		ItemOwnerID: 1,
		BookerID:    2,
		Start:       now.Add(24 * time.Hour),
		End:         now.Add(48 * time.Hour),
		Status:      dombooking.StatusWaiting,
	}
}

// Build methods
func (b *BookingBuilder) BuildDomain() *dombooking.Booking {
	return dombooking.Reconstruct(b.ID, b.ItemID, b.BookerID, b.Start, b.End, b.Status)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:          b.ID,
		Start:       b.Start,
		End:         b.End,
		Status:      string(b.Status),
		BookerID:    b.BookerID,
		ItemID:      b.ItemID,
		ItemName:    b.ItemName,
		ItemOwnerID: b.ItemOwnerID,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:          b.ID,
		Start:       b.Start,
		End:         b.End,
		ItemID:      b.ItemID,
		BookerID:    b.BookerID,
		Status:      b.Status,
		ItemOwnerID: b.ItemOwnerID,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithItemID(itemID int64) *BookingBuilder {
	b.ItemID = itemID
	return b
}

func (b *BookingBuilder) WithBookerID(bookerID int64) *BookingBuilder {
	b.BookerID = bookerID
	return b
}

func (b *BookingBuilder) WithItemOwnerID(ownerID int64) *BookingBuilder {
	b.ItemOwnerID = ownerID
	return b
}

func (b *BookingBuilder) WithWindow(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) AsApproved() *BookingBuilder {
	b.Status = dombooking.StatusApproved
	return b
}

func (b *BookingBuilder) AsRejected() *BookingBuilder {
	b.Status = dombooking.StatusRejected
	return b
}
