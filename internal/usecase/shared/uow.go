package shared

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/request"
	"shareit/internal/domain/user"
	"shareit/internal/infra/sqlc"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: validation reads outside an explicit transaction
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Items() ItemRepository
	Bookings() BookingRepository
	Comments() CommentRepository
	Requests() RequestRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the write side's own lookups: minimal snapshots used
// for precondition checks, separate from the read models the query side
// returns to clients.
type CommandReads interface {
	UserByID(ctx context.Context, id int64) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	ItemByID(ctx context.Context, id int64) (*ItemSnapshot, error)
	BookingByID(ctx context.Context, id int64) (*BookingSnapshot, error)
	RequestByID(ctx context.Context, id int64) (*RequestSnapshot, error)
	HasPastBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

type UserSnapshot struct {
	ID    int64
	Name  string
	Email string
}

type ItemSnapshot struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

type BookingSnapshot struct {
	ID          int64
	Start       time.Time
	End         time.Time
	ItemID      int64
	BookerID    int64
	Status      booking.Status
	ItemOwnerID int64
}

type RequestSnapshot struct {
	ID          int64
	Description string
	UserID      int64
	Created     time.Time
}

type UserRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, u *user.User) (int64, error)
	Update(ctx context.Context, db sqlc.DBTX, u *user.User) error
	Delete(ctx context.Context, db sqlc.DBTX, id int64) error
}

type ItemRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, it *item.Item) (int64, error)
	Update(ctx context.Context, db sqlc.DBTX, it *item.Item) error
	Delete(ctx context.Context, db sqlc.DBTX, id int64) error
}

type BookingRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, b *booking.Booking) (int64, error)
	UpdateStatus(ctx context.Context, db sqlc.DBTX, id int64, status booking.Status) error
}

type CommentRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, c *comment.Comment) (int64, error)
}

type RequestRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, r *request.Request) (int64, error)
}
