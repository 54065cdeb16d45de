//go:build unit

package commands_test

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/request"
	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/infra/sqlc"
	"shareit/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

// The unit-of-work contract is closure shaped, so these tests drive the
// commands through in-memory fakes instead of generated mocks: the fake
// transaction records writes and the fake reads serve snapshots from maps.

type pastBookingKey struct {
	bookerID int64
	itemID   int64
}

type fakeReads struct {
	users        map[int64]*shared.UserSnapshot
	items        map[int64]*shared.ItemSnapshot
	bookings     map[int64]*shared.BookingSnapshot
	requests     map[int64]*shared.RequestSnapshot
	pastBookings map[pastBookingKey]bool
}

func newFakeReads() *fakeReads {
	return &fakeReads{
		users:        map[int64]*shared.UserSnapshot{},
		items:        map[int64]*shared.ItemSnapshot{},
		bookings:     map[int64]*shared.BookingSnapshot{},
		requests:     map[int64]*shared.RequestSnapshot{},
		pastBookings: map[pastBookingKey]bool{},
	}
}

func (r *fakeReads) UserByID(_ context.Context, id int64) (*shared.UserSnapshot, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
}

func (r *fakeReads) UserByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
}

func (r *fakeReads) ItemByID(_ context.Context, id int64) (*shared.ItemSnapshot, error) {
	if it, ok := r.items[id]; ok {
		return it, nil
	}
	return nil, infra.WrapRepoErr("item not found", pgx.ErrNoRows, infra.KindNotFound)
}

func (r *fakeReads) BookingByID(_ context.Context, id int64) (*shared.BookingSnapshot, error) {
	if b, ok := r.bookings[id]; ok {
		return b, nil
	}
	return nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
}

func (r *fakeReads) RequestByID(_ context.Context, id int64) (*shared.RequestSnapshot, error) {
	if req, ok := r.requests[id]; ok {
		return req, nil
	}
	return nil, infra.WrapRepoErr("request not found", pgx.ErrNoRows, infra.KindNotFound)
}

func (r *fakeReads) HasPastBooking(_ context.Context, bookerID, itemID int64, _ time.Time) (bool, error) {
	return r.pastBookings[pastBookingKey{bookerID: bookerID, itemID: itemID}], nil
}

type fakeUserRepo struct {
	nextID  int64
	created []*user.User
	updated []*user.User
	deleted []int64
}

func (f *fakeUserRepo) Create(_ context.Context, _ sqlc.DBTX, u *user.User) (int64, error) {
	f.nextID++
	f.created = append(f.created, u)
	return f.nextID, nil
}

func (f *fakeUserRepo) Update(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	f.updated = append(f.updated, u)
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, _ sqlc.DBTX, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeItemRepo struct {
	nextID  int64
	created []*item.Item
	updated []*item.Item
	deleted []int64
}

func (f *fakeItemRepo) Create(_ context.Context, _ sqlc.DBTX, it *item.Item) (int64, error) {
	f.nextID++
	f.created = append(f.created, it)
	return f.nextID, nil
}

func (f *fakeItemRepo) Update(_ context.Context, _ sqlc.DBTX, it *item.Item) error {
	f.updated = append(f.updated, it)
	return nil
}

func (f *fakeItemRepo) Delete(_ context.Context, _ sqlc.DBTX, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type statusChange struct {
	id     int64
	status booking.Status
}

type fakeBookingRepo struct {
	nextID        int64
	created       []*booking.Booking
	statusChanges []statusChange
}

func (f *fakeBookingRepo) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) (int64, error) {
	f.nextID++
	f.created = append(f.created, b)
	return f.nextID, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, id int64, status booking.Status) error {
	f.statusChanges = append(f.statusChanges, statusChange{id: id, status: status})
	return nil
}

type fakeCommentRepo struct {
	nextID  int64
	created []*comment.Comment
}

func (f *fakeCommentRepo) Create(_ context.Context, _ sqlc.DBTX, c *comment.Comment) (int64, error) {
	f.nextID++
	f.created = append(f.created, c)
	return f.nextID, nil
}

type fakeRequestRepo struct {
	nextID  int64
	created []*request.Request
}

func (f *fakeRequestRepo) Create(_ context.Context, _ sqlc.DBTX, r *request.Request) (int64, error) {
	f.nextID++
	f.created = append(f.created, r)
	return f.nextID, nil
}

type fakeTx struct {
	reads    *fakeReads
	users    *fakeUserRepo
	items    *fakeItemRepo
	bookings *fakeBookingRepo
	comments *fakeCommentRepo
	requests *fakeRequestRepo
}

func (t *fakeTx) Users() shared.UserRepository       { return t.users }
func (t *fakeTx) Items() shared.ItemRepository       { return t.items }
func (t *fakeTx) Bookings() shared.BookingRepository { return t.bookings }
func (t *fakeTx) Comments() shared.CommentRepository { return t.comments }
func (t *fakeTx) Requests() shared.RequestRepository { return t.requests }
func (t *fakeTx) Reads() shared.CommandReads         { return t.reads }
func (t *fakeTx) DB() sqlc.DBTX                      { return nil }

type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{
		reads:    newFakeReads(),
		users:    &fakeUserRepo{},
		items:    &fakeItemRepo{},
		bookings: &fakeBookingRepo{},
		comments: &fakeCommentRepo{},
		requests: &fakeRequestRepo{},
	}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.tx.reads
}
