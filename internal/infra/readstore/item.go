package readstore

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"shareit/internal/infra"
	"shareit/internal/infra/sqlc"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
)

type ItemViewQueries interface {
	GetItemByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Item, error)
	ListItemsByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListItemsByOwnerParams) ([]sqlc.Item, error)
	ListItemsByRequest(ctx context.Context, db sqlc.DBTX, requestID pgtype.Int8) ([]sqlc.Item, error)
	SearchItems(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchItemsParams) ([]sqlc.Item, error)
	GetLastBookingForItem(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLastBookingForItemParams) (sqlc.Booking, error)
	GetNextBookingForItem(ctx context.Context, db sqlc.DBTX, arg sqlc.GetNextBookingForItemParams) (sqlc.Booking, error)
	ListCommentsByItem(ctx context.Context, db sqlc.DBTX, itemID int64) ([]sqlc.ListCommentsByItemRow, error)
}

type ItemReadStore struct {
	queries ItemViewQueries
	db      sqlc.DBTX
}

func NewItemReadStore(queries ItemViewQueries, db sqlc.DBTX) *ItemReadStore {
	return &ItemReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id int64) (*queries.ItemView, error) {
	row, err := r.queries.GetItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get item by id", err)
	}
	return toItemView(row), nil
}

func (r *ItemReadStore) FindByOwner(ctx context.Context, ownerID int64, page queries.Page) ([]*queries.ItemView, error) {
	rows, err := r.queries.ListItemsByOwner(ctx, r.db, sqlc.ListItemsByOwnerParams{
		OwnerID:    ownerID,
		PageLimit:  page.Limit,
		PageOffset: page.Offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}
	return toItemViews(rows), nil
}

func (r *ItemReadStore) FindByRequest(ctx context.Context, requestID int64) ([]*queries.ItemView, error) {
	rows, err := r.queries.ListItemsByRequest(ctx, r.db, pgconv.Int64PtrToPgtype(&requestID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by request", err)
	}
	return toItemViews(rows), nil
}

func (r *ItemReadStore) Search(ctx context.Context, text string, page queries.Page) ([]*queries.ItemView, error) {
	rows, err := r.queries.SearchItems(ctx, r.db, sqlc.SearchItemsParams{
		Text:       text,
		PageLimit:  page.Limit,
		PageOffset: page.Offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	return toItemViews(rows), nil
}

func (r *ItemReadStore) LastBooking(ctx context.Context, itemID int64, now time.Time) (*queries.BookingRef, error) {
	row, err := r.queries.GetLastBookingForItem(ctx, r.db, sqlc.GetLastBookingForItemParams{
		ItemID: itemID,
		Now:    pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get last booking for item", err)
	}
	return toBookingRef(row), nil
}

func (r *ItemReadStore) NextBooking(ctx context.Context, itemID int64, now time.Time) (*queries.BookingRef, error) {
	row, err := r.queries.GetNextBookingForItem(ctx, r.db, sqlc.GetNextBookingForItemParams{
		ItemID: itemID,
		Now:    pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get next booking for item", err)
	}
	return toBookingRef(row), nil
}

func (r *ItemReadStore) CommentsByItem(ctx context.Context, itemID int64) ([]*queries.CommentView, error) {
	rows, err := r.queries.ListCommentsByItem(ctx, r.db, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments by item", err)
	}
	views := make([]*queries.CommentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.CommentView{
			ID:         row.ID,
			Text:       row.Text,
			AuthorName: row.AuthorName,
			Created:    pgconv.TimeFromPgtype(row.Created),
		})
	}
	return views, nil
}

func toItemView(row sqlc.Item) *queries.ItemView {
	return &queries.ItemView{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Available:   row.Available,
		OwnerID:     row.OwnerID,
		RequestID:   pgconv.Int64PtrFromPgtype(row.RequestID),
	}
}

func toItemViews(rows []sqlc.Item) []*queries.ItemView {
	views := make([]*queries.ItemView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toItemView(row))
	}
	return views
}

func toBookingRef(row sqlc.Booking) *queries.BookingRef {
	return &queries.BookingRef{
		ID:       row.ID,
		BookerID: row.BookerID,
		Start:    pgconv.TimeFromPgtype(row.StartDate),
		End:      pgconv.TimeFromPgtype(row.EndDate),
	}
}
