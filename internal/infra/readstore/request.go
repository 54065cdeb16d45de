package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/sqlc"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
)

type RequestViewQueries interface {
	GetRequestByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Request, error)
	ListRequestsByUser(ctx context.Context, db sqlc.DBTX, userID int64) ([]sqlc.Request, error)
	ListRequestsByOthers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRequestsByOthersParams) ([]sqlc.Request, error)
}

type RequestReadStore struct {
	queries RequestViewQueries
	db      sqlc.DBTX
}

func NewRequestReadStore(queries RequestViewQueries, db sqlc.DBTX) *RequestReadStore {
	return &RequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id int64) (*queries.RequestView, error) {
	row, err := r.queries.GetRequestByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get request by id", err)
	}
	return toRequestView(row), nil
}

func (r *RequestReadStore) FindByUser(ctx context.Context, userID int64) ([]*queries.RequestView, error) {
	rows, err := r.queries.ListRequestsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests by user", err)
	}
	return toRequestViews(rows), nil
}

func (r *RequestReadStore) FindByOthers(ctx context.Context, userID int64, page queries.Page) ([]*queries.RequestView, error) {
	rows, err := r.queries.ListRequestsByOthers(ctx, r.db, sqlc.ListRequestsByOthersParams{
		UserID:     userID,
		PageLimit:  page.Limit,
		PageOffset: page.Offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests by others", err)
	}
	return toRequestViews(rows), nil
}

func toRequestView(row sqlc.Request) *queries.RequestView {
	return &queries.RequestView{
		ID:          row.ID,
		Description: row.Description,
		Created:     pgconv.TimeFromPgtype(row.Created),
	}
}

func toRequestViews(rows []sqlc.Request) []*queries.RequestView {
	views := make([]*queries.RequestView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toRequestView(row))
	}
	return views
}
