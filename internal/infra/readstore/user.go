package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/sqlc"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
)

type UserViewQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.User, error)
	ListUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.User, error)
}

type UserReadStore struct {
	queries UserViewQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserViewQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user by id", err)
	}
	return toUserView(row), nil
}

func (r *UserReadStore) FindAll(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	views := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toUserView(row))
	}
	return views, nil
}

func toUserView(row sqlc.User) *queries.UserView {
	return &queries.UserView{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
	}
}
