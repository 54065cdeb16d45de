package queries

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
)

type UserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*UserView, error)
	FindAll(ctx context.Context) ([]*UserView, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id int64) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
}

type userQueriesImpl struct {
	repo UserReadStore
}

func NewUserQueries(repo UserReadStore) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id int64) (*UserView, error) {
	uv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, err
	}
	return uv, nil
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*UserView, error) {
	return q.repo.FindAll(ctx)
}
