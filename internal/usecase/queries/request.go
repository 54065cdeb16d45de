package queries

import (
	"context"
	"time"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
)

type RequestView struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
}

type RequestDetails struct {
	RequestView
	Items []*ItemView `json:"items"`
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id int64) (*RequestView, error)
	FindByUser(ctx context.Context, userID int64) ([]*RequestView, error)
	FindByOthers(ctx context.Context, userID int64, page Page) ([]*RequestView, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, requesterID, requestID int64) (*RequestDetails, error)
	ListByUser(ctx context.Context, userID int64) ([]*RequestDetails, error)
	ListByOthers(ctx context.Context, userID int64, page Page) ([]*RequestDetails, error)
}

type requestQueriesImpl struct {
	repo  RequestReadStore
	items ItemReadStore
	users UserReadStore
}

func NewRequestQueries(repo RequestReadStore, items ItemReadStore, users UserReadStore) RequestQueries {
	return &requestQueriesImpl{repo: repo, items: items, users: users}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, requesterID, requestID int64) (*RequestDetails, error) {
	if err := q.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}
	rv, err := q.repo.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRequestNotFound)
		}
		return nil, err
	}
	return q.buildDetails(ctx, rv)
}

func (q *requestQueriesImpl) ListByUser(ctx context.Context, userID int64) ([]*RequestDetails, error) {
	if err := q.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	rows, err := q.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return q.buildAll(ctx, rows)
}

func (q *requestQueriesImpl) ListByOthers(ctx context.Context, userID int64, page Page) ([]*RequestDetails, error) {
	if err := q.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	rows, err := q.repo.FindByOthers(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	return q.buildAll(ctx, rows)
}

func (q *requestQueriesImpl) buildAll(ctx context.Context, rows []*RequestView) ([]*RequestDetails, error) {
	details := make([]*RequestDetails, 0, len(rows))
	for _, rv := range rows {
		d, err := q.buildDetails(ctx, rv)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

func (q *requestQueriesImpl) buildDetails(ctx context.Context, rv *RequestView) (*RequestDetails, error) {
	items, err := q.items.FindByRequest(ctx, rv.ID)
	if err != nil {
		return nil, err
	}
	return &RequestDetails{RequestView: *rv, Items: items}, nil
}

func (q *requestQueriesImpl) requireUser(ctx context.Context, userID int64) error {
	if _, err := q.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrUserNotFound)
		}
		return err
	}
	return nil
}
