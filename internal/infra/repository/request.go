package repository

import (
	"context"

	"shareit/internal/domain/request"
	"shareit/internal/infra"
	"shareit/internal/infra/sqlc"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/shared"
)

type requestRepository struct {
	queries *sqlc.Queries
}

func NewRequestRepository() shared.RequestRepository {
	return &requestRepository{queries: sqlc.New()}
}

func (r *requestRepository) Create(ctx context.Context, db sqlc.DBTX, req *request.Request) (int64, error) {
	row, err := r.queries.CreateRequest(ctx, db, sqlc.CreateRequestParams{
		Description: req.Description(),
		UserID:      req.UserID(),
		Created:     pgconv.TimeToPgtype(req.Created()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create request", err, classifyFKErr(err))
	}
	return row.ID, nil
}
