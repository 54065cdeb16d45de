package repository

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/infra/sqlc"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/shared"
)

type itemRepository struct {
	queries *sqlc.Queries
}

func NewItemRepository() shared.ItemRepository {
	return &itemRepository{queries: sqlc.New()}
}

func (r *itemRepository) Create(ctx context.Context, db sqlc.DBTX, it *item.Item) (int64, error) {
	row, err := r.queries.CreateItem(ctx, db, sqlc.CreateItemParams{
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		OwnerID:     it.OwnerID(),
		RequestID:   pgconv.Int64PtrToPgtype(it.RequestID()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create item", err, classifyFKErr(err))
	}
	return row.ID, nil
}

func (r *itemRepository) Update(ctx context.Context, db sqlc.DBTX, it *item.Item) error {
	_, err := r.queries.UpdateItem(ctx, db, sqlc.UpdateItemParams{
		ID:          it.ID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, db sqlc.DBTX, id int64) error {
	if err := r.queries.DeleteItem(ctx, db, id); err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	return nil
}
