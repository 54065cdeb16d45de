package repository

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/infra/sqlc"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/shared"
)

type commentRepository struct {
	queries *sqlc.Queries
}

func NewCommentRepository() shared.CommentRepository {
	return &commentRepository{queries: sqlc.New()}
}

func (r *commentRepository) Create(ctx context.Context, db sqlc.DBTX, c *comment.Comment) (int64, error) {
	row, err := r.queries.CreateComment(ctx, db, sqlc.CreateCommentParams{
		Text:     c.Text(),
		ItemID:   c.ItemID(),
		AuthorID: c.AuthorID(),
		Created:  pgconv.TimeToPgtype(c.Created()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create comment", err, classifyFKErr(err))
	}
	return row.ID, nil
}
