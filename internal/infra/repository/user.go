package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/infra/sqlc"
	"shareit/internal/usecase/shared"
)

type userRepository struct {
	queries *sqlc.Queries
}

func NewUserRepository() shared.UserRepository {
	return &userRepository{queries: sqlc.New()}
}

func (r *userRepository) Create(ctx context.Context, db sqlc.DBTX, u *user.User) (int64, error) {
	row, err := r.queries.CreateUser(ctx, db, sqlc.CreateUserParams{
		Name:  u.Name(),
		Email: u.Email(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err, classifyUserErr(err))
	}
	return row.ID, nil
}

func (r *userRepository) Update(ctx context.Context, db sqlc.DBTX, u *user.User) error {
	_, err := r.queries.UpdateUser(ctx, db, sqlc.UpdateUserParams{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err, classifyUserErr(err))
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, db sqlc.DBTX, id int64) error {
	if err := r.queries.DeleteUser(ctx, db, id); err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	return nil
}

func classifyUserErr(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return infra.KindDuplicateKey
	}
	return infra.KindDBFailure
}
