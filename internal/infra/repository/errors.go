package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"shareit/internal/infra"
)

func classifyFKErr(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return infra.KindForeignKeyViolated
	}
	return infra.KindDBFailure
}
