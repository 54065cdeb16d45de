package components

import (
	"shareit/internal/infra/readstore"
	"shareit/internal/infra/repository"
	"shareit/internal/infra/sqlc"
	"shareit/internal/infra/uow"
	"shareit/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserViewQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Item
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ItemViewQueries)),
		),
		fx.Annotate(
			readstore.NewItemReadStore,
			fx.As(new(queries.ItemReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Request
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RequestViewQueries)),
		),
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		repository.NewUserRepository,
		repository.NewItemRepository,
		repository.NewBookingRepository,
		repository.NewCommentRepository,
		repository.NewRequestRepository,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
