package components

import (
	"shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) booking.Policy {
		return booking.Policy{RejectPastStart: cfg.Booking.RejectPastStart}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewUserUseCase,
		commands.NewItemUseCase,
		commands.NewBookingUseCase,
		commands.NewCommentUseCase,
		commands.NewRequestUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewItemQueries,
		queries.NewBookingQueries,
		queries.NewRequestQueries,
	),
)
