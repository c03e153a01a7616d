package components

import (
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/usecase"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewPropertyCommands,
		commands.NewBookingCommands,
		commands.NewPaymentCommands,
		commands.NewReviewCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewPropertyQueries,
		queries.NewBookingQueries,
		queries.NewPaymentQueries,
		queries.NewReviewQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
