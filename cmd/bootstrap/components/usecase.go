package components

import (
	"pistachiohut/internal/pkg/clock"
	"pistachiohut/internal/usecase"
	"pistachiohut/internal/usecase/commands"
	"pistachiohut/internal/usecase/queries"

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

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewFulfillmentQueries,
		queries.NewRefundQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCartUseCase,
		commands.NewDiscountUseCase,
		commands.NewWishlistUseCase,
		commands.NewFulfillmentUseCase,
		commands.NewRefundUseCase,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
