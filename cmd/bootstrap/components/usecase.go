package components

import (
	"context"

	"agrispray/internal/pkg/clock"
	"agrispray/internal/pkg/location"
	"agrispray/internal/usecase/commands"
	"agrispray/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	location.NewTracker,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRequestCommands,
		commands.NewAuthCommands,
		commands.NewAddressCommands,
		commands.NewUserCommands,
		fx.Annotate(
			NewLocationCommands,
			fx.As(new(commands.LocationCommands)),
			fx.As(new(queries.LastLocationSource)),
		),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRequestQueries,
		queries.NewProviderQueries,
		queries.NewAddressQueries,
		queries.NewUserQueries,
		queries.NewRequestWatcher,
	),
)

// NewLocationCommands releases all tracker handles on shutdown.
func NewLocationCommands(lc fx.Lifecycle, tracker *location.Tracker) commands.LocationCommands {
	uc := commands.NewLocationCommands(tracker)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			uc.Close()
			return nil
		},
	})
	return uc
}
