package components

import (
	"context"

	"brrow-engine/internal/pkg/clock"
	"brrow-engine/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseSessionsModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseSessionsModule = fx.Module("usecase/sessions",
	fx.Provide(
		usecase.NewOfferService,
		usecase.NewUploadService,
		usecase.NewCountdownService,
		usecase.NewSessionSweeper,
	),
	fx.Invoke(registerSessionSweeper, registerSessionShutdown),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// registerSessionSweeper expires abandoned sessions while the app runs.
func registerSessionSweeper(lc fx.Lifecycle, sweeper *usecase.SessionSweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}

// registerSessionShutdown cancels in-flight submissions, uploads and tickers
// when the app stops.
func registerSessionShutdown(lc fx.Lifecycle, offers usecase.OfferSessions, uploads usecase.UploadSessions, countdowns usecase.CountdownSessions) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			offers.Shutdown()
			uploads.Shutdown()
			countdowns.Shutdown()
			return nil
		},
	})
}
