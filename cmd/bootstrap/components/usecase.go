package components

import (
	"context"
	"log/slog"

	"folio-api/internal/infra/geocode"
	"folio-api/internal/pkg/clock"
	"folio-api/internal/pkg/config"
	"folio-api/internal/pkg/jwt"
	"folio-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			newGeocodeClient,
			fx.As(new(usecase.GeocodeClient)),
		),
		newBusyWatcher,
		newAvailabilityUseCase,
		newAuthUseCase,
		newBookingUseCase,
		usecase.NewScheduleUseCase,
		usecase.NewDiaryUseCase,
		usecase.NewPlaceUseCase,
		usecase.NewGeocodeUseCase,
	),
)

func newGeocodeClient(cfg config.Config) *geocode.Client {
	return geocode.NewClient(cfg.Geocode)
}

func newBusyWatcher(lc fx.Lifecycle, repo usecase.BusyRepository, cfg config.Config, logger *slog.Logger) *usecase.BusyWatcher {
	watcher := usecase.NewBusyWatcher(repo, cfg.Schedule.BusyPollInterval, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			watcher.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			watcher.Stop()
			return nil
		},
	})
	return watcher
}

func newAvailabilityUseCase(lc fx.Lifecycle, watcher *usecase.BusyWatcher, cfg config.Config) usecase.AvailabilityUseCase {
	checkers := usecase.NewAvailabilityUseCase(watcher, cfg.Schedule.DebounceInterval)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			checkers.Stop()
			return nil
		},
	})
	return checkers
}

func newAuthUseCase(cfg config.Config, jwtService *jwt.Service) usecase.AuthUseCase {
	return usecase.NewAuthUseCase(cfg.Admin, jwtService)
}

func newBookingUseCase(
	requests usecase.RequestsRepository,
	actions usecase.UserActionRepository,
	watcher *usecase.BusyWatcher,
	checkers usecase.AvailabilityUseCase,
	cfg config.Config,
	clk clock.Clock,
) usecase.BookingUseCase {
	return usecase.NewBookingUseCase(requests, actions, watcher, checkers, cfg.Schedule.SubmitCooldown, clk)
}
