package components

import (
	"folio-api/internal/infra/repository"
	"folio-api/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewBusyRepository,
			fx.As(new(usecase.BusyRepository)),
		),
		fx.Annotate(
			repository.NewRequestsRepository,
			fx.As(new(usecase.RequestsRepository)),
		),
		fx.Annotate(
			repository.NewUserActionRepository,
			fx.As(new(usecase.UserActionRepository)),
		),
		fx.Annotate(
			repository.NewDiaryRepository,
			fx.As(new(usecase.DiaryRepository)),
		),
		fx.Annotate(
			repository.NewPlaceRepository,
			fx.As(new(usecase.PlaceRepository)),
		),
	),
)
