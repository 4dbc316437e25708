package components

import (
	"brrow-engine/internal/infra/repository"
	"brrow-engine/internal/usecase"

	"go.uber.org/fx"
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Offer event journal
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.OfferEventQueries)),
		),
		fx.Annotate(
			repository.NewOfferEventRepository,
			fx.As(new(usecase.OfferEventRecorder)),
		),
	),
)
