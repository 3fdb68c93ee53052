package components

import (
	"clinic-scheduler/internal/pkg/config"
	"clinic-scheduler/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		func(cfg config.Config) config.SuggestConfig { return cfg.Suggest },
		usecase.NewAvailabilityUseCase,
		usecase.NewSuggestionUseCase,
		usecase.NewTokenValidator,
	),
)
