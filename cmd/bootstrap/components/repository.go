package components

import (
	"clinic-scheduler/internal/infra/readstore"
	"clinic-scheduler/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewQueryer,
		fx.Annotate(
			readstore.NewProviderReadStore,
			fx.As(new(usecase.ProviderReadStore)),
		),
		fx.Annotate(
			readstore.NewTreatmentReadStore,
			fx.As(new(usecase.TreatmentReadStore)),
		),
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(usecase.ScheduleReadStore)),
		),
		fx.Annotate(
			readstore.NewTimeOffReadStore,
			fx.As(new(usecase.TimeOffReadStore)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(usecase.AppointmentReadStore)),
		),
	),
)

func NewQueryer(pool *pgxpool.Pool) readstore.Queryer {
	return pool
}
