package components

import (
	"studio-booking/internal/infra/db"
	"studio-booking/internal/infra/readstore"
	"studio-booking/internal/infra/repository"
	"studio-booking/internal/infra/uow"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Reservation
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// BlockedTime
		fx.Annotate(
			readstore.NewBlockedTimeReadStore,
			fx.As(new(queries.BlockedTimeReadStore)),
		),
		// Availability
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Reservation
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		// BlockedTime
		fx.Annotate(
			repository.NewBlockedTimeRepository,
			fx.As(new(commands.BlockedTimeRepository)),
		),
		// Availability
		fx.Annotate(
			repository.NewAvailabilityRepository,
			fx.As(new(commands.AvailabilityRepository)),
		),
		// PriceSettings serves the write side and the read side
		fx.Annotate(
			repository.NewPriceSettingsRepository,
			fx.As(new(commands.PriceSettingsRepository)),
			fx.As(new(queries.PriceSettingsReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
