package commands

import (
	"context"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra/db"
)

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *booking.Reservation) (int64, error)
}

type BlockedTimeRepository interface {
	Create(ctx context.Context, tx db.DBTX, bt *booking.BlockedTime) (int64, error)
}

type AvailabilityRepository interface {
	// IsSlotFree reports whether neither a reservation nor a blocked
	// time exists for the exact (date, time, space) triple.
	IsSlotFree(ctx context.Context, dbtx db.DBTX, date, slot, space string) (bool, error)
}

type PriceSettingsRepository interface {
	Latest(ctx context.Context) (*booking.PriceSettings, error)
	Append(ctx context.Context, dbtx db.DBTX, settings booking.PriceSettings) error
}
