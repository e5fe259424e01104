package repository

import (
	"context"

	"studio-booking/internal/infra"
	"studio-booking/internal/infra/db"
)

type AvailabilityRepository struct{}

func NewAvailabilityRepository() *AvailabilityRepository {
	return &AvailabilityRepository{}
}

const isSlotFreeSQL = `
	SELECT NOT EXISTS (
		SELECT 1 FROM reservations WHERE date = $1 AND time = $2 AND space = $3
	) AND NOT EXISTS (
		SELECT 1 FROM blocked_times WHERE date = $1 AND time = $2 AND space = $3
	)`

// IsSlotFree runs on whatever dbtx the caller is in, so a booking
// transaction re-validates against its own snapshot.
func (r *AvailabilityRepository) IsSlotFree(ctx context.Context, dbtx db.DBTX, date, slot, space string) (bool, error) {
	var free bool
	if err := dbtx.QueryRow(ctx, isSlotFreeSQL, date, slot, space).Scan(&free); err != nil {
		return false, infra.WrapRepoErr("failed to check slot availability", err)
	}
	return free, nil
}
