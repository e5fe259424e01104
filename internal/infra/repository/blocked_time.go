package repository

import (
	"context"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/db"
)

type BlockedTimeRepository struct{}

func NewBlockedTimeRepository() *BlockedTimeRepository {
	return &BlockedTimeRepository{}
}

const createBlockedTimeSQL = `
	INSERT INTO blocked_times (date, time, space, reason)
	VALUES ($1, $2, $3, $4)
	RETURNING id`

// Create inserts unconditionally. Blocked times carry no uniqueness
// constraint and are never checked against existing reservations.
func (r *BlockedTimeRepository) Create(ctx context.Context, tx db.DBTX, bt *booking.BlockedTime) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, createBlockedTimeSQL,
		bt.Date().Time(),
		bt.Slot(),
		bt.Space().String(),
		bt.Reason(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create blocked time", err)
	}
	return id, nil
}
