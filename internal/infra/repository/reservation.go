package repository

import (
	"context"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/db"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const createReservationSQL = `
	INSERT INTO reservations (date, time, space, people, options, price, name, contact)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id`

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *booking.Reservation) (int64, error) {
	options := make([]string, 0, len(res.Options()))
	for _, option := range res.Options() {
		options = append(options, option.String())
	}

	var id int64
	err := tx.QueryRow(ctx, createReservationSQL,
		res.Date().Time(),
		res.Slot(),
		res.Space().String(),
		res.People(),
		options,
		res.Price().Amount(),
		res.Name(),
		res.Contact(),
	).Scan(&id)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return 0, infra.WrapRepoErr("reservation slot already taken", err, infra.KindDuplicateKey)
		}
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}
