package readstore

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"studio-booking/internal/infra"
	"studio-booking/internal/infra/db"
	"studio-booking/internal/usecase/queries"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const (
	findAllReservationsSQL = `
	SELECT id, date, time, space, people, options, price, name, contact, created_at
	FROM reservations
	ORDER BY date, time`

	findReservationsByRangeSQL = `
	SELECT id, date, time, space, people, options, price, name, contact, created_at
	FROM reservations
	WHERE date BETWEEN $1 AND $2
	ORDER BY date, time`
)

func (s *ReservationReadStore) FindAll(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, findAllReservationsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return collectReservationViews(rows)
}

func (s *ReservationReadStore) FindByDateRange(ctx context.Context, from, to string) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, findReservationsByRangeSQL, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by range", err)
	}
	return collectReservationViews(rows)
}

func collectReservationViews(rows pgx.Rows) ([]*queries.ReservationView, error) {
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		var (
			view queries.ReservationView
			date time.Time
		)
		if err := rows.Scan(&view.ID, &date, &view.Time, &view.Space, &view.People,
			&view.Options, &view.Price, &view.Name, &view.Contact, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		view.Date = date.Format("2006-01-02")
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return result, nil
}
