package readstore

import (
	"context"

	"studio-booking/internal/infra"
	"studio-booking/internal/infra/db"
	"studio-booking/internal/usecase/queries"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

const (
	// A slot is taken when either table holds the (date, time, space)
	// triple; the two sources are disjoint checks.
	takenTimesSQL = `
	SELECT time FROM reservations WHERE date = $1 AND space = $2
	UNION
	SELECT time FROM blocked_times WHERE date = $1 AND space = $2`

	dayOccupancySQL = `
	SELECT time, space FROM reservations WHERE date = $1 ORDER BY time`
)

func (s *AvailabilityReadStore) TakenTimes(ctx context.Context, date, space string) ([]string, error) {
	rows, err := s.db.Query(ctx, takenTimesSQL, date, space)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query taken times", err)
	}
	defer rows.Close()

	var taken []string
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, infra.WrapRepoErr("failed to scan taken time", err)
		}
		taken = append(taken, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read taken times", err)
	}
	return taken, nil
}

func (s *AvailabilityReadStore) DayOccupancy(ctx context.Context, date string) ([]queries.SlotOccupancy, error) {
	rows, err := s.db.Query(ctx, dayOccupancySQL, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query day occupancy", err)
	}
	defer rows.Close()

	var result []queries.SlotOccupancy
	for rows.Next() {
		var occ queries.SlotOccupancy
		if err := rows.Scan(&occ.Time, &occ.Space); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupancy row", err)
		}
		result = append(result, occ)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read occupancy rows", err)
	}
	return result, nil
}
