package queries

import (
	"context"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/pkg/errs"
)

type ReservationReadStore interface {
	FindAll(ctx context.Context) ([]*ReservationView, error)
	FindByDateRange(ctx context.Context, from, to string) ([]*ReservationView, error)
}

type BlockedTimeReadStore interface {
	FindAll(ctx context.Context) ([]*BlockedTimeView, error)
}

type AdminQueries interface {
	ListReservations(ctx context.Context) ([]*ReservationView, error)
	ListBlockedTimes(ctx context.Context) ([]*BlockedTimeView, error)
	Statistics(ctx context.Context, from, to string) (*StatisticsView, error)
	ExportReservationsCSV(ctx context.Context) ([]byte, error)
}

type adminQueriesImpl struct {
	reservations ReservationReadStore
	blockedTimes BlockedTimeReadStore
}

func NewAdminQueries(reservations ReservationReadStore, blockedTimes BlockedTimeReadStore) AdminQueries {
	return &adminQueriesImpl{
		reservations: reservations,
		blockedTimes: blockedTimes,
	}
}

func (q *adminQueriesImpl) ListReservations(ctx context.Context) ([]*ReservationView, error) {
	return q.reservations.FindAll(ctx)
}

func (q *adminQueriesImpl) ListBlockedTimes(ctx context.Context) ([]*BlockedTimeView, error) {
	return q.blockedTimes.FindAll(ctx)
}

// Statistics aggregates reservations whose date falls in the inclusive
// [from, to] range. The overall totals are computed from the per-space
// partitions, so the partitions always sum to the totals exactly.
func (q *adminQueriesImpl) Statistics(ctx context.Context, from, to string) (*StatisticsView, error) {
	fromDate, err := booking.NewDate(from)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}
	toDate, err := booking.NewDate(to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}
	if toDate.Before(fromDate) {
		return nil, errs.Mark(errs.New("date range end precedes start"), errs.ErrValidationFailed)
	}

	rows, err := q.reservations.FindByDateRange(ctx, fromDate.String(), toDate.String())
	if err != nil {
		return nil, err
	}

	type bucket struct {
		count   int64
		revenue int64
	}
	buckets := make(map[string]*bucket, len(booking.AllSpaces()))
	for _, space := range booking.AllSpaces() {
		buckets[space.String()] = &bucket{}
	}
	for _, row := range rows {
		b, ok := buckets[row.Space]
		if !ok {
			b = &bucket{}
			buckets[row.Space] = b
		}
		b.count++
		b.revenue += row.Price
	}

	view := &StatisticsView{
		From:    fromDate.String(),
		To:      toDate.String(),
		BySpace: make([]SpaceStatistics, 0, len(booking.AllSpaces())),
	}
	for _, space := range booking.AllSpaces() {
		b := buckets[space.String()]
		stat := SpaceStatistics{
			Space:   space.String(),
			Count:   b.count,
			Revenue: b.revenue,
		}
		if b.count > 0 {
			stat.Average = float64(b.revenue) / float64(b.count)
		}
		view.Count += b.count
		view.Revenue += b.revenue
		view.BySpace = append(view.BySpace, stat)
	}
	if view.Count > 0 {
		view.Average = float64(view.Revenue) / float64(view.Count)
	}
	return view, nil
}
