//go:build unit

package queries_test

import (
	"context"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/usecase/queries"
)

type fakeAvailabilityStore struct {
	taken     []string
	occupancy []queries.SlotOccupancy
	err       error
}

func (f *fakeAvailabilityStore) TakenTimes(_ context.Context, _, _ string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.taken, nil
}

func (f *fakeAvailabilityStore) DayOccupancy(_ context.Context, _ string) ([]queries.SlotOccupancy, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.occupancy, nil
}

type fakeSettingsStore struct {
	latest *booking.PriceSettings
	err    error
}

func (f *fakeSettingsStore) Latest(_ context.Context) (*booking.PriceSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.latest, nil
}

type fakeReservationStore struct {
	rows []*queries.ReservationView
	err  error
}

func (f *fakeReservationStore) FindAll(_ context.Context) ([]*queries.ReservationView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeReservationStore) FindByDateRange(_ context.Context, from, to string) ([]*queries.ReservationView, error) {
	if f.err != nil {
		return nil, f.err
	}
	var filtered []*queries.ReservationView
	for _, row := range f.rows {
		if row.Date >= from && row.Date <= to {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

type fakeBlockedTimeStore struct {
	rows []*queries.BlockedTimeView
	err  error
}

func (f *fakeBlockedTimeStore) FindAll(_ context.Context) ([]*queries.BlockedTimeView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}
