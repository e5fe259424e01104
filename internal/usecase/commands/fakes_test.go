//go:build unit

package commands_test

import (
	"context"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra/db"
)

// fakeUoW runs the callback directly; transactional behavior itself is
// infrastructure concern and is not under test here.
type fakeUoW struct{}

func (fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeReservationRepo struct {
	created []*booking.Reservation
	// errOnCall fails the n-th Create (1-based); zero disables.
	errOnCall int
	err       error
}

func (f *fakeReservationRepo) Create(_ context.Context, _ db.DBTX, res *booking.Reservation) (int64, error) {
	if f.errOnCall > 0 && len(f.created)+1 == f.errOnCall {
		return 0, f.err
	}
	f.created = append(f.created, res)
	return int64(len(f.created)), nil
}

type fakeBlockedTimeRepo struct {
	created []*booking.BlockedTime
	err     error
}

func (f *fakeBlockedTimeRepo) Create(_ context.Context, _ db.DBTX, bt *booking.BlockedTime) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, bt)
	return int64(len(f.created)), nil
}

type fakeAvailabilityRepo struct {
	taken map[string]bool
	err   error
}

func (f *fakeAvailabilityRepo) IsSlotFree(_ context.Context, _ db.DBTX, date, slot, space string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return !f.taken[date+"|"+slot+"|"+space], nil
}

type fakeSettingsRepo struct {
	latest   *booking.PriceSettings
	appended []booking.PriceSettings
	err      error
}

func (f *fakeSettingsRepo) Latest(_ context.Context) (*booking.PriceSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.latest, nil
}

func (f *fakeSettingsRepo) Append(_ context.Context, _ db.DBTX, settings booking.PriceSettings) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, settings)
	return nil
}
