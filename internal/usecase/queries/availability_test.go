//go:build unit

package queries_test

import (
	"context"
	"testing"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableTimes(t *testing.T) {
	ctx := context.Background()

	t.Run("filters taken slots keeping catalog order", func(t *testing.T) {
		store := &fakeAvailabilityStore{taken: []string{"10:00-11:00", "09:00-10:00"}}
		q := queries.NewAvailabilityQueries(store)

		available, err := q.AvailableTimes(ctx, "2026-09-15", "room-a")
		require.NoError(t, err)

		require.Len(t, available, 11)
		assert.Equal(t, "11:00-12:00", available[0])
		assert.NotContains(t, available, "09:00-10:00")
		assert.NotContains(t, available, "10:00-11:00")
	})

	t.Run("free day returns the whole catalog", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&fakeAvailabilityStore{})

		available, err := q.AvailableTimes(ctx, "2026-09-15", "room-a")
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(booking.Slots(), available))
	})

	t.Run("fully booked day returns an empty list", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&fakeAvailabilityStore{taken: booking.Slots()})

		available, err := q.AvailableTimes(ctx, "2026-09-15", "room-a")
		require.NoError(t, err)
		assert.Empty(t, available)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&fakeAvailabilityStore{})

		_, err := q.AvailableTimes(ctx, "someday", "room-a")
		assert.ErrorIs(t, err, errs.ErrValidationFailed)
	})

	t.Run("rejects unknown space", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&fakeAvailabilityStore{})

		_, err := q.AvailableTimes(ctx, "2026-09-15", "rooftop")
		assert.ErrorIs(t, err, errs.ErrValidationFailed)
	})
}

func TestDayOccupancy(t *testing.T) {
	ctx := context.Background()

	t.Run("passes through store rows", func(t *testing.T) {
		occupancy := []queries.SlotOccupancy{
			{Time: "09:00-10:00", Space: "room-a"},
			{Time: "09:00-10:00", Space: "studio"},
		}
		q := queries.NewAvailabilityQueries(&fakeAvailabilityStore{occupancy: occupancy})

		got, err := q.DayOccupancy(ctx, "2026-09-15")
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(occupancy, got))
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&fakeAvailabilityStore{})

		_, err := q.DayOccupancy(ctx, "2026/09/15")
		assert.ErrorIs(t, err, errs.ErrValidationFailed)
	})
}

func TestCatalog(t *testing.T) {
	q := queries.NewAvailabilityQueries(&fakeAvailabilityStore{})

	catalog := q.Catalog()
	assert.Equal(t, []string{"room-a", "room-b", "studio"}, catalog.Spaces)
	assert.Equal(t, []string{"sound-equipment", "lighting-equipment", "instrument-rental"}, catalog.Options)
	assert.Len(t, catalog.Slots, 13)
}
