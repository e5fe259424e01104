//go:build unit

package booking_test

import (
	"testing"
	"time"

	"studio-booking/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) booking.Date {
	t.Helper()
	date, err := booking.NewDate(value)
	require.NoError(t, err)
	return date
}

func mustMoney(t *testing.T, amount int64) booking.Money {
	t.Helper()
	money, err := booking.NewMoney(amount)
	require.NoError(t, err)
	return money
}

func TestNewReservation(t *testing.T) {
	date := mustDate(t, "2026-09-15")
	price := mustMoney(t, 13500)

	t.Run("valid reservation", func(t *testing.T) {
		res, err := booking.NewReservation(date, "10:00-11:00", booking.SpaceRoomA, 5,
			[]booking.Option{booking.OptionSoundEquipment}, price, "  Kim  ", "010-1234-5678")
		require.NoError(t, err)

		assert.Equal(t, "Kim", res.Name()) // whitespace trimmed
		assert.Equal(t, "010-1234-5678", res.Contact())
		assert.Equal(t, "10:00-11:00", res.Slot())
		assert.Equal(t, booking.SpaceRoomA, res.Space())
		assert.Equal(t, int64(13500), res.Price().Amount())
		assert.Zero(t, res.ID()) // unassigned until persisted
	})

	cases := []struct {
		name    string
		slot    string
		space   booking.Space
		people  int
		options []booking.Option
		guest   string
		contact string
		errIs   error
	}{
		{"unknown slot label", "08:00-09:00", booking.SpaceRoomA, 2, nil, "Kim", "010", booking.ErrInvalidSlot},
		{"unknown space", "10:00-11:00", booking.Space("rooftop"), 2, nil, "Kim", "010", booking.ErrInvalidSpace},
		{"zero people", "10:00-11:00", booking.SpaceRoomA, 0, nil, "Kim", "010", booking.ErrInvalidPeople},
		{"unknown option", "10:00-11:00", booking.SpaceRoomA, 2, []booking.Option{"catering"}, "Kim", "010", booking.ErrInvalidOption},
		{"blank name", "10:00-11:00", booking.SpaceRoomA, 2, nil, "   ", "010", booking.ErrEmptyName},
		{"blank contact", "10:00-11:00", booking.SpaceRoomA, 2, nil, "Kim", "", booking.ErrEmptyContact},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.NewReservation(date, tc.slot, tc.space, tc.people, tc.options, price, tc.guest, tc.contact)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestReconstructReservation(t *testing.T) {
	date := mustDate(t, "2026-09-15")
	createdAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	res := booking.ReconstructReservation(42, date, "10:00-11:00", booking.SpaceStudio, 3,
		[]booking.Option{booking.OptionInstrumentRental}, mustMoney(t, 30000), "Lee", "lee@example.com", createdAt)

	assert.Equal(t, int64(42), res.ID())
	assert.Equal(t, createdAt, res.CreatedAt())
	assert.Empty(t, cmp.Diff([]booking.Option{booking.OptionInstrumentRental}, res.Options()))
}

func TestNewBlockedTime(t *testing.T) {
	date := mustDate(t, "2026-09-15")

	t.Run("valid block", func(t *testing.T) {
		blocked, err := booking.NewBlockedTime(date, "09:00-10:00", booking.SpaceRoomB, " maintenance ")
		require.NoError(t, err)
		assert.Equal(t, "maintenance", blocked.Reason())
	})

	t.Run("empty reason allowed", func(t *testing.T) {
		blocked, err := booking.NewBlockedTime(date, "09:00-10:00", booking.SpaceRoomB, "")
		require.NoError(t, err)
		assert.Empty(t, blocked.Reason())
	})

	t.Run("unknown slot label", func(t *testing.T) {
		_, err := booking.NewBlockedTime(date, "23:00-24:00", booking.SpaceRoomB, "")
		assert.ErrorIs(t, err, booking.ErrInvalidSlot)
	})
}
