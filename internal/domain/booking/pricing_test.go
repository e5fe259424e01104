//go:build unit

package booking_test

import (
	"testing"

	"studio-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator(t *testing.T) {
	calc := booking.NewCalculator(booking.DefaultPriceSettings())

	t.Run("documented formula example", func(t *testing.T) {
		// rate 10000, 2 slots, 5 people (base 4), one option at 5000
		quote, err := calc.Calculate(
			booking.SpaceRoomA,
			[]string{"10:00-11:00", "11:00-12:00"},
			5,
			[]booking.Option{booking.OptionSoundEquipment},
		)
		require.NoError(t, err)
		assert.Equal(t, int64(20000), quote.BaseFee)
		assert.Equal(t, int64(2000), quote.PeopleFee)
		assert.Equal(t, int64(5000), quote.OptionFee)
		assert.Equal(t, int64(27000), quote.Total)
	})

	t.Run("only slot count matters, not identity", func(t *testing.T) {
		a, err := calc.Calculate(booking.SpaceRoomB, []string{"09:00-10:00", "21:00-22:00"}, 2, nil)
		require.NoError(t, err)
		b, err := calc.Calculate(booking.SpaceRoomB, []string{"13:00-14:00", "14:00-15:00"}, 2, nil)
		require.NoError(t, err)
		assert.Equal(t, a.Total, b.Total)
	})

	t.Run("no people fee at or below the base headcount", func(t *testing.T) {
		for _, people := range []int{1, 4} {
			quote, err := calc.Calculate(booking.SpaceStudio, []string{"09:00-10:00"}, people, nil)
			require.NoError(t, err)
			assert.Zero(t, quote.PeopleFee)
			assert.Equal(t, int64(30000), quote.Total)
		}
	})

	t.Run("all options sum", func(t *testing.T) {
		quote, err := calc.Calculate(booking.SpaceRoomA, []string{"09:00-10:00"}, 1, booking.AllOptions())
		require.NoError(t, err)
		assert.Equal(t, int64(5000+8000+10000), quote.OptionFee)
	})

	cases := []struct {
		name    string
		space   booking.Space
		slots   []string
		people  int
		options []booking.Option
		errIs   error
	}{
		{
			name:   "unknown space fails rate lookup",
			space:  booking.Space("rooftop"),
			slots:  []string{"09:00-10:00"},
			people: 2,
			errIs:  booking.ErrUnknownSpace,
		},
		{
			name:    "unknown option fails rate lookup",
			space:   booking.SpaceRoomA,
			slots:   []string{"09:00-10:00"},
			people:  2,
			options: []booking.Option{booking.Option("catering")},
			errIs:   booking.ErrUnknownOption,
		},
		{
			name:   "empty slot selection",
			space:  booking.SpaceRoomA,
			slots:  nil,
			people: 2,
			errIs:  booking.ErrNoSlots,
		},
		{
			name:   "zero people",
			space:  booking.SpaceRoomA,
			slots:  []string{"09:00-10:00"},
			people: 0,
			errIs:  booking.ErrInvalidPeople,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := calc.Calculate(tc.space, tc.slots, tc.people, tc.options)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestSplitPrice(t *testing.T) {
	t.Run("inexact division floors and loses the remainder", func(t *testing.T) {
		perSlot := booking.SplitPrice(100, 3)
		assert.Equal(t, int64(33), perSlot)
		assert.Equal(t, int64(99), perSlot*3) // recorded total falls short of 100
	})

	t.Run("exact division records the full total", func(t *testing.T) {
		assert.Equal(t, int64(13500), booking.SplitPrice(27000, 2))
	})

	t.Run("degenerate slot count", func(t *testing.T) {
		assert.Zero(t, booking.SplitPrice(100, 0))
	})
}

func TestPriceSettingsValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, booking.DefaultPriceSettings().Validate())
	})

	t.Run("unknown rate key rejected", func(t *testing.T) {
		settings := booking.DefaultPriceSettings()
		settings.BasePrices[booking.Space("rooftop")] = 1000
		assert.ErrorIs(t, settings.Validate(), booking.ErrInvalidRateKey)
	})

	t.Run("negative rate rejected", func(t *testing.T) {
		settings := booking.DefaultPriceSettings()
		settings.OptionPrices[booking.OptionSoundEquipment] = -1
		assert.ErrorIs(t, settings.Validate(), booking.ErrNegativeRate)
	})
}
