//go:build unit

package booking_test

import (
	"testing"

	"studio-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots(t *testing.T) {
	slots := booking.Slots()

	require.Len(t, slots, 13)
	assert.Equal(t, "09:00-10:00", slots[0])
	assert.Equal(t, "21:00-22:00", slots[len(slots)-1])

	// chronological order
	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i])
	}
}

func TestIsValidSlot(t *testing.T) {
	assert.True(t, booking.IsValidSlot("09:00-10:00"))
	assert.True(t, booking.IsValidSlot("21:00-22:00"))
	assert.False(t, booking.IsValidSlot("22:00-23:00"))
	assert.False(t, booking.IsValidSlot("9:00-10:00"))
	assert.False(t, booking.IsValidSlot(""))
}

func TestParseSpace(t *testing.T) {
	for _, space := range booking.AllSpaces() {
		parsed, err := booking.ParseSpace(space.String())
		require.NoError(t, err)
		assert.Equal(t, space, parsed)
	}

	_, err := booking.ParseSpace("rooftop")
	assert.ErrorIs(t, err, booking.ErrInvalidSpace)
}

func TestParseOptions(t *testing.T) {
	options, err := booking.ParseOptions([]string{"sound-equipment", "instrument-rental"})
	require.NoError(t, err)
	assert.Equal(t, []booking.Option{booking.OptionSoundEquipment, booking.OptionInstrumentRental}, options)

	_, err = booking.ParseOptions([]string{"sound-equipment", "catering"})
	assert.ErrorIs(t, err, booking.ErrInvalidOption)
}
