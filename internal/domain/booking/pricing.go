package booking

import "errors"

var (
	ErrUnknownSpace   = errors.New("space has no configured rate")
	ErrUnknownOption  = errors.New("option has no configured rate")
	ErrNoSlots        = errors.New("at least one time slot is required")
	ErrInvalidPeople  = errors.New("people must be a positive number")
	ErrNegativeRate   = errors.New("rates cannot be negative")
	ErrInvalidRateKey = errors.New("rate table contains an unknown key")
)

// PriceSettings is the configurable rule set behind the price formula.
// Persisted versions are append-only; the newest row wins.
type PriceSettings struct {
	BasePrices     map[Space]int64  `json:"base_prices"`
	BasePeople     int              `json:"base_people"`
	PeopleExtraFee int64            `json:"people_extra_fee"`
	OptionPrices   map[Option]int64 `json:"option_prices"`
}

// DefaultPriceSettings is the hardcoded rule set used until an
// administrator saves an override.
func DefaultPriceSettings() PriceSettings {
	return PriceSettings{
		BasePrices: map[Space]int64{
			SpaceRoomA:  10000,
			SpaceRoomB:  15000,
			SpaceStudio: 30000,
		},
		BasePeople:     4,
		PeopleExtraFee: 2000,
		OptionPrices: map[Option]int64{
			OptionSoundEquipment:    5000,
			OptionLightingEquipment: 8000,
			OptionInstrumentRental:  10000,
		},
	}
}

func (s PriceSettings) Validate() error {
	for space, rate := range s.BasePrices {
		if !space.IsValid() {
			return ErrInvalidRateKey
		}
		if rate < 0 {
			return ErrNegativeRate
		}
	}
	for option, rate := range s.OptionPrices {
		if !option.IsValid() {
			return ErrInvalidRateKey
		}
		if rate < 0 {
			return ErrNegativeRate
		}
	}
	if s.PeopleExtraFee < 0 {
		return ErrNegativeRate
	}
	if s.BasePeople < 0 {
		return ErrInvalidPeople
	}
	return nil
}

// Quote is the computed price with its components, as shown in the
// booking preview panel.
type Quote struct {
	BaseFee   int64
	PeopleFee int64
	OptionFee int64
	Total     int64
}

type Calculator struct {
	settings PriceSettings
}

func NewCalculator(settings PriceSettings) *Calculator {
	return &Calculator{settings: settings}
}

// Calculate prices a booking request:
//
//	base_prices[space] * len(slots)
//	+ max(0, people - base_people) * people_extra_fee
//	+ sum(option_prices[o] for o in options)
//
// Only the number of slots matters, not which ones. Spaces and options
// must exist in the configured rule set.
func (c *Calculator) Calculate(space Space, slots []string, people int, options []Option) (Quote, error) {
	if len(slots) == 0 {
		return Quote{}, ErrNoSlots
	}
	if people <= 0 {
		return Quote{}, ErrInvalidPeople
	}

	rate, ok := c.settings.BasePrices[space]
	if !ok {
		return Quote{}, ErrUnknownSpace
	}

	quote := Quote{BaseFee: rate * int64(len(slots))}

	if extra := people - c.settings.BasePeople; extra > 0 {
		quote.PeopleFee = int64(extra) * c.settings.PeopleExtraFee
	}

	for _, option := range options {
		fee, ok := c.settings.OptionPrices[option]
		if !ok {
			return Quote{}, ErrUnknownOption
		}
		quote.OptionFee += fee
	}

	quote.Total = quote.BaseFee + quote.PeopleFee + quote.OptionFee
	return quote, nil
}

// SplitPrice divides a booking total across its n per-slot rows using
// floor division. When the division is inexact the recorded sum
// n*(total/n) falls short of the total; this matches how bookings have
// always been recorded and reports are built on it.
func SplitPrice(total int64, n int) int64 {
	if n <= 0 {
		return 0
	}
	return total / int64(n)
}
