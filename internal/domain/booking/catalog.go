package booking

import "fmt"

type Space string

const (
	SpaceRoomA  Space = "room-a"
	SpaceRoomB  Space = "room-b"
	SpaceStudio Space = "studio"
)

func (s Space) String() string {
	return string(s)
}

func (s Space) IsValid() bool {
	switch s {
	case SpaceRoomA, SpaceRoomB, SpaceStudio:
		return true
	default:
		return false
	}
}

func AllSpaces() []Space {
	return []Space{SpaceRoomA, SpaceRoomB, SpaceStudio}
}

func ParseSpace(value string) (Space, error) {
	space := Space(value)
	if !space.IsValid() {
		return "", ErrInvalidSpace
	}
	return space, nil
}

type Option string

const (
	OptionSoundEquipment    Option = "sound-equipment"
	OptionLightingEquipment Option = "lighting-equipment"
	OptionInstrumentRental  Option = "instrument-rental"
)

func (o Option) String() string {
	return string(o)
}

func (o Option) IsValid() bool {
	switch o {
	case OptionSoundEquipment, OptionLightingEquipment, OptionInstrumentRental:
		return true
	default:
		return false
	}
}

func AllOptions() []Option {
	return []Option{OptionSoundEquipment, OptionLightingEquipment, OptionInstrumentRental}
}

func ParseOption(value string) (Option, error) {
	option := Option(value)
	if !option.IsValid() {
		return "", ErrInvalidOption
	}
	return option, nil
}

func ParseOptions(values []string) ([]Option, error) {
	options := make([]Option, 0, len(values))
	for _, v := range values {
		option, err := ParseOption(v)
		if err != nil {
			return nil, err
		}
		options = append(options, option)
	}
	return options, nil
}

const (
	openingHour = 9
	closingHour = 22
)

// Slots returns the fixed daily catalog of one-hour labels,
// "09:00-10:00" through "21:00-22:00", in chronological order.
func Slots() []string {
	slots := make([]string, 0, closingHour-openingHour)
	for h := openingHour; h < closingHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00-%02d:00", h, h+1))
	}
	return slots
}

func IsValidSlot(label string) bool {
	for _, s := range Slots() {
		if s == label {
			return true
		}
	}
	return false
}
