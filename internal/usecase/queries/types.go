package queries

import "time"

// Read models (DTO for read side)
type ReservationView struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Space     string    `json:"space"`
	People    int       `json:"people"`
	Options   []string  `json:"options"`
	Price     int64     `json:"price"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
}

type BlockedTimeView struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Space     string    `json:"space"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SlotOccupancy is one taken (time, space) pair of a day, used for
// calendar badge counts.
type SlotOccupancy struct {
	Time  string `json:"time"`
	Space string `json:"space"`
}

type SpaceStatistics struct {
	Space   string  `json:"space"`
	Count   int64   `json:"count"`
	Revenue int64   `json:"revenue"`
	Average float64 `json:"average"`
}

type StatisticsView struct {
	From    string            `json:"from"`
	To      string            `json:"to"`
	Count   int64             `json:"count"`
	Revenue int64             `json:"revenue"`
	Average float64           `json:"average"`
	BySpace []SpaceStatistics `json:"by_space"`
}

type QuoteView struct {
	BaseFee   int64 `json:"base_fee"`
	PeopleFee int64 `json:"people_fee"`
	OptionFee int64 `json:"option_fee"`
	Total     int64 `json:"total"`
}

type PriceSettingsView struct {
	BasePrices     map[string]int64 `json:"base_prices"`
	BasePeople     int              `json:"base_people"`
	PeopleExtraFee int64            `json:"people_extra_fee"`
	OptionPrices   map[string]int64 `json:"option_prices"`
}

type CatalogView struct {
	Spaces  []string `json:"spaces"`
	Options []string `json:"options"`
	Slots   []string `json:"slots"`
}
