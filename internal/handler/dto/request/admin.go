package request

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type BlockSlotsRequest struct {
	From   string   `json:"from" binding:"required"`
	To     string   `json:"to" binding:"required"`
	Space  string   `json:"space" binding:"required"`
	Slots  []string `json:"slots" binding:"required,min=1"`
	Reason string   `json:"reason"`
}

type PriceSettingsRequest struct {
	BasePrices     map[string]int64 `json:"base_prices" binding:"required"`
	BasePeople     int              `json:"base_people" binding:"required,gte=0"`
	PeopleExtraFee int64            `json:"people_extra_fee" binding:"gte=0"`
	OptionPrices   map[string]int64 `json:"option_prices" binding:"required"`
}

type SimulatePriceRequest struct {
	Settings PriceSettingsRequest `json:"settings" binding:"required"`
	Space    string               `json:"space" binding:"required"`
	Slots    []string             `json:"slots" binding:"required,min=1"`
	People   int                  `json:"people" binding:"required,gt=0"`
	Options  []string             `json:"options"`
}
