package response

import "studio-booking/internal/usecase/commands"

type CreateReservationResponse struct {
	IDs          []int64  `json:"ids"`
	Date         string   `json:"date"`
	Space        string   `json:"space"`
	Slots        []string `json:"slots"`
	TotalPrice   int64    `json:"total_price"`
	PricePerSlot int64    `json:"price_per_slot"`
}

func FromCreateReservationResult(result *commands.CreateReservationResult) *CreateReservationResponse {
	return &CreateReservationResponse{
		IDs:          result.IDs,
		Date:         result.Date,
		Space:        result.Space,
		Slots:        result.Slots,
		TotalPrice:   result.TotalPrice,
		PricePerSlot: result.PricePerSlot,
	}
}

type BlockSlotsResponse struct {
	Blocked int `json:"blocked"`
}
