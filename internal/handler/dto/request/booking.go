package request

type CreateReservationRequest struct {
	Date    string   `json:"date" binding:"required"`
	Space   string   `json:"space" binding:"required"`
	Slots   []string `json:"slots" binding:"required,min=1"`
	People  int      `json:"people" binding:"required,gt=0"`
	Options []string `json:"options"`
	Name    string   `json:"name" binding:"required"`
	Contact string   `json:"contact" binding:"required"`
}

type QuoteRequest struct {
	Space   string   `json:"space" binding:"required"`
	Slots   []string `json:"slots" binding:"required,min=1"`
	People  int      `json:"people" binding:"required,gt=0"`
	Options []string `json:"options"`
}
