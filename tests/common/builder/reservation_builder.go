//go:build unit || e2e

package builder

import (
	reqdto "studio-booking/internal/handler/dto/request"
	"studio-booking/internal/usecase/commands"
)

type ReservationBuilder struct {
	date    string
	space   string
	slots   []string
	people  int
	options []string
	name    string
	contact string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		date:    "2026-09-15",
		space:   "room-a",
		slots:   []string{"10:00-11:00", "11:00-12:00"},
		people:  5,
		options: []string{"sound-equipment"},
		name:    "Kim",
		contact: "010-1234-5678",
	}
}

func (b *ReservationBuilder) WithSpace(space string) *ReservationBuilder {
	b.space = space
	return b
}

func (b *ReservationBuilder) WithSlots(slots ...string) *ReservationBuilder {
	b.slots = slots
	return b
}

func (b *ReservationBuilder) WithPeople(people int) *ReservationBuilder {
	b.people = people
	return b
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Date:    b.date,
		Space:   b.space,
		Slots:   b.slots,
		People:  b.people,
		Options: b.options,
		Name:    b.name,
		Contact: b.contact,
	}
}

func (b *ReservationBuilder) BuildCreateResult() *commands.CreateReservationResult {
	return &commands.CreateReservationResult{
		IDs:          []int64{1, 2},
		Date:         b.date,
		Space:        b.space,
		Slots:        b.slots,
		TotalPrice:   27000,
		PricePerSlot: 13500,
	}
}
