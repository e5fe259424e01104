package queries

import (
	"context"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/pkg/errs"
)

type AvailabilityReadStore interface {
	// TakenTimes returns slot labels of the date that hold either a
	// reservation or a blocked time for the space.
	TakenTimes(ctx context.Context, date, space string) ([]string, error)
	DayOccupancy(ctx context.Context, date string) ([]SlotOccupancy, error)
}

type AvailabilityQueries interface {
	AvailableTimes(ctx context.Context, date, space string) ([]string, error)
	DayOccupancy(ctx context.Context, date string) ([]SlotOccupancy, error)
	Catalog() CatalogView
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
}

func NewAvailabilityQueries(store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

// AvailableTimes walks the fixed 13-slot catalog and keeps the slots
// with neither a reservation nor a blocked time, preserving
// chronological order.
func (q *availabilityQueriesImpl) AvailableTimes(ctx context.Context, date, space string) ([]string, error) {
	parsed, err := booking.NewDate(date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}
	if _, err := booking.ParseSpace(space); err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	taken, err := q.store.TakenTimes(ctx, parsed.String(), space)
	if err != nil {
		return nil, err
	}

	takenSet := make(map[string]struct{}, len(taken))
	for _, slot := range taken {
		takenSet[slot] = struct{}{}
	}

	available := make([]string, 0, len(booking.Slots()))
	for _, slot := range booking.Slots() {
		if _, ok := takenSet[slot]; !ok {
			available = append(available, slot)
		}
	}
	return available, nil
}

func (q *availabilityQueriesImpl) DayOccupancy(ctx context.Context, date string) ([]SlotOccupancy, error) {
	parsed, err := booking.NewDate(date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}
	return q.store.DayOccupancy(ctx, parsed.String())
}

func (q *availabilityQueriesImpl) Catalog() CatalogView {
	view := CatalogView{
		Spaces:  make([]string, 0, len(booking.AllSpaces())),
		Options: make([]string, 0, len(booking.AllOptions())),
		Slots:   booking.Slots(),
	}
	for _, space := range booking.AllSpaces() {
		view.Spaces = append(view.Spaces, space.String())
	}
	for _, option := range booking.AllOptions() {
		view.Options = append(view.Options, option.String())
	}
	return view
}
