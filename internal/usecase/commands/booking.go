package commands

import (
	"context"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/db"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"
)

type CreateReservationParams struct {
	Date    string
	Space   string
	Slots   []string
	People  int
	Options []string
	Name    string
	Contact string
}

type CreateReservationResult struct {
	IDs          []int64
	Date         string
	Space        string
	Slots        []string
	TotalPrice   int64
	PricePerSlot int64
}

type BookingCommands interface {
	CreateReservation(ctx context.Context, params CreateReservationParams) (*CreateReservationResult, error)
}

type bookingCommandsImpl struct {
	reservationRepo ReservationRepository
	availability    AvailabilityRepository
	settingsRepo    PriceSettingsRepository
	uow             shared.UnitOfWork
}

func NewBookingCommands(
	reservationRepo ReservationRepository,
	availability AvailabilityRepository,
	settingsRepo PriceSettingsRepository,
	uow shared.UnitOfWork,
) BookingCommands {
	return &bookingCommandsImpl{
		reservationRepo: reservationRepo,
		availability:    availability,
		settingsRepo:    settingsRepo,
		uow:             uow,
	}
}

// CreateReservation books one row per selected slot. All rows are
// written in a single transaction: either the whole submission commits
// or none of it does. The unique index on (date, time, space) makes a
// concurrent grab of the same slot surface as ErrSlotConflict rather
// than a double booking.
func (c *bookingCommandsImpl) CreateReservation(ctx context.Context, params CreateReservationParams) (*CreateReservationResult, error) {
	date, space, options, err := c.validateParams(params)
	if err != nil {
		return nil, err
	}

	settings, err := c.settingsRepo.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		defaults := booking.DefaultPriceSettings()
		settings = &defaults
	}

	quote, err := booking.NewCalculator(*settings).Calculate(space, params.Slots, params.People, options)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	// Per-row share is the floor of total/slots; an inexact division
	// records slightly less than the quoted total. Reports are built on
	// the recorded rows, so the loss is kept, not corrected.
	perSlot := booking.SplitPrice(quote.Total, len(params.Slots))
	price, err := booking.NewMoney(perSlot)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	result := &CreateReservationResult{
		Date:         date.String(),
		Space:        space.String(),
		Slots:        params.Slots,
		TotalPrice:   quote.Total,
		PricePerSlot: perSlot,
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		for _, slot := range params.Slots {
			free, err := c.availability.IsSlotFree(ctx, tx, date.String(), slot, space.String())
			if err != nil {
				return err
			}
			if !free {
				return errs.Mark(errs.New("slot already taken: "+slot), errs.ErrSlotConflict)
			}

			res, err := booking.NewReservation(date, slot, space, params.People, options, price, params.Name, params.Contact)
			if err != nil {
				return errs.Mark(err, errs.ErrValidationFailed)
			}

			id, err := c.reservationRepo.Create(ctx, tx, res)
			if err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return errs.Mark(err, errs.ErrSlotConflict)
				}
				return err
			}
			result.IDs = append(result.IDs, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *bookingCommandsImpl) validateParams(params CreateReservationParams) (booking.Date, booking.Space, []booking.Option, error) {
	fail := func(err error) (booking.Date, booking.Space, []booking.Option, error) {
		return booking.Date{}, "", nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	date, err := booking.NewDate(params.Date)
	if err != nil {
		return fail(err)
	}
	space, err := booking.ParseSpace(params.Space)
	if err != nil {
		return fail(err)
	}
	options, err := booking.ParseOptions(params.Options)
	if err != nil {
		return fail(err)
	}
	if len(params.Slots) == 0 {
		return fail(booking.ErrNoSlots)
	}
	seen := make(map[string]struct{}, len(params.Slots))
	for _, slot := range params.Slots {
		if !booking.IsValidSlot(slot) {
			return fail(booking.ErrInvalidSlot)
		}
		if _, dup := seen[slot]; dup {
			return fail(booking.ErrDuplicateSlots)
		}
		seen[slot] = struct{}{}
	}
	return date, space, options, nil
}
