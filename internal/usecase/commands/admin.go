package commands

import (
	"context"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra/db"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/queries"
	"studio-booking/internal/usecase/shared"
)

type BlockSlotsParams struct {
	From   string
	To     string
	Space  string
	Slots  []string
	Reason string
}

type BlockSlotsResult struct {
	Blocked int
}

type AdminCommands interface {
	BlockSlots(ctx context.Context, params BlockSlotsParams) (*BlockSlotsResult, error)
	UpdatePriceSettings(ctx context.Context, settings queries.PriceSettingsView) error
}

type adminCommandsImpl struct {
	blockedTimeRepo BlockedTimeRepository
	settingsRepo    PriceSettingsRepository
	uow             shared.UnitOfWork
}

func NewAdminCommands(
	blockedTimeRepo BlockedTimeRepository,
	settingsRepo PriceSettingsRepository,
	uow shared.UnitOfWork,
) AdminCommands {
	return &adminCommandsImpl{
		blockedTimeRepo: blockedTimeRepo,
		settingsRepo:    settingsRepo,
		uow:             uow,
	}
}

// BlockSlots writes one blocked-time row per day in the inclusive
// [from, to] range for each selected slot, all in one transaction.
// Blocks are written unconditionally: blocking an already-booked slot
// is accepted behavior, not a conflict.
func (c *adminCommandsImpl) BlockSlots(ctx context.Context, params BlockSlotsParams) (*BlockSlotsResult, error) {
	fail := func(err error) (*BlockSlotsResult, error) {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	from, err := booking.NewDate(params.From)
	if err != nil {
		return fail(err)
	}
	to, err := booking.NewDate(params.To)
	if err != nil {
		return fail(err)
	}
	if to.Before(from) {
		return fail(errs.New("date range end precedes start"))
	}
	space, err := booking.ParseSpace(params.Space)
	if err != nil {
		return fail(err)
	}
	if len(params.Slots) == 0 {
		return fail(booking.ErrNoSlots)
	}

	var blocks []*booking.BlockedTime
	for date := from; !date.After(to); date = date.AddDays(1) {
		for _, slot := range params.Slots {
			bt, err := booking.NewBlockedTime(date, slot, space, params.Reason)
			if err != nil {
				return fail(err)
			}
			blocks = append(blocks, bt)
		}
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		for _, bt := range blocks {
			if _, err := c.blockedTimeRepo.Create(ctx, tx, bt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &BlockSlotsResult{Blocked: len(blocks)}, nil
}

// UpdatePriceSettings appends a new settings version; earlier versions
// stay as history and the newest row wins on the next read.
func (c *adminCommandsImpl) UpdatePriceSettings(ctx context.Context, view queries.PriceSettingsView) error {
	settings, err := queries.SettingsFromView(view)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidPriceSettings)
	}

	return c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return c.settingsRepo.Append(ctx, dbtx, settings)
	})
}
