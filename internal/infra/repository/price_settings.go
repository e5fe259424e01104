package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/db"
)

// PriceSettingsRepository serves both sides: Latest for reads and
// Append for the write path. Versions are append-only; the newest row
// is the current rule set.
type PriceSettingsRepository struct {
	db db.DBTX
}

func NewPriceSettingsRepository(dbtx db.DBTX) *PriceSettingsRepository {
	return &PriceSettingsRepository{db: dbtx}
}

const (
	latestSettingsSQL = `
	SELECT settings FROM price_settings
	ORDER BY updated_at DESC, id DESC
	LIMIT 1`

	appendSettingsSQL = `
	INSERT INTO price_settings (settings) VALUES ($1)`
)

func (r *PriceSettingsRepository) Latest(ctx context.Context) (*booking.PriceSettings, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, latestSettingsSQL).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No override saved yet; callers fall back to defaults.
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load price settings", err)
	}

	var settings booking.PriceSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, infra.WrapRepoErr("failed to decode price settings", err)
	}
	return &settings, nil
}

func (r *PriceSettingsRepository) Append(ctx context.Context, dbtx db.DBTX, settings booking.PriceSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return infra.WrapRepoErr("failed to encode price settings", err)
	}
	if _, err := dbtx.Exec(ctx, appendSettingsSQL, raw); err != nil {
		return infra.WrapRepoErr("failed to append price settings", err)
	}
	return nil
}
