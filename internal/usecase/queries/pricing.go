package queries

import (
	"context"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/pkg/errs"
)

type PriceSettingsReadStore interface {
	// Latest returns the most recently appended settings version, or
	// nil when no override has ever been saved.
	Latest(ctx context.Context) (*booking.PriceSettings, error)
}

type QuoteParams struct {
	Space   string
	Slots   []string
	People  int
	Options []string
}

type PricingQueries interface {
	CurrentSettings(ctx context.Context) (*PriceSettingsView, error)
	Quote(ctx context.Context, params QuoteParams) (*QuoteView, error)
	// Simulate prices a request against in-progress settings edits that
	// have not been saved, for the pricing editor's live preview.
	Simulate(ctx context.Context, settings PriceSettingsView, params QuoteParams) (*QuoteView, error)
}

type pricingQueriesImpl struct {
	store PriceSettingsReadStore
}

func NewPricingQueries(store PriceSettingsReadStore) PricingQueries {
	return &pricingQueriesImpl{store: store}
}

func (q *pricingQueriesImpl) CurrentSettings(ctx context.Context) (*PriceSettingsView, error) {
	settings, err := q.store.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		defaults := booking.DefaultPriceSettings()
		settings = &defaults
	}
	return settingsToView(*settings), nil
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, params QuoteParams) (*QuoteView, error) {
	settings, err := q.store.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		defaults := booking.DefaultPriceSettings()
		settings = &defaults
	}
	return quoteWith(*settings, params)
}

func (q *pricingQueriesImpl) Simulate(_ context.Context, settings PriceSettingsView, params QuoteParams) (*QuoteView, error) {
	domainSettings, err := SettingsFromView(settings)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPriceSettings)
	}
	return quoteWith(domainSettings, params)
}

func quoteWith(settings booking.PriceSettings, params QuoteParams) (*QuoteView, error) {
	space, err := booking.ParseSpace(params.Space)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}
	options, err := booking.ParseOptions(params.Options)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	quote, err := booking.NewCalculator(settings).Calculate(space, params.Slots, params.People, options)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	return &QuoteView{
		BaseFee:   quote.BaseFee,
		PeopleFee: quote.PeopleFee,
		OptionFee: quote.OptionFee,
		Total:     quote.Total,
	}, nil
}

func settingsToView(settings booking.PriceSettings) *PriceSettingsView {
	view := &PriceSettingsView{
		BasePrices:     make(map[string]int64, len(settings.BasePrices)),
		BasePeople:     settings.BasePeople,
		PeopleExtraFee: settings.PeopleExtraFee,
		OptionPrices:   make(map[string]int64, len(settings.OptionPrices)),
	}
	for space, rate := range settings.BasePrices {
		view.BasePrices[space.String()] = rate
	}
	for option, rate := range settings.OptionPrices {
		view.OptionPrices[option.String()] = rate
	}
	return view
}

// SettingsFromView validates every rate key against the enumerated
// catalogs before the settings are used or persisted.
func SettingsFromView(view PriceSettingsView) (booking.PriceSettings, error) {
	settings := booking.PriceSettings{
		BasePrices:     make(map[booking.Space]int64, len(view.BasePrices)),
		BasePeople:     view.BasePeople,
		PeopleExtraFee: view.PeopleExtraFee,
		OptionPrices:   make(map[booking.Option]int64, len(view.OptionPrices)),
	}
	for key, rate := range view.BasePrices {
		space, err := booking.ParseSpace(key)
		if err != nil {
			return booking.PriceSettings{}, err
		}
		settings.BasePrices[space] = rate
	}
	for key, rate := range view.OptionPrices {
		option, err := booking.ParseOption(key)
		if err != nil {
			return booking.PriceSettings{}, err
		}
		settings.OptionPrices[option] = rate
	}
	if err := settings.Validate(); err != nil {
		return booking.PriceSettings{}, err
	}
	return settings, nil
}
