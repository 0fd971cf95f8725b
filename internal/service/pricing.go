package service

import (
	"errors"
	"fmt"

	"aquaseal/internal/model"

	"github.com/shopspring/decimal"
)

// Pricing estimator errors. Both indicate a stale or broken caller (e.g. a
// frontend offering a category the table no longer carries), so they are
// surfaced as-is rather than defaulted over.
var (
	ErrUnknownCategory = errors.New("unknown service category")
	ErrUnknownTier     = errors.New("unknown pricing tier")
)

// RateRange is a per-square-meter price band for one service category
type RateRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// RateTable holds the full pricing configuration: base rate bands per
// category and the multiplicative adjustment factors per tier. It is
// immutable after construction, so the estimator is safe for concurrent use.
type RateTable struct {
	Base     map[model.ServiceCategory]RateRange
	Location map[model.LocationTier]decimal.Decimal
	Urgency  map[model.UrgencyTier]decimal.Decimal
}

// DefaultRateTable returns the current price list in BGN per square meter
func DefaultRateTable() *RateTable {
	return &RateTable{
		Base: map[model.ServiceCategory]RateRange{
			model.ServiceFlatRoof:        {Min: decimal.NewFromInt(70), Max: decimal.NewFromInt(95)},
			model.ServiceTerrace:         {Min: decimal.NewFromInt(60), Max: decimal.NewFromInt(85)},
			model.ServiceFoundation:      {Min: decimal.NewFromInt(80), Max: decimal.NewFromInt(110)},
			model.ServicePool:            {Min: decimal.NewFromInt(90), Max: decimal.NewFromInt(130)},
			model.ServiceIndustrialFloor: {Min: decimal.NewFromInt(55), Max: decimal.NewFromInt(75)},
		},
		Location: map[model.LocationTier]decimal.Decimal{
			model.LocationCapital:  decimal.NewFromInt(1),
			model.LocationRegion:   decimal.NewFromFloat(1.08),
			model.LocationMountain: decimal.NewFromFloat(1.15),
		},
		Urgency: map[model.UrgencyTier]decimal.Decimal{
			model.UrgencyStandard: decimal.NewFromInt(1),
			model.UrgencyUrgent:   decimal.NewFromFloat(1.12),
		},
	}
}

// Estimator computes price quotes from the rate table. It is a pure
// calculator: no I/O, no state beyond the immutable table.
type Estimator struct {
	rates    *RateTable
	currency string
}

// NewEstimator creates an estimator over the given rate table
func NewEstimator(rates *RateTable, currency string) *Estimator {
	return &Estimator{rates: rates, currency: currency}
}

// Quote computes the price range for a request.
//
// Per-unit bounds are the base band scaled by the combined location and
// urgency factor, rounded half away from zero to whole currency units; the
// totals are the rounded per-unit bounds times the area, rounded again.
// The area is accepted as given: slider bounds are a frontend constraint,
// not enforced here.
func (e *Estimator) Quote(req *model.QuoteRequest) (*model.QuoteResult, error) {
	base, ok := e.rates.Base[req.Service]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, req.Service)
	}

	locFactor, ok := e.rates.Location[req.Location]
	if !ok {
		return nil, fmt.Errorf("%w: location %q", ErrUnknownTier, req.Location)
	}

	urgFactor, ok := e.rates.Urgency[req.Urgency]
	if !ok {
		return nil, fmt.Errorf("%w: urgency %q", ErrUnknownTier, req.Urgency)
	}

	factor := locFactor.Mul(urgFactor)
	perSqmLow := base.Min.Mul(factor).Round(0)
	perSqmHigh := base.Max.Mul(factor).Round(0)

	area := decimal.NewFromFloat(req.AreaSqm)
	totalLow := perSqmLow.Mul(area).Round(0)
	totalHigh := perSqmHigh.Mul(area).Round(0)

	return &model.QuoteResult{
		PerSqmLow:  perSqmLow.IntPart(),
		PerSqmHigh: perSqmHigh.IntPart(),
		TotalLow:   totalLow.IntPart(),
		TotalHigh:  totalHigh.IntPart(),
		Currency:   e.currency,
	}, nil
}
