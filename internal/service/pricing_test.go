package service

import (
	"errors"
	"testing"

	"aquaseal/internal/model"
)

func newTestEstimator() *Estimator {
	return NewEstimator(DefaultRateTable(), "BGN")
}

func TestQuote_BaselineExample(t *testing.T) {
	// Flat roof, 250 sqm, capital, standard: both factors are 1, so the
	// result is the raw base band.
	result, err := newTestEstimator().Quote(&model.QuoteRequest{
		Service:  model.ServiceFlatRoof,
		AreaSqm:  250,
		Location: model.LocationCapital,
		Urgency:  model.UrgencyStandard,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.PerSqmLow != 70 || result.PerSqmHigh != 95 {
		t.Errorf("per sqm = %d-%d, want 70-95", result.PerSqmLow, result.PerSqmHigh)
	}
	if result.TotalLow != 17500 || result.TotalHigh != 23750 {
		t.Errorf("total = %d-%d, want 17500-23750", result.TotalLow, result.TotalHigh)
	}
}

func TestQuote_UrgentRounding(t *testing.T) {
	// 70*1.12 = 78.4 rounds to 78, 95*1.12 = 106.4 rounds to 106
	result, err := newTestEstimator().Quote(&model.QuoteRequest{
		Service:  model.ServiceFlatRoof,
		AreaSqm:  250,
		Location: model.LocationCapital,
		Urgency:  model.UrgencyUrgent,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.PerSqmLow != 78 || result.PerSqmHigh != 106 {
		t.Errorf("per sqm = %d-%d, want 78-106", result.PerSqmLow, result.PerSqmHigh)
	}
	if result.TotalLow != 78*250 || result.TotalHigh != 106*250 {
		t.Errorf("total = %d-%d, want %d-%d", result.TotalLow, result.TotalHigh, 78*250, 106*250)
	}
}

func TestQuote_BoundsOrderedForAllCombinations(t *testing.T) {
	est := newTestEstimator()

	for _, svc := range model.ServiceCategories {
		for _, loc := range model.LocationTiers {
			for _, urg := range model.UrgencyTiers {
				result, err := est.Quote(&model.QuoteRequest{
					Service:  svc,
					AreaSqm:  120,
					Location: loc,
					Urgency:  urg,
				})
				if err != nil {
					t.Fatalf("Quote(%s, %s, %s) failed: %v", svc, loc, urg, err)
				}
				if result.PerSqmLow > result.PerSqmHigh {
					t.Errorf("Quote(%s, %s, %s): per sqm low %d > high %d", svc, loc, urg, result.PerSqmLow, result.PerSqmHigh)
				}
				if result.TotalLow > result.TotalHigh {
					t.Errorf("Quote(%s, %s, %s): total low %d > high %d", svc, loc, urg, result.TotalLow, result.TotalHigh)
				}
			}
		}
	}
}

func TestQuote_FactorsNeverLowerBaseline(t *testing.T) {
	est := newTestEstimator()

	for _, svc := range model.ServiceCategories {
		baseline, err := est.Quote(&model.QuoteRequest{
			Service:  svc,
			AreaSqm:  100,
			Location: model.LocationCapital,
			Urgency:  model.UrgencyStandard,
		})
		if err != nil {
			t.Fatalf("baseline quote failed: %v", err)
		}

		for _, loc := range model.LocationTiers {
			for _, urg := range model.UrgencyTiers {
				result, err := est.Quote(&model.QuoteRequest{
					Service:  svc,
					AreaSqm:  100,
					Location: loc,
					Urgency:  urg,
				})
				if err != nil {
					t.Fatalf("quote failed: %v", err)
				}
				if result.PerSqmLow < baseline.PerSqmLow || result.PerSqmHigh < baseline.PerSqmHigh {
					t.Errorf("Quote(%s, %s, %s) fell below the baseline: %+v < %+v", svc, loc, urg, result, baseline)
				}
			}
		}
	}
}

func TestQuote_Deterministic(t *testing.T) {
	est := newTestEstimator()
	req := &model.QuoteRequest{
		Service:  model.ServicePool,
		AreaSqm:  37.5,
		Location: model.LocationMountain,
		Urgency:  model.UrgencyUrgent,
	}

	first, err := est.Quote(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := est.Quote(req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *again != *first {
			t.Fatalf("quote changed between calls: %+v vs %+v", again, first)
		}
	}
}

func TestQuote_UnknownEnums(t *testing.T) {
	est := newTestEstimator()

	tests := []struct {
		name    string
		req     model.QuoteRequest
		wantErr error
	}{
		{
			name:    "unknown category",
			req:     model.QuoteRequest{Service: "balcony", AreaSqm: 50, Location: model.LocationCapital, Urgency: model.UrgencyStandard},
			wantErr: ErrUnknownCategory,
		},
		{
			name:    "unknown location tier",
			req:     model.QuoteRequest{Service: model.ServiceTerrace, AreaSqm: 50, Location: "seaside", Urgency: model.UrgencyStandard},
			wantErr: ErrUnknownTier,
		},
		{
			name:    "unknown urgency tier",
			req:     model.QuoteRequest{Service: model.ServiceTerrace, AreaSqm: 50, Location: model.LocationCapital, Urgency: "yesterday"},
			wantErr: ErrUnknownTier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := est.Quote(&tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if result != nil {
				t.Errorf("expected nil result on error, got %+v", result)
			}
		})
	}
}
