package refdata

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/dealwise/quote-api/internal/deal"
)

//go:embed tables.json
var embeddedTables []byte

// Load parses and validates the embedded reference-data snapshot. Any
// structural problem is fatal and wraps ErrReferenceData.
func Load() (*Tables, error) {
	return Parse(embeddedTables)
}

// Parse decodes a reference-data snapshot from raw JSON and validates it.
func Parse(raw []byte) (*Tables, error) {
	var t Tables
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("decode reference tables: %v: %w", err, ErrReferenceData)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// MustLoad behaves like Load but panics on error. Useful for tests and
// command entrypoints.
func MustLoad() *Tables {
	t, err := Load()
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Tables) validate() error {
	if len(t.Devices) == 0 {
		return fmt.Errorf("device catalog is empty: %w", ErrReferenceData)
	}
	for key, entry := range t.Devices {
		if len(entry.Storage) == 0 {
			return fmt.Errorf("device %q has no storage variants: %w", key, ErrReferenceData)
		}
		for variant, price := range entry.Storage {
			if price <= 0 {
				return fmt.Errorf("device %q storage %q has non-positive price: %w", key, variant, ErrReferenceData)
			}
		}
	}
	for key, credit := range t.TradeInValues {
		if credit < 0 {
			return fmt.Errorf("trade-in value for %q is negative: %w", key, ErrReferenceData)
		}
	}
	if len(t.Plans) == 0 {
		return fmt.Errorf("plan table is empty: %w", ErrReferenceData)
	}
	for planID, plan := range t.Plans {
		prices, ok := plan.PerLineByTier[deal.TierStandard]
		if !ok || len(prices) == 0 {
			return fmt.Errorf("plan %q is missing standard tier pricing: %w", planID, ErrReferenceData)
		}
		for tier, perLine := range plan.PerLineByTier {
			if len(perLine) == 0 {
				return fmt.Errorf("plan %q tier %q has no prices: %w", planID, tier, ErrReferenceData)
			}
			for i, price := range perLine {
				if price <= 0 {
					return fmt.Errorf("plan %q tier %q has non-positive price at %d lines: %w", planID, tier, i+1, ErrReferenceData)
				}
			}
		}
	}
	for i, promo := range t.Promotions {
		if promo.Name == "" {
			return fmt.Errorf("promotion at index %d has no name: %w", i, ErrReferenceData)
		}
		switch promo.Kind {
		case PromotionFlat, PromotionPerLine:
			if promo.Value <= 0 {
				return fmt.Errorf("promotion %q has non-positive value: %w", promo.Name, ErrReferenceData)
			}
		case PromotionPercent:
			if promo.PercentBps <= 0 || promo.PercentBps > 10000 {
				return fmt.Errorf("promotion %q has invalid percent bps: %w", promo.Name, ErrReferenceData)
			}
		default:
			return fmt.Errorf("promotion %q has unknown kind %q: %w", promo.Name, promo.Kind, ErrReferenceData)
		}
		if promo.RequiredPlan != "" {
			if _, ok := t.Plans[promo.RequiredPlan]; !ok {
				return fmt.Errorf("promotion %q requires unknown plan %q: %w", promo.Name, promo.RequiredPlan, ErrReferenceData)
			}
		}
	}
	if t.Accessories.WatchLine <= 0 || t.Accessories.HomeInternet <= 0 {
		return fmt.Errorf("accessory pricing incomplete: %w", ErrReferenceData)
	}
	if _, ok := t.Accessories.TabletByTier["unlimited"]; !ok {
		return fmt.Errorf("accessory pricing missing unlimited tablet tier: %w", ErrReferenceData)
	}
	if len(t.InsuranceTiers) == 0 {
		return fmt.Errorf("insurance tiers are empty: %w", ErrReferenceData)
	}
	if t.Taxes.TaxBps < 0 || t.Taxes.RegulatoryPerLine < 0 || t.Taxes.SurchargePerLine < 0 {
		return fmt.Errorf("tax and fee constants must be non-negative: %w", ErrReferenceData)
	}
	return nil
}
