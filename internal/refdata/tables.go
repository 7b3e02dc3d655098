package refdata

import (
	"errors"
	"fmt"
	"time"

	"github.com/dealwise/quote-api/internal/deal"
)

// ErrReferenceData marks fatal reference-table failures. Reference data is
// build-time static, so hitting this class at runtime is a programming or
// packaging error, never a user-facing one. It always propagates; nothing
// downstream recovers from it.
var ErrReferenceData = errors.New("reference data error")

// DeviceEntry describes one catalog model with per-storage list prices in cents.
type DeviceEntry struct {
	Brand   string           `json:"brand"`
	Model   string           `json:"model"`
	Storage map[string]int64 `json:"storage"`
}

// PlanEntry prices a plan per line by qualification tier. The price slice is
// indexed by line count minus one; line counts beyond the slice clamp to the
// last entry.
type PlanEntry struct {
	Name                 string                               `json:"name"`
	AutopayDiscountLine  int64                                `json:"autopayDiscountPerLine"`
	PerLineByTier        map[deal.QualificationTier][]int64   `json:"perLineByTier"`
	FreeLineMinLineCount int                                  `json:"freeLineMinLineCount"`
}

// PromotionKind enumerates the supported monetary effects.
type PromotionKind string

const (
	PromotionFlat    PromotionKind = "flat"
	PromotionPercent PromotionKind = "percent"
	PromotionPerLine PromotionKind = "per_line"
)

// PromotionDefinition is one immutable promotion rule. Definitions apply in
// the order they appear in the table; that order is part of the contract so
// applied-promotion reporting stays deterministic.
type PromotionDefinition struct {
	Name            string          `json:"name"`
	Label           string          `json:"label"`
	Kind            PromotionKind   `json:"kind"`
	Value           int64           `json:"value"`
	PercentBps      int32           `json:"percentBps"`
	Months          int             `json:"months"`
	MinNewLines     int             `json:"minNewLines"`
	RequiredPlan    string          `json:"requiredPlan"`
	MinTradeInValue int64           `json:"minTradeInValue"`
	NewCustomerOnly bool            `json:"newCustomerOnly"`
	RequireSwitcher bool            `json:"requireSwitcher"`
	MinLoyaltyYears int             `json:"minLoyaltyYears"`
	SeasonalMonths  []time.Month    `json:"seasonalMonths"`
	Strategies      []string        `json:"strategies"`
}

// AccessoryPricing holds flat accessory line prices in cents.
type AccessoryPricing struct {
	WatchLine          int64            `json:"watchLine"`
	TabletByTier       map[string]int64 `json:"tabletByTier"`
	HomeInternet       int64            `json:"homeInternet"`
	HomeInternetFreeAt int              `json:"homeInternetFreeAtLines"`
}

// InsuranceTier maps a retail price band to a flat monthly rate. UpTo is the
// exclusive upper bound of the band; 0 means unbounded.
type InsuranceTier struct {
	UpTo    int64 `json:"upTo"`
	Monthly int64 `json:"monthly"`
}

// TaxesAndFees holds service tax and per-line fee constants.
type TaxesAndFees struct {
	TaxBps            int   `json:"taxBps"`
	RegulatoryPerLine int64 `json:"regulatoryPerLine"`
	SurchargePerLine  int64 `json:"surchargePerLine"`
}

// Tables bundles every reference table the engine consumes. Read-only after
// Load; the engine never writes back into it.
type Tables struct {
	Devices        map[string]DeviceEntry `json:"devices"`
	TradeInValues  map[string]int64       `json:"tradeInValues"`
	Plans          map[string]PlanEntry   `json:"plans"`
	Promotions     []PromotionDefinition  `json:"promotions"`
	Accessories    AccessoryPricing       `json:"accessories"`
	InsuranceTiers []InsuranceTier        `json:"insuranceTiers"`
	Taxes          TaxesAndFees           `json:"taxesAndFees"`
}

// PlanPerLine resolves the per-line monthly price for a plan, tier, and line
// count. Missing plans or tiers are fatal reference failures.
func (t *Tables) PlanPerLine(planID string, tier deal.QualificationTier, lines int) (int64, error) {
	plan, ok := t.Plans[planID]
	if !ok {
		return 0, fmt.Errorf("plan %q not in plan table: %w", planID, ErrReferenceData)
	}
	prices, ok := plan.PerLineByTier[tier]
	if !ok || len(prices) == 0 {
		return 0, fmt.Errorf("plan %q has no pricing for tier %q: %w", planID, tier, ErrReferenceData)
	}
	if lines < 1 {
		lines = 1
	}
	idx := lines - 1
	if idx >= len(prices) {
		idx = len(prices) - 1
	}
	return prices[idx], nil
}

// TradeInCredit returns the credit for the given current-phone key, or 0 when
// the key is unknown or marks no trade-in. Unknown trade-in keys are a
// recovered condition, never an error.
func (t *Tables) TradeInCredit(currentPhone string) int64 {
	if currentPhone == "" || currentPhone == deal.NoTrade {
		return 0
	}
	return t.TradeInValues[currentPhone]
}
