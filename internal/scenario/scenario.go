package scenario

import "github.com/dealwise/quote-api/internal/pricing"

// Strategy tags a scenario's trade-in policy.
type Strategy string

const (
	TradeInAll     Strategy = "trade_in_all"
	KeepAndSwitch  Strategy = "keep_and_switch"
	SelectiveTrade Strategy = "selective_trade"
	BundleMax      Strategy = "bundle_max"
)

// LineItem is one priced component of a scenario. Device lines carry the
// upfront cost plus the equivalent 0% installment for display; service lines
// carry a monthly amount. DeviceNotFound marks a device reference that could
// not be resolved against the catalog and was priced at zero; callers that
// validate input up front should treat the flag as a hard input error.
type LineItem struct {
	Label           string        `json:"label"`
	Monthly         pricing.Money `json:"monthly"`
	Upfront         pricing.Money `json:"upfront"`
	FinancedMonthly pricing.Money `json:"financedMonthly,omitempty"`
	DeviceNotFound  bool          `json:"deviceNotFound,omitempty"`
}

// Result is one fully priced scenario. It is created fresh on every
// optimization run and never mutated after construction.
type Result struct {
	Name              string        `json:"name"`
	Strategy          Strategy      `json:"strategy"`
	LineItems         []LineItem    `json:"lineItems"`
	MonthlyTotal      pricing.Money `json:"monthlyTotal"`
	UpfrontCost       pricing.Money `json:"upfrontCost"`
	Total24Month      pricing.Money `json:"total24Month"`
	TotalSavings      pricing.Money `json:"totalSavings"`
	AppliedPromotions []string      `json:"appliedPromotions"`
}

// HasUnresolvedDevice reports whether any line item was priced at zero
// because its device reference was missing from the catalog.
func (r Result) HasUnresolvedDevice() bool {
	for _, item := range r.LineItems {
		if item.DeviceNotFound {
			return true
		}
	}
	return false
}
