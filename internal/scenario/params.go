package scenario

import "github.com/dealwise/quote-api/internal/pricing"

// Params carries the business constants the builders depend on. They are
// named and overridable rather than inlined so stakeholders can revisit them
// without a code change; the defaults mirror current promotion sheets.
type Params struct {
	// FinancingTermMonths is the 0% installment term used for the
	// per-device financed-monthly display amount.
	FinancingTermMonths int

	// SelectiveTradeThreshold is the trade-in credit above which the
	// selective-trade builder trades a device in instead of keeping it.
	SelectiveTradeThreshold pricing.Money
	// KeepSwitchMaxLines caps how many kept lines earn reimbursement.
	KeepSwitchMaxLines int
	// KeepSwitchMaxPerLine caps the reimbursement credit per kept line.
	KeepSwitchMaxPerLine pricing.Money
	// PortInCreditPerLine is the per-line port-in bill credit.
	PortInCreditPerLine pricing.Money
	// PortInMaxLines caps how many lines earn the port-in credit.
	PortInMaxLines int

	// NewCustomerBundleBps is the extra bundle-max percentage discount
	// (basis points off the plan price) for new customers with 2+ lines.
	NewCustomerBundleBps int32

	// Competitor markup constants used for the savings baseline. They
	// differ by strategy to reflect bundle attractiveness; the asymmetry
	// is carried over from the current promotion sheets as-is.
	MarkupTradeInAll     pricing.Money
	MarkupKeepAndSwitch  pricing.Money
	MarkupSelectiveTrade pricing.Money
	MarkupBundleMax      pricing.Money
}

// DefaultParams returns the documented defaults.
func DefaultParams() Params {
	return Params{
		FinancingTermMonths:     24,
		SelectiveTradeThreshold: 400_00,
		KeepSwitchMaxLines:      4,
		KeepSwitchMaxPerLine:    800_00,
		PortInCreditPerLine:     200_00,
		PortInMaxLines:          3,
		NewCustomerBundleBps:    1000,
		MarkupTradeInAll:        30_00,
		MarkupKeepAndSwitch:     30_00,
		MarkupSelectiveTrade:    30_00,
		MarkupBundleMax:         50_00,
	}
}

// Markup returns the competitor markup constant for a strategy.
func (p Params) Markup(s Strategy) pricing.Money {
	switch s {
	case TradeInAll:
		return p.MarkupTradeInAll
	case KeepAndSwitch:
		return p.MarkupKeepAndSwitch
	case SelectiveTrade:
		return p.MarkupSelectiveTrade
	case BundleMax:
		return p.MarkupBundleMax
	default:
		return 0
	}
}
