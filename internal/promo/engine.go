package promo

import (
	"fmt"
	"time"

	"github.com/dealwise/quote-api/internal/deal"
	"github.com/dealwise/quote-api/internal/pricing"
	"github.com/dealwise/quote-api/internal/refdata"
)

// Draft is the scenario-in-progress snapshot the evaluator tests promotions
// against. Builders assemble it before promotions are applied.
type Draft struct {
	Strategy          string
	Lines             int
	PlanID            string
	MonthlyService    pricing.Money
	TotalTradeInValue pricing.Money
	TradeInLines      int
}

// Applied records one promotion that matched, with its monetary effect split
// into a recurring monthly credit and a one-time credit.
type Applied struct {
	Name        string
	Description string
	Monthly     pricing.Money
	Once        pricing.Money
}

// Result aggregates every promotion applied to a draft.
type Result struct {
	Applied             []Applied
	MonthlyCredit       pricing.Money
	OnceCredit          pricing.Money
	TotalMonthlySavings pricing.Money
	Total24MonthSavings pricing.Money
}

// Descriptions returns the human-readable applied-promotion lines in
// application order.
func (r Result) Descriptions() []string {
	out := make([]string, 0, len(r.Applied))
	for _, a := range r.Applied {
		out = append(out, a.Description)
	}
	return out
}

// Evaluate walks the promotion table in definition order and applies every
// definition whose conditions hold. Promotions stack, but no definition
// applies more than once per draft. The only clock dependency is the seasonal
// calendar-month window, driven by the injected now.
func Evaluate(draft Draft, cfg deal.CustomerConfiguration, table []refdata.PromotionDefinition, now time.Time) Result {
	var result Result
	for _, def := range table {
		if !applies(def, draft, cfg, now) {
			continue
		}
		applied := effect(def, draft)
		result.Applied = append(result.Applied, applied)
		result.MonthlyCredit += applied.Monthly
		result.OnceCredit += applied.Once
	}
	result.TotalMonthlySavings = result.MonthlyCredit
	result.Total24MonthSavings = result.MonthlyCredit*24 + result.OnceCredit
	return result
}

func applies(def refdata.PromotionDefinition, draft Draft, cfg deal.CustomerConfiguration, now time.Time) bool {
	if len(def.Strategies) > 0 && !containsString(def.Strategies, draft.Strategy) {
		return false
	}
	if def.MinNewLines > 0 && draft.Lines < def.MinNewLines {
		return false
	}
	if def.RequiredPlan != "" && def.RequiredPlan != draft.PlanID {
		return false
	}
	if def.MinTradeInValue > 0 && draft.TotalTradeInValue < def.MinTradeInValue {
		return false
	}
	if def.NewCustomerOnly && !cfg.NewCustomer {
		return false
	}
	if def.RequireSwitcher && cfg.SwitcherCarrier == "" {
		return false
	}
	if def.MinLoyaltyYears > 0 && cfg.LoyaltyYears < def.MinLoyaltyYears {
		return false
	}
	if len(def.SeasonalMonths) > 0 && !containsMonth(def.SeasonalMonths, now.Month()) {
		return false
	}
	return true
}

func effect(def refdata.PromotionDefinition, draft Draft) Applied {
	applied := Applied{Name: def.Name}
	switch def.Kind {
	case refdata.PromotionFlat:
		if def.Months > 0 {
			applied.Monthly = pricing.RoundHalfUpDiv(def.Value, int64(def.Months))
			applied.Description = fmt.Sprintf("%s: %s in bill credits over %d months",
				def.Label, pricing.FormatUSD(def.Value), def.Months)
		} else {
			applied.Once = def.Value
			applied.Description = fmt.Sprintf("%s: %s one-time credit",
				def.Label, pricing.FormatUSD(def.Value))
		}
	case refdata.PromotionPercent:
		applied.Monthly = (draft.MonthlyService * pricing.Money(def.PercentBps)) / 10000
		applied.Description = fmt.Sprintf("%s: %d%% off service (%s/mo)",
			def.Label, def.PercentBps/100, pricing.FormatUSD(applied.Monthly))
	case refdata.PromotionPerLine:
		applied.Monthly = def.Value * pricing.Money(draft.Lines)
		applied.Description = fmt.Sprintf("%s: %s/line across %d lines",
			def.Label, pricing.FormatUSD(def.Value), draft.Lines)
	}
	return applied
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func containsMonth(months []time.Month, target time.Month) bool {
	for _, m := range months {
		if m == target {
			return true
		}
	}
	return false
}
