package scenario

import (
	"fmt"
	"time"

	"github.com/dealwise/quote-api/internal/deal"
	"github.com/dealwise/quote-api/internal/pricing"
	"github.com/dealwise/quote-api/internal/promo"
	"github.com/dealwise/quote-api/internal/refdata"
)

// Builder produces one fully priced scenario for a customer configuration.
// Implementations must be pure: identical inputs yield identical results.
type Builder interface {
	Strategy() Strategy
	Name() string
	Build(cfg deal.CustomerConfiguration, tables *refdata.Tables, params Params, now time.Time) (Result, error)
}

// Builders returns the four scenario builders in their canonical order. The
// order doubles as the tie-break for equally ranked scenarios.
func Builders() []Builder {
	return []Builder{
		tradeInAllBuilder{},
		keepAndSwitchBuilder{},
		selectiveTradeBuilder{},
		bundleMaxBuilder{},
	}
}

// devicePolicy prices one device for a strategy and says whether the line is
// treated as a trade-in.
type devicePolicy func(d deal.Device) (cost pricing.Money, tradedIn bool, err error)

// assembleInput collects the per-strategy knobs the shared skeleton needs.
type assembleInput struct {
	strategy        Strategy
	name            string
	policy          devicePolicy
	freeLine        bool
	newCustomerBps  int32
	strategyCredits func(keptLines int, params Params) pricing.Money
}

// assemble runs the common scenario skeleton: price devices per the policy,
// price the plan, accessories, insurance, and taxes, evaluate promotions, and
// fold everything into a Result. Device lookup failures degrade to a zero
// priced, flagged line item; only reference-table failures propagate.
func assemble(cfg deal.CustomerConfiguration, tables *refdata.Tables, params Params, now time.Time, in assembleInput) (Result, error) {
	perLine, err := tables.PlanPerLine(cfg.PlanID, cfg.Tier, cfg.Lines)
	if err != nil {
		return Result{}, err
	}
	plan := tables.Plans[cfg.PlanID]

	items := make([]LineItem, 0, len(cfg.Devices)+5)
	var deviceUpfront, tradeInValue pricing.Money
	keptLines := 0
	tradeInLines := 0
	for i, d := range cfg.Devices {
		label := fmt.Sprintf("Line %d: %s %s", i+1, d.NewPhone, d.Storage)
		cost, tradedIn, perr := in.policy(d)
		if perr != nil {
			items = append(items, LineItem{Label: label + " (device not found)", DeviceNotFound: true})
			continue
		}
		if tradedIn {
			tradeInLines++
			tradeInValue += tables.TradeInCredit(d.CurrentPhone)
		} else {
			keptLines++
		}
		deviceUpfront += cost
		items = append(items, LineItem{
			Label:           label,
			Upfront:         cost,
			FinancedMonthly: pricing.MonthlyPayment(cost, params.FinancingTermMonths),
		})
	}

	billedLines := cfg.Lines
	if in.freeLine && plan.FreeLineMinLineCount > 0 && cfg.Lines >= plan.FreeLineMinLineCount {
		billedLines--
		items = append(items, LineItem{Label: "Free voice line"})
	}
	planMonthly := perLine * pricing.Money(billedLines)
	var autopay pricing.Money
	if cfg.Autopay {
		autopay = plan.AutopayDiscountLine * pricing.Money(cfg.Lines)
	}
	var bundleDiscount pricing.Money
	if in.newCustomerBps > 0 && cfg.NewCustomer && cfg.Lines >= 2 {
		bundleDiscount = (planMonthly * pricing.Money(in.newCustomerBps)) / 10000
	}
	planNet := planMonthly - autopay - bundleDiscount
	if planNet < 0 {
		planNet = 0
	}
	items = append(items, LineItem{
		Label:   fmt.Sprintf("%s plan, %d lines", plan.Name, cfg.Lines),
		Monthly: planNet,
	})

	accessories := pricing.AccessoryLineCost(cfg.Accessories, cfg.Lines, tables.Accessories)
	if accessories.Total > 0 {
		items = append(items, LineItem{Label: "Accessory lines", Monthly: accessories.Total})
	}
	insurance := pricing.InsuranceCost(cfg.Devices, tables)
	if insurance > 0 {
		items = append(items, LineItem{Label: "Device protection", Monthly: insurance})
	}

	service := planNet + accessories.Total
	taxes := pricing.ServiceTaxesAndFees(service, cfg.Lines, tables.Taxes)
	items = append(items, LineItem{Label: "Taxes and fees", Monthly: taxes.Total})

	promoResult := promo.Evaluate(promo.Draft{
		Strategy:          string(in.strategy),
		Lines:             cfg.Lines,
		PlanID:            cfg.PlanID,
		MonthlyService:    service,
		TotalTradeInValue: tradeInValue,
		TradeInLines:      tradeInLines,
	}, cfg, tables.Promotions, now)

	monthly := service + insurance + taxes.Total - promoResult.MonthlyCredit
	if monthly < 0 {
		monthly = 0
	}
	upfront := deviceUpfront - promoResult.OnceCredit
	if upfront < 0 {
		upfront = 0
	}

	var credits pricing.Money
	if in.strategyCredits != nil {
		credits = in.strategyCredits(keptLines, params)
	}
	total24 := monthly*24 + upfront - credits
	markup := params.Markup(in.strategy)
	competitorMonthly := monthly + markup
	savings := competitorMonthly*24 + credits - total24

	return Result{
		Name:              in.name,
		Strategy:          in.strategy,
		LineItems:         items,
		MonthlyTotal:      monthly,
		UpfrontCost:       upfront,
		Total24Month:      total24,
		TotalSavings:      savings,
		AppliedPromotions: promoResult.Descriptions(),
	}, nil
}
