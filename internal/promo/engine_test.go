package promo

import (
	"reflect"
	"testing"
	"time"

	"github.com/dealwise/quote-api/internal/deal"
	"github.com/dealwise/quote-api/internal/refdata"
)

var march = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func promoTable() []refdata.PromotionDefinition {
	return []refdata.PromotionDefinition{
		{
			Name:         "bogo",
			Label:        "Buy one get one",
			Kind:         refdata.PromotionFlat,
			Value:        70000,
			Months:       24,
			MinNewLines:  2,
			RequiredPlan: "GO5G_Next",
			Strategies:   []string{"trade_in_all", "bundle_max"},
		},
		{
			Name:            "boost",
			Label:           "Trade-in value boost",
			Kind:            refdata.PromotionFlat,
			Value:           30000,
			Months:          24,
			MinTradeInValue: 40000,
			Strategies:      []string{"trade_in_all", "selective_trade"},
		},
		{
			Name:            "welcome",
			Label:           "Switcher welcome credit",
			Kind:            refdata.PromotionFlat,
			Value:           10000,
			NewCustomerOnly: true,
			RequireSwitcher: true,
		},
		{
			Name:        "per_line",
			Label:       "Multi-line discount",
			Kind:        refdata.PromotionPerLine,
			Value:       500,
			MinNewLines: 3,
		},
		{
			Name:            "loyalty",
			Label:           "Loyalty discount",
			Kind:            refdata.PromotionPercent,
			PercentBps:      500,
			MinLoyaltyYears: 5,
		},
		{
			Name:           "holiday",
			Label:          "Holiday credit",
			Kind:           refdata.PromotionFlat,
			Value:          15000,
			SeasonalMonths: []time.Month{time.November, time.December},
		},
	}
}

func TestEvaluateStacksInTableOrder(t *testing.T) {
	draft := Draft{
		Strategy:          "trade_in_all",
		Lines:             3,
		PlanID:            "GO5G_Next",
		MonthlyService:    22200,
		TotalTradeInValue: 95000,
	}
	cfg := deal.CustomerConfiguration{Lines: 3, LoyaltyYears: 6}
	result := Evaluate(draft, cfg, promoTable(), march)

	names := make([]string, 0, len(result.Applied))
	for _, a := range result.Applied {
		names = append(names, a.Name)
	}
	want := []string{"bogo", "boost", "per_line", "loyalty"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected %v applied in order, got %v", want, names)
	}

	// bogo 70000/24 = 2917, boost 30000/24 = 1250, per_line 500*3 = 1500,
	// loyalty 5% of 22200 = 1110.
	if result.MonthlyCredit != 2917+1250+1500+1110 {
		t.Fatalf("expected 6777 monthly credit, got %d", result.MonthlyCredit)
	}
	if result.OnceCredit != 0 {
		t.Fatalf("expected no one-time credit, got %d", result.OnceCredit)
	}
	if result.Total24MonthSavings != result.MonthlyCredit*24 {
		t.Fatalf("24-month savings disagrees with monthly credit: %d", result.Total24MonthSavings)
	}
}

func TestEvaluateStrategyGate(t *testing.T) {
	draft := Draft{Strategy: "keep_and_switch", Lines: 3, PlanID: "GO5G_Next", TotalTradeInValue: 95000}
	result := Evaluate(draft, deal.CustomerConfiguration{Lines: 3}, promoTable(), march)
	for _, a := range result.Applied {
		if a.Name == "bogo" || a.Name == "boost" {
			t.Fatalf("promotion %q must not apply to keep_and_switch", a.Name)
		}
	}
}

func TestEvaluateMinTradeInValue(t *testing.T) {
	draft := Draft{Strategy: "trade_in_all", Lines: 1, TotalTradeInValue: 39999}
	result := Evaluate(draft, deal.CustomerConfiguration{Lines: 1}, promoTable(), march)
	for _, a := range result.Applied {
		if a.Name == "boost" {
			t.Fatal("boost must not apply below the trade-in floor")
		}
	}
}

func TestEvaluateSwitcherWelcomeIsOneTime(t *testing.T) {
	draft := Draft{Strategy: "trade_in_all", Lines: 1}
	cfg := deal.CustomerConfiguration{Lines: 1, NewCustomer: true, SwitcherCarrier: "verizon"}
	result := Evaluate(draft, cfg, promoTable(), march)
	if result.OnceCredit != 10000 {
		t.Fatalf("expected 10000 one-time credit, got %d", result.OnceCredit)
	}
	if result.MonthlyCredit != 0 {
		t.Fatalf("expected no monthly credit, got %d", result.MonthlyCredit)
	}
}

func TestEvaluateSeasonalWindow(t *testing.T) {
	draft := Draft{Strategy: "trade_in_all", Lines: 1}
	cfg := deal.CustomerConfiguration{Lines: 1}

	december := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)
	inWindow := Evaluate(draft, cfg, promoTable(), december)
	if inWindow.OnceCredit != 15000 {
		t.Fatalf("expected holiday credit in December, got %d", inWindow.OnceCredit)
	}

	outOfWindow := Evaluate(draft, cfg, promoTable(), march)
	if outOfWindow.OnceCredit != 0 {
		t.Fatalf("expected no holiday credit in March, got %d", outOfWindow.OnceCredit)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	draft := Draft{
		Strategy:          "bundle_max",
		Lines:             4,
		PlanID:            "GO5G_Next",
		MonthlyService:    26000,
		TotalTradeInValue: 120000,
	}
	cfg := deal.CustomerConfiguration{Lines: 4, NewCustomer: true, SwitcherCarrier: "att", LoyaltyYears: 10}
	first := Evaluate(draft, cfg, promoTable(), march)
	second := Evaluate(draft, cfg, promoTable(), march)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs must yield identical results")
	}
}
