package optimizer

import (
	"reflect"
	"testing"
	"time"

	"github.com/dealwise/quote-api/internal/deal"
	"github.com/dealwise/quote-api/internal/refdata"
	"github.com/dealwise/quote-api/internal/scenario"
)

var march = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func sampleConfig() deal.CustomerConfiguration {
	return deal.CustomerConfiguration{
		Lines:  3,
		PlanID: "GO5G_Next",
		Devices: []deal.Device{
			{CurrentPhone: "iPhone_15_Pro_Max", NewPhone: "iPhone_17_Pro_Max", Storage: "512GB"},
			{CurrentPhone: "iPhone_14", NewPhone: "iPhone_17_Pro", Storage: "256GB"},
			{CurrentPhone: deal.NoTrade, NewPhone: "iPhone_17_Pro", Storage: "256GB"},
		},
	}
}

func TestCalculateAllScenariosReturnsAllFour(t *testing.T) {
	tables := refdata.MustLoad()
	results, err := CalculateAllScenarios(sampleConfig(), tables, scenario.DefaultParams(), march)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 scenarios, got %d", len(results))
	}
	seen := map[scenario.Strategy]bool{}
	for _, r := range results {
		seen[r.Strategy] = true
	}
	for _, s := range []scenario.Strategy{scenario.TradeInAll, scenario.KeepAndSwitch, scenario.SelectiveTrade, scenario.BundleMax} {
		if !seen[s] {
			t.Fatalf("missing strategy %s", s)
		}
	}
	for _, r := range results {
		if r.MonthlyTotal < 0 || r.UpfrontCost < 0 {
			t.Fatalf("scenario %s has negative totals: %d monthly, %d upfront",
				r.Strategy, r.MonthlyTotal, r.UpfrontCost)
		}
	}
}

func TestCalculateAllScenariosSortedBySavings(t *testing.T) {
	tables := refdata.MustLoad()
	results, err := CalculateAllScenarios(sampleConfig(), tables, scenario.DefaultParams(), march)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].TotalSavings < results[i].TotalSavings {
			t.Fatalf("scenario %d outranks %d: %d < %d",
				i, i-1, results[i-1].TotalSavings, results[i].TotalSavings)
		}
	}
}

func TestCalculateAllScenariosIdempotent(t *testing.T) {
	tables := refdata.MustLoad()
	params := scenario.DefaultParams()
	first, err := CalculateAllScenarios(sampleConfig(), tables, params, march)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := CalculateAllScenarios(sampleConfig(), tables, params, march)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs must yield identical scenario lists")
	}
}

func TestCalculateAllScenariosNormalizesInput(t *testing.T) {
	tables := refdata.MustLoad()
	cfg := sampleConfig()
	cfg.Lines = 0
	cfg.Tier = ""
	if _, err := CalculateAllScenarios(cfg, tables, scenario.DefaultParams(), march); err != nil {
		t.Fatalf("normalization should make this computable: %v", err)
	}
}

func TestCalculateAllScenariosFatalErrorReturnsNothing(t *testing.T) {
	tables := refdata.MustLoad()
	cfg := sampleConfig()
	cfg.PlanID = "Magenta_Classic"
	results, err := CalculateAllScenarios(cfg, tables, scenario.DefaultParams(), march)
	if err == nil {
		t.Fatal("expected an error for an unknown plan")
	}
	if results != nil {
		t.Fatalf("expected no partial results, got %d", len(results))
	}
}

func TestBest(t *testing.T) {
	if _, ok := Best(nil); ok {
		t.Fatal("expected no best scenario for an empty list")
	}
	tables := refdata.MustLoad()
	results, err := CalculateAllScenarios(sampleConfig(), tables, scenario.DefaultParams(), march)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	best, ok := Best(results)
	if !ok {
		t.Fatal("expected a best scenario")
	}
	if best.TotalSavings != results[0].TotalSavings {
		t.Fatal("best must be the top-ranked scenario")
	}
}
