package scenario

import (
	"errors"
	"testing"
	"time"

	"github.com/dealwise/quote-api/internal/deal"
	"github.com/dealwise/quote-api/internal/refdata"
)

// march keeps seasonal promotions out of the baseline expectations.
var march = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func familyConfig() deal.CustomerConfiguration {
	return deal.CustomerConfiguration{
		Lines:  3,
		PlanID: "GO5G_Next",
		Tier:   deal.TierStandard,
		Devices: []deal.Device{
			{CurrentPhone: "iPhone_15_Pro_Max", NewPhone: "iPhone_17_Pro_Max", Storage: "512GB"},
			{CurrentPhone: "iPhone_14", NewPhone: "iPhone_17_Pro", Storage: "256GB"},
			{CurrentPhone: deal.NoTrade, NewPhone: "iPhone_17_Pro", Storage: "256GB"},
		},
	}
}

func TestKeepAndSwitchPricing(t *testing.T) {
	tables := refdata.MustLoad()
	result, err := keepAndSwitchBuilder{}.Build(familyConfig(), tables, DefaultParams(), march)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every device at full retail: 139999 + 109999 + 109999.
	if result.UpfrontCost != 359997 {
		t.Fatalf("expected 359997 upfront, got %d", result.UpfrontCost)
	}
	// Plan 3 lines at 7400 = 22200, taxes and fees 4755, no promotions apply.
	if result.MonthlyTotal != 26955 {
		t.Fatalf("expected 26955 monthly, got %d", result.MonthlyTotal)
	}
	// Switch credits 3x80000 plus port-in credits 3x20000 reduce the total.
	if result.Total24Month != 26955*24+359997-300000 {
		t.Fatalf("expected 706917 over 24 months, got %d", result.Total24Month)
	}
	if result.TotalSavings != 312003 {
		t.Fatalf("expected 312003 savings, got %d", result.TotalSavings)
	}
	if len(result.AppliedPromotions) != 0 {
		t.Fatalf("expected no promotions, got %v", result.AppliedPromotions)
	}
}

func TestTradeInAllPricing(t *testing.T) {
	tables := refdata.MustLoad()
	result, err := tradeInAllBuilder{}.Build(familyConfig(), tables, DefaultParams(), march)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 139999-65000 + 109999-30000 + 109999 (no_trade keeps full price).
	if result.UpfrontCost != 264997 {
		t.Fatalf("expected 264997 upfront, got %d", result.UpfrontCost)
	}
	// BOGO (2917/mo) and trade-in boost (1250/mo) both apply.
	if len(result.AppliedPromotions) != 2 {
		t.Fatalf("expected 2 promotions, got %v", result.AppliedPromotions)
	}
	if result.MonthlyTotal != 22200+4755-4167 {
		t.Fatalf("expected 22788 monthly, got %d", result.MonthlyTotal)
	}
}

func TestSelectiveTradePartition(t *testing.T) {
	tables := refdata.MustLoad()
	result, err := selectiveTradeBuilder{}.Build(familyConfig(), tables, DefaultParams(), march)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only the 65000 credit clears the 40000 threshold; the other two lines
	// stay at full retail and earn switch credits instead.
	if result.UpfrontCost != 74999+109999+109999 {
		t.Fatalf("expected 294997 upfront, got %d", result.UpfrontCost)
	}
	if result.Total24Month != 25705*24+294997-160000 {
		t.Fatalf("expected 751917 over 24 months, got %d", result.Total24Month)
	}
}

func TestBundleMaxFreeLine(t *testing.T) {
	tables := refdata.MustLoad()
	result, err := bundleMaxBuilder{}.Build(familyConfig(), tables, DefaultParams(), march)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	foundFreeLine := false
	for _, item := range result.LineItems {
		if item.Label == "Free voice line" {
			foundFreeLine = true
		}
	}
	if !foundFreeLine {
		t.Fatal("expected a free voice line item at 3 lines on GO5G Next")
	}
	// Plan bills 2 of 3 lines: 14800 service, 3719 taxes, BOGO 2917 and
	// multi-line discount 1500 as credits.
	if result.MonthlyTotal != 14800+3719-4417 {
		t.Fatalf("expected 14102 monthly, got %d", result.MonthlyTotal)
	}
}

func TestTradeInSavingsMonotonicInCredit(t *testing.T) {
	tables := refdata.MustLoad()

	low := familyConfig()
	low.Devices[1].CurrentPhone = "iPhone_13" // 20000 credit

	high := familyConfig()
	high.Devices[1].CurrentPhone = "iPhone_15_Pro" // 55000 credit

	lowResult, err := tradeInAllBuilder{}.Build(low, tables, DefaultParams(), march)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	highResult, err := tradeInAllBuilder{}.Build(high, tables, DefaultParams(), march)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if highResult.TotalSavings < lowResult.TotalSavings {
		t.Fatalf("a larger trade-in credit must not shrink savings: %d < %d",
			highResult.TotalSavings, lowResult.TotalSavings)
	}
}

func TestUnknownDeviceDegradesToFlaggedLine(t *testing.T) {
	tables := refdata.MustLoad()
	cfg := familyConfig()
	cfg.Devices[2].NewPhone = "Fire_Phone"

	result, err := tradeInAllBuilder{}.Build(cfg, tables, DefaultParams(), march)
	if err != nil {
		t.Fatalf("device lookup failures must not abort the scenario: %v", err)
	}
	if !result.HasUnresolvedDevice() {
		t.Fatal("expected an unresolved-device flag")
	}
	flagged := 0
	for _, item := range result.LineItems {
		if item.DeviceNotFound {
			flagged++
			if item.Upfront != 0 || item.FinancedMonthly != 0 {
				t.Fatalf("flagged line must be priced at zero, got %+v", item)
			}
		}
	}
	if flagged != 1 {
		t.Fatalf("expected exactly one flagged line, got %d", flagged)
	}
}

func TestUnknownPlanIsFatal(t *testing.T) {
	tables := refdata.MustLoad()
	cfg := familyConfig()
	cfg.PlanID = "Magenta_Classic"

	_, err := keepAndSwitchBuilder{}.Build(cfg, tables, DefaultParams(), march)
	if !errors.Is(err, refdata.ErrReferenceData) {
		t.Fatalf("expected ErrReferenceData, got %v", err)
	}
}

func TestAutopayDiscountAppliesPerLine(t *testing.T) {
	tables := refdata.MustLoad()
	cfg := familyConfig()
	cfg.Autopay = true

	with, err := keepAndSwitchBuilder{}.Build(cfg, tables, DefaultParams(), march)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	without, err := keepAndSwitchBuilder{}.Build(familyConfig(), tables, DefaultParams(), march)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if with.MonthlyTotal >= without.MonthlyTotal {
		t.Fatalf("autopay must lower the bill: %d vs %d", with.MonthlyTotal, without.MonthlyTotal)
	}
}
