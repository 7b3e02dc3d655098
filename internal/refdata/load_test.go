package refdata

import (
	"errors"
	"testing"

	"github.com/dealwise/quote-api/internal/deal"
)

func TestLoadEmbeddedSnapshot(t *testing.T) {
	tables, err := Load()
	if err != nil {
		t.Fatalf("embedded snapshot must validate: %v", err)
	}
	if len(tables.Devices) == 0 || len(tables.Plans) == 0 || len(tables.Promotions) == 0 {
		t.Fatal("embedded snapshot is missing tables")
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	if !errors.Is(err, ErrReferenceData) {
		t.Fatalf("expected ErrReferenceData, got %v", err)
	}
}

func TestParseRejectsMissingStandardTier(t *testing.T) {
	raw := []byte(`{
		"devices": {"Pixel_11": {"brand": "Google", "model": "Pixel 11", "storage": {"128GB": 69899}}},
		"plans": {"Basic": {"name": "Basic", "perLineByTier": {"military": [5000]}}},
		"accessories": {"watchLine": 1200, "tabletByTier": {"basic": 2000, "unlimited": 3000}, "homeInternet": 5500},
		"insuranceTiers": [{"upTo": 0, "monthly": 1800}],
		"taxesAndFees": {"taxBps": 1400, "regulatoryPerLine": 350, "surchargePerLine": 199}
	}`)
	_, err := Parse(raw)
	if !errors.Is(err, ErrReferenceData) {
		t.Fatalf("expected ErrReferenceData, got %v", err)
	}
}

func TestParseRejectsUnknownPromotionKind(t *testing.T) {
	raw := []byte(`{
		"devices": {"Pixel_11": {"brand": "Google", "model": "Pixel 11", "storage": {"128GB": 69899}}},
		"plans": {"Basic": {"name": "Basic", "perLineByTier": {"standard": [5000]}}},
		"promotions": [{"name": "mystery", "kind": "raffle", "value": 100}],
		"accessories": {"watchLine": 1200, "tabletByTier": {"basic": 2000, "unlimited": 3000}, "homeInternet": 5500},
		"insuranceTiers": [{"upTo": 0, "monthly": 1800}],
		"taxesAndFees": {"taxBps": 1400, "regulatoryPerLine": 350, "surchargePerLine": 199}
	}`)
	_, err := Parse(raw)
	if !errors.Is(err, ErrReferenceData) {
		t.Fatalf("expected ErrReferenceData, got %v", err)
	}
}

func TestPlanPerLineClampsLineCount(t *testing.T) {
	tables := MustLoad()
	atCap, err := tables.PlanPerLine("GO5G_Next", deal.TierStandard, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	beyond, err := tables.PlanPerLine("GO5G_Next", deal.TierStandard, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if atCap != beyond {
		t.Fatalf("line counts beyond the table must clamp: %d vs %d", atCap, beyond)
	}
}

func TestPlanPerLineUnknownPlan(t *testing.T) {
	tables := MustLoad()
	_, err := tables.PlanPerLine("Magenta_Classic", deal.TierStandard, 1)
	if !errors.Is(err, ErrReferenceData) {
		t.Fatalf("expected ErrReferenceData, got %v", err)
	}
}

func TestTradeInCredit(t *testing.T) {
	tables := MustLoad()
	if got := tables.TradeInCredit(deal.NoTrade); got != 0 {
		t.Fatalf("no_trade must earn 0, got %d", got)
	}
	if got := tables.TradeInCredit(""); got != 0 {
		t.Fatalf("empty key must earn 0, got %d", got)
	}
	if got := tables.TradeInCredit("carrier_pigeon"); got != 0 {
		t.Fatalf("unknown key must earn 0, got %d", got)
	}
	if got := tables.TradeInCredit("iPhone_16_Pro_Max"); got != 80000 {
		t.Fatalf("expected 80000 credit, got %d", got)
	}
}
