package pricing

import (
	"errors"
	"testing"

	"github.com/dealwise/quote-api/internal/deal"
	"github.com/dealwise/quote-api/internal/refdata"
)

func testTables() *refdata.Tables {
	return &refdata.Tables{
		Devices: map[string]refdata.DeviceEntry{
			"iPhone_17_Pro": {
				Brand:   "Apple",
				Model:   "iPhone 17 Pro",
				Storage: map[string]int64{"256GB": 109999, "512GB": 129999},
			},
			"Pixel_11": {
				Brand:   "Google",
				Model:   "Pixel 11",
				Storage: map[string]int64{"128GB": 69899},
			},
		},
		TradeInValues: map[string]int64{
			"iPhone_15_Pro": 55000,
			"older_device":  5000,
			"golden_relic":  200000,
		},
	}
}

func TestListPriceUnknownModel(t *testing.T) {
	tables := testTables()
	_, err := ListPrice(deal.Device{NewPhone: "Nokia_3310", Storage: "256GB"}, tables)
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Fatalf("expected ErrDeviceNotFound, got %v", err)
	}
	_, err = ListPrice(deal.Device{NewPhone: "iPhone_17_Pro", Storage: "2TB"}, tables)
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Fatalf("expected ErrDeviceNotFound for unknown storage, got %v", err)
	}
}

func TestDeviceCostAfterTradeIn(t *testing.T) {
	tables := testTables()
	cost, err := DeviceCostAfterTradeIn(deal.Device{
		CurrentPhone: "iPhone_15_Pro",
		NewPhone:     "iPhone_17_Pro",
		Storage:      "256GB",
	}, tables)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost != 54999 {
		t.Fatalf("expected 54999 after trade-in, got %d", cost)
	}
}

func TestDeviceCostUnknownTradeInYieldsZeroCredit(t *testing.T) {
	tables := testTables()
	cost, err := DeviceCostAfterTradeIn(deal.Device{
		CurrentPhone: "carrier_pigeon",
		NewPhone:     "iPhone_17_Pro",
		Storage:      "256GB",
	}, tables)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost != 109999 {
		t.Fatalf("expected full list price 109999, got %d", cost)
	}
}

func TestDeviceCostMonotonicInTradeInCredit(t *testing.T) {
	tables := testTables()
	d := deal.Device{NewPhone: "iPhone_17_Pro", Storage: "256GB"}

	d.CurrentPhone = "older_device"
	low, err := DeviceCostAfterTradeIn(d, tables)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d.CurrentPhone = "iPhone_15_Pro"
	high, err := DeviceCostAfterTradeIn(d, tables)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high > low {
		t.Fatalf("a larger credit must not raise the cost: %d > %d", high, low)
	}
}

func TestDeviceCostCreditExceedsListFloorsAtZero(t *testing.T) {
	tables := testTables()
	cost, err := DeviceCostAfterTradeIn(deal.Device{
		CurrentPhone: "golden_relic",
		NewPhone:     "Pixel_11",
		Storage:      "128GB",
	}, tables)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost != 0 {
		t.Fatalf("expected 0 cost, got %d", cost)
	}
}
