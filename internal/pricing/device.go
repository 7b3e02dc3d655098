package pricing

import (
	"errors"
	"fmt"

	"github.com/dealwise/quote-api/internal/deal"
	"github.com/dealwise/quote-api/internal/refdata"
)

// ErrDeviceNotFound is returned when a new-phone key or storage variant is
// absent from the catalog. Scenario builders recover from it by pricing the
// line at zero and flagging it; they never abort a scenario over it.
var ErrDeviceNotFound = errors.New("device not found")

// ListPrice resolves the catalog list price for a device's storage variant.
func ListPrice(d deal.Device, tables *refdata.Tables) (Money, error) {
	entry, ok := tables.Devices[d.NewPhone]
	if !ok {
		return 0, fmt.Errorf("model %q: %w", d.NewPhone, ErrDeviceNotFound)
	}
	price, ok := entry.Storage[d.Storage]
	if !ok {
		return 0, fmt.Errorf("model %q storage %q: %w", d.NewPhone, d.Storage, ErrDeviceNotFound)
	}
	return price, nil
}

// DeviceCostAfterTradeIn prices a device at list minus its trade-in credit,
// floored at zero. An unknown current-phone key yields a zero credit rather
// than an error; only an unknown new phone fails, with ErrDeviceNotFound.
func DeviceCostAfterTradeIn(d deal.Device, tables *refdata.Tables) (Money, error) {
	list, err := ListPrice(d, tables)
	if err != nil {
		return 0, err
	}
	credit := tables.TradeInCredit(d.CurrentPhone)
	if credit >= list {
		return 0, nil
	}
	return list - credit, nil
}
