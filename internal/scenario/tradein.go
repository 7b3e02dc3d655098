package scenario

import (
	"time"

	"github.com/dealwise/quote-api/internal/deal"
	"github.com/dealwise/quote-api/internal/pricing"
	"github.com/dealwise/quote-api/internal/refdata"
)

// tradeInAllBuilder trades every device in. BOGO-style promotions attach via
// the promotion table when a second device on a qualifying plan is present.
type tradeInAllBuilder struct{}

func (tradeInAllBuilder) Strategy() Strategy { return TradeInAll }

func (tradeInAllBuilder) Name() string { return "Trade in everything" }

func (b tradeInAllBuilder) Build(cfg deal.CustomerConfiguration, tables *refdata.Tables, params Params, now time.Time) (Result, error) {
	return assemble(cfg, tables, params, now, assembleInput{
		strategy: TradeInAll,
		name:     b.Name(),
		policy: func(d deal.Device) (pricing.Money, bool, error) {
			cost, err := pricing.DeviceCostAfterTradeIn(d, tables)
			return cost, d.HasTradeIn(), err
		},
	})
}
