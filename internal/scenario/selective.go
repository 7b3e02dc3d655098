package scenario

import (
	"time"

	"github.com/dealwise/quote-api/internal/deal"
	"github.com/dealwise/quote-api/internal/pricing"
	"github.com/dealwise/quote-api/internal/refdata"
)

// selectiveTradeBuilder partitions devices with a greedy per-device rule:
// trade in any device whose credit exceeds the configured threshold, keep the
// rest as switch-eligible up to the line cap. This is a per-device
// classification, not a global assignment optimum: a device just under the
// threshold is never traded even when doing so would beat the reimbursement.
type selectiveTradeBuilder struct{}

func (selectiveTradeBuilder) Strategy() Strategy { return SelectiveTrade }

func (selectiveTradeBuilder) Name() string { return "Selective trade-in" }

func (b selectiveTradeBuilder) Build(cfg deal.CustomerConfiguration, tables *refdata.Tables, params Params, now time.Time) (Result, error) {
	return assemble(cfg, tables, params, now, assembleInput{
		strategy: SelectiveTrade,
		name:     b.Name(),
		policy: func(d deal.Device) (pricing.Money, bool, error) {
			if tables.TradeInCredit(d.CurrentPhone) > params.SelectiveTradeThreshold {
				cost, err := pricing.DeviceCostAfterTradeIn(d, tables)
				return cost, true, err
			}
			cost, err := pricing.ListPrice(d, tables)
			return cost, false, err
		},
		strategyCredits: func(keptLines int, p Params) pricing.Money {
			return switchCredits(keptLines, p)
		},
	})
}
