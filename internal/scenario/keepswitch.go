package scenario

import (
	"time"

	"github.com/dealwise/quote-api/internal/deal"
	"github.com/dealwise/quote-api/internal/pricing"
	"github.com/dealwise/quote-api/internal/refdata"
)

// keepAndSwitchBuilder prices every device at full retail and accrues
// per-line switcher reimbursements plus port-in credits instead of trade-in
// value. The credits model bill-credit amortization: they reduce the 24-month
// total, not the upfront cost.
type keepAndSwitchBuilder struct{}

func (keepAndSwitchBuilder) Strategy() Strategy { return KeepAndSwitch }

func (keepAndSwitchBuilder) Name() string { return "Keep & Switch" }

func (b keepAndSwitchBuilder) Build(cfg deal.CustomerConfiguration, tables *refdata.Tables, params Params, now time.Time) (Result, error) {
	return assemble(cfg, tables, params, now, assembleInput{
		strategy: KeepAndSwitch,
		name:     b.Name(),
		policy: func(d deal.Device) (pricing.Money, bool, error) {
			cost, err := pricing.ListPrice(d, tables)
			return cost, false, err
		},
		strategyCredits: func(keptLines int, p Params) pricing.Money {
			return switchCredits(keptLines, p) + portInCredits(keptLines, p)
		},
	})
}

// switchCredits caps reimbursement at a per-line maximum across a bounded
// number of lines.
func switchCredits(keptLines int, p Params) pricing.Money {
	lines := keptLines
	if p.KeepSwitchMaxLines > 0 && lines > p.KeepSwitchMaxLines {
		lines = p.KeepSwitchMaxLines
	}
	return pricing.Money(lines) * p.KeepSwitchMaxPerLine
}

// portInCredits grants the flat port-in credit for a bounded number of lines.
func portInCredits(keptLines int, p Params) pricing.Money {
	lines := keptLines
	if p.PortInMaxLines > 0 && lines > p.PortInMaxLines {
		lines = p.PortInMaxLines
	}
	return pricing.Money(lines) * p.PortInCreditPerLine
}
