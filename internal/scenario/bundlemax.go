package scenario

import (
	"time"

	"github.com/dealwise/quote-api/internal/deal"
	"github.com/dealwise/quote-api/internal/pricing"
	"github.com/dealwise/quote-api/internal/refdata"
)

// bundleMaxBuilder leans on line-count economics: a free voice line once the
// plan's threshold is met, free home internet at two or more lines, and an
// extra percentage discount for new customers with multiple lines. Devices
// trade in wherever a credit exists.
type bundleMaxBuilder struct{}

func (bundleMaxBuilder) Strategy() Strategy { return BundleMax }

func (bundleMaxBuilder) Name() string { return "Bundle maximizer" }

func (b bundleMaxBuilder) Build(cfg deal.CustomerConfiguration, tables *refdata.Tables, params Params, now time.Time) (Result, error) {
	return assemble(cfg, tables, params, now, assembleInput{
		strategy:       BundleMax,
		name:           b.Name(),
		freeLine:       true,
		newCustomerBps: params.NewCustomerBundleBps,
		policy: func(d deal.Device) (pricing.Money, bool, error) {
			cost, err := pricing.DeviceCostAfterTradeIn(d, tables)
			return cost, d.HasTradeIn(), err
		},
	})
}
