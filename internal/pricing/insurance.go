package pricing

import (
	"github.com/dealwise/quote-api/internal/deal"
	"github.com/dealwise/quote-api/internal/refdata"
)

// InsuranceCost sums monthly protection charges across insured devices. The
// rate is a flat tier keyed off the device's retail price band. Devices that
// cannot be resolved against the catalog contribute nothing.
func InsuranceCost(devices []deal.Device, tables *refdata.Tables) Money {
	var total Money
	for _, d := range devices {
		if !d.Insurance {
			continue
		}
		retail, err := ListPrice(d, tables)
		if err != nil {
			continue
		}
		total += insuranceRate(retail, tables.InsuranceTiers)
	}
	return total
}

func insuranceRate(retail Money, tiers []refdata.InsuranceTier) Money {
	for _, tier := range tiers {
		if tier.UpTo <= 0 || retail < tier.UpTo {
			return tier.Monthly
		}
	}
	return 0
}
