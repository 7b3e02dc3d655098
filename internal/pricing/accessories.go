package pricing

import (
	"github.com/dealwise/quote-api/internal/deal"
	"github.com/dealwise/quote-api/internal/refdata"
)

// AccessoryBreakdown itemises the monthly cost of accessory lines.
type AccessoryBreakdown struct {
	Watches      Money
	Tablets      Money
	HomeInternet Money
	Total        Money
}

// AccessoryLineCost prices accessory selections per month. Watch lines are
// flat per unit. Tablet lines are priced by data tier; the tablet at list
// position 1 gets 50% off when it is on the unlimited tier. The discount is
// strictly index-based: with three unlimited tablets only the second one is
// discounted. Home internet is free once the voice line count reaches the
// configured threshold, otherwise it costs the standalone flat price.
func AccessoryLineCost(sel deal.AccessorySelections, lineCount int, table refdata.AccessoryPricing) AccessoryBreakdown {
	var out AccessoryBreakdown
	if sel.Watches > 0 {
		out.Watches = Money(sel.Watches) * table.WatchLine
	}
	for i, tablet := range sel.Tablets {
		price := table.TabletByTier[tablet.DataTier]
		if i == 1 && tablet.DataTier == "unlimited" {
			price = RoundHalfUpDiv(price, 2)
		}
		out.Tablets += price
	}
	if sel.HomeInternet {
		freeAt := table.HomeInternetFreeAt
		if freeAt <= 0 {
			freeAt = 2
		}
		if lineCount < freeAt {
			out.HomeInternet = table.HomeInternet
		}
	}
	out.Total = out.Watches + out.Tablets + out.HomeInternet
	return out
}
