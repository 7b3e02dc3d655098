package pricing

import "github.com/dealwise/quote-api/internal/refdata"

// TaxBreakdown itemises monthly service taxes and per-line fees.
type TaxBreakdown struct {
	Percentage Money
	Regulatory Money
	Surcharge  Money
	Total      Money
}

// ServiceTaxesAndFees computes the percentage tax on the monthly service
// amount plus flat per-line regulatory and surcharge fees.
func ServiceTaxesAndFees(monthlyService Money, lineCount int, table refdata.TaxesAndFees) TaxBreakdown {
	if lineCount < 1 {
		lineCount = 1
	}
	if monthlyService < 0 {
		monthlyService = 0
	}
	out := TaxBreakdown{
		Percentage: (monthlyService * Money(table.TaxBps)) / 10000,
		Regulatory: Money(lineCount) * table.RegulatoryPerLine,
		Surcharge:  Money(lineCount) * table.SurchargePerLine,
	}
	out.Total = out.Percentage + out.Regulatory + out.Surcharge
	return out
}
