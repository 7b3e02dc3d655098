package pricing

// DefaultFinancingTermMonths is the standard 0% installment term.
const DefaultFinancingTermMonths = 24

// MonthlyPayment splits a retail price into equal monthly installments at 0%
// interest, rounded half-up to the cent. A non-positive term falls back to
// the default financing term.
func MonthlyPayment(retail Money, termMonths int) Money {
	if termMonths <= 0 {
		termMonths = DefaultFinancingTermMonths
	}
	if retail <= 0 {
		return 0
	}
	return RoundHalfUpDiv(retail, int64(termMonths))
}
