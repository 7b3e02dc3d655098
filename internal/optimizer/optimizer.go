package optimizer

import (
	"sort"
	"time"

	"github.com/dealwise/quote-api/internal/deal"
	"github.com/dealwise/quote-api/internal/refdata"
	"github.com/dealwise/quote-api/internal/scenario"
)

// CalculateAllScenarios runs every scenario builder against the configuration
// and returns the results sorted descending by total savings. The sort is
// stable, so equally ranked scenarios keep builder order (trade-in-all,
// keep-and-switch, selective-trade, bundle-max).
//
// The function is pure: it holds no state between calls and is safe to invoke
// from any number of goroutines. Unresolvable devices degrade inside the
// builders; the only errors that surface here are fatal reference-data
// failures, and those abort the whole call. No partial list is ever
// returned.
func CalculateAllScenarios(cfg deal.CustomerConfiguration, tables *refdata.Tables, params scenario.Params, now time.Time) ([]scenario.Result, error) {
	cfg = cfg.Normalize()
	builders := scenario.Builders()
	results := make([]scenario.Result, 0, len(builders))
	for _, b := range builders {
		result, err := b.Build(cfg, tables, params, now)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalSavings > results[j].TotalSavings
	})
	return results, nil
}

// Best returns the top-ranked scenario from a CalculateAllScenarios result.
// The second return is false for an empty list.
func Best(results []scenario.Result) (scenario.Result, bool) {
	if len(results) == 0 {
		return scenario.Result{}, false
	}
	return results[0], true
}
