package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dealwise/quote-api/internal/common"
	"github.com/dealwise/quote-api/internal/deal"
	"github.com/dealwise/quote-api/internal/obs"
	"github.com/dealwise/quote-api/internal/optimizer"
	"github.com/dealwise/quote-api/internal/refdata"
	"github.com/dealwise/quote-api/internal/scenario"
)

// Quote is the full output of one optimization run: every scenario ranked
// best-first plus the winner pulled out for convenience.
type Quote struct {
	ID        string            `json:"id"`
	Scenarios []scenario.Result `json:"scenarios"`
	Best      scenario.Result   `json:"best"`
}

// Service computes quotes over the loaded reference tables. The underlying
// engine is a pure function, so results are cacheable by configuration
// digest; the service itself keeps no per-request state and is safe for
// concurrent use.
type Service struct {
	Tables *refdata.Tables
	Params scenario.Params
	Cache  *Cache
	Now    func() time.Time
}

// Quote runs the optimizer for the given configuration, consulting the cache
// first. The cache key covers the configuration, the pricing constants, and
// the calendar month, so seasonal promotion windows never serve stale hits.
func (s *Service) Quote(ctx context.Context, cfg deal.CustomerConfiguration) (Quote, error) {
	if s == nil || s.Tables == nil {
		return Quote{}, fmt.Errorf("quote service not configured: %w", refdata.ErrReferenceData)
	}
	now := s.now()
	key, err := s.cacheKey(cfg, now)
	if err != nil {
		return Quote{}, err
	}
	var cached Quote
	if hit, err := s.Cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	start := time.Now()
	results, err := optimizer.CalculateAllScenarios(cfg, s.Tables, s.Params, now)
	if obs.ScenarioComputeDuration != nil {
		obs.ScenarioComputeDuration.Observe(obs.DurationMillis(time.Since(start)))
	}
	if err != nil {
		return Quote{}, err
	}
	best, ok := optimizer.Best(results)
	if !ok {
		return Quote{}, errors.New("optimizer returned no scenarios")
	}
	out := Quote{
		ID:        uuid.NewString(),
		Scenarios: results,
		Best:      best,
	}
	_ = s.Cache.SetJSON(ctx, key, out)
	return out, nil
}

func (s *Service) cacheKey(cfg deal.CustomerConfiguration, now time.Time) (string, error) {
	payload, err := json.Marshal(struct {
		Config deal.CustomerConfiguration `json:"config"`
		Params scenario.Params            `json:"params"`
		Month  string                     `json:"month"`
	}{cfg, s.Params, now.Format("2006-01")})
	if err != nil {
		return "", fmt.Errorf("digest configuration: %w", err)
	}
	return "quote:" + common.Sha256Hex(string(payload)), nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
