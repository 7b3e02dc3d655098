package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/dealwise/quote-api/internal/scenario"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv             string
	Port               string
	RedisURL           string
	CORSAllowedOrigins []string

	QuoteCacheTTL   time.Duration
	RateLimitWindow time.Duration
	RateLimitMax    int
	MaxBodyBytes    int64

	// Pricing carries the scenario business constants. Defaults come from
	// scenario.DefaultParams; each is individually overridable so the values
	// can be tuned without a release.
	Pricing scenario.Params
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:             valueOrDefault(k.String("APP_ENV"), "development"),
		Port:               valueOrDefault(k.String("PORT"), "8080"),
		RedisURL:           strings.TrimSpace(k.String("REDIS_URL")),
		CORSAllowedOrigins: splitAndTrim(k.String("CORS_ALLOWED_ORIGINS")),
		QuoteCacheTTL:      parseDuration(k.String("QUOTE_CACHE_TTL"), "10m"),
		RateLimitWindow:    parseDuration(k.String("RATE_LIMIT_WINDOW"), "1m"),
		RateLimitMax:       intOrDefault(k, "RATE_LIMIT_MAX", 120),
		MaxBodyBytes:       int64(intOrDefault(k, "MAX_BODY_BYTES", 1<<20)),
		Pricing:            pricingParams(k),
	}

	return cfg, nil
}

func pricingParams(k *koanf.Koanf) scenario.Params {
	p := scenario.DefaultParams()
	p.FinancingTermMonths = intOrDefault(k, "PRICING_FINANCING_TERM_MONTHS", p.FinancingTermMonths)
	p.SelectiveTradeThreshold = moneyOrDefault(k, "PRICING_SELECTIVE_TRADE_THRESHOLD", p.SelectiveTradeThreshold)
	p.KeepSwitchMaxLines = intOrDefault(k, "PRICING_KEEP_SWITCH_MAX_LINES", p.KeepSwitchMaxLines)
	p.KeepSwitchMaxPerLine = moneyOrDefault(k, "PRICING_KEEP_SWITCH_MAX_PER_LINE", p.KeepSwitchMaxPerLine)
	p.PortInCreditPerLine = moneyOrDefault(k, "PRICING_PORT_IN_CREDIT_PER_LINE", p.PortInCreditPerLine)
	p.PortInMaxLines = intOrDefault(k, "PRICING_PORT_IN_MAX_LINES", p.PortInMaxLines)
	return p
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}

func intOrDefault(k *koanf.Koanf, key string, fallback int) int {
	if strings.TrimSpace(k.String(key)) == "" {
		return fallback
	}
	value := k.Int(key)
	if value <= 0 {
		return fallback
	}
	return value
}

func moneyOrDefault(k *koanf.Koanf, key string, fallback int64) int64 {
	if strings.TrimSpace(k.String(key)) == "" {
		return fallback
	}
	value := k.Int64(key)
	if value <= 0 {
		return fallback
	}
	return value
}

// MustLoad behaves like Load but panics on error. Useful for tests and
// command entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadForTests allows tests to override environment variables without
// touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
