package shegerpay

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-config/cfgx"

	"github.com/shegerpay/shegerpay-go/logger"
	"github.com/shegerpay/shegerpay-go/metrics"
	"github.com/shegerpay/shegerpay-go/transport"
	"github.com/shegerpay/shegerpay-go/types"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvAPIKey        = "SHEGERPAY_API_KEY"
	EnvBaseURL       = "SHEGERPAY_BASE_URL"
	EnvTimeout       = "SHEGERPAY_TIMEOUT"
	EnvBrand         = "SHEGERPAY_BRAND"
	EnvLogLevel      = "SHEGERPAY_LOG_LEVEL"
	EnvEnableMetrics = "SHEGERPAY_ENABLE_METRICS"
)

// Config holds the client configuration in a form that can be loaded from
// files, maps or the environment.
type Config struct {
	APIKey         string `koanf:"api_key" mapstructure:"api_key"`
	BaseURL        string `koanf:"base_url" mapstructure:"base_url"`
	TimeoutSeconds int    `koanf:"timeout_seconds" mapstructure:"timeout_seconds"`
	Brand          string `koanf:"brand" mapstructure:"brand"`
	// LogLevel enables zap logging at the given level; empty disables logging.
	LogLevel      string `koanf:"log_level" mapstructure:"log_level"`
	EnableMetrics bool   `koanf:"enable_metrics" mapstructure:"enable_metrics"`
}

func DefaultConfig() Config {
	return Config{
		TimeoutSeconds: int(transport.DefaultTimeout / time.Second),
		Brand:          string(BrandShegerPay),
	}
}

func (c Config) Validate() error {
	if _, ok := types.ModeFromKey(c.APIKey); !ok {
		return fmt.Errorf("shegerpay: api_key must start with %s or %s", types.TestKeyPrefix, types.LiveKeyPrefix)
	}
	return c.validateSettings()
}

// validateSettings checks everything but the API key, which New reports as
// an authentication error.
func (c Config) validateSettings() error {
	if _, ok := ParseBrand(c.Brand); !ok {
		return fmt.Errorf("shegerpay: unknown brand %q", c.Brand)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("shegerpay: timeout_seconds must not be negative")
	}
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("shegerpay: unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Timeout returns the configured per-call timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LoadConfig builds a Config from raw values layered over DefaultConfig.
func LoadConfig(raw map[string]any) (Config, error) {
	cfg, err := cfgx.Build[Config](raw,
		cfgx.WithDefaults(DefaultConfig()),
		cfgx.WithValidator[Config]((*Config).Validate),
	)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigFromEnv loads the SHEGERPAY_* environment variables.
func ConfigFromEnv() (Config, error) {
	return configFromLookup(os.LookupEnv)
}

func configFromLookup(lookup func(string) (string, bool)) (Config, error) {
	raw := map[string]any{}
	if v, ok := lookup(EnvAPIKey); ok {
		raw["api_key"] = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvBaseURL); ok && strings.TrimSpace(v) != "" {
		raw["base_url"] = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvTimeout); ok && strings.TrimSpace(v) != "" {
		seconds, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("shegerpay: %s: %w", EnvTimeout, err)
		}
		raw["timeout_seconds"] = seconds
	}
	if v, ok := lookup(EnvBrand); ok && strings.TrimSpace(v) != "" {
		raw["brand"] = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLogLevel); ok {
		raw["log_level"] = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvEnableMetrics); ok && strings.TrimSpace(v) != "" {
		enabled, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("shegerpay: %s: %w", EnvEnableMetrics, err)
		}
		raw["enable_metrics"] = enabled
	}
	return LoadConfig(raw)
}

// NewFromConfig creates a client from cfg. A non-empty LogLevel wires a zap
// logger and EnableMetrics a prometheus recorder on the default registerer.
// opts are applied after the config and take precedence.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.validateSettings(); err != nil {
		return nil, types.WrapError(types.KindValidation, "invalid configuration", err)
	}
	brand, _ := ParseBrand(cfg.Brand)

	base := []Option{WithBrand(brand), WithTimeout(cfg.Timeout())}
	if cfg.BaseURL != "" {
		base = append(base, WithBaseURL(cfg.BaseURL))
	}
	if cfg.LogLevel != "" {
		l, err := logger.NewZapLogger(cfg.LogLevel)
		if err != nil {
			return nil, types.WrapError(types.KindGeneric, "create logger", err)
		}
		base = append(base, WithLogger(l))
	}
	if cfg.EnableMetrics {
		rec, err := metrics.NewPrometheusRecorder(nil)
		if err != nil {
			return nil, types.WrapError(types.KindGeneric, "register metrics", err)
		}
		base = append(base, WithMetrics(rec))
	}
	return New(cfg.APIKey, append(base, opts...)...)
}

// NewFromEnv creates a client from the SHEGERPAY_* environment variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		kind := types.KindValidation
		if _, ok := types.ModeFromKey(strings.TrimSpace(os.Getenv(EnvAPIKey))); !ok {
			kind = types.KindAuthentication
		}
		return nil, types.WrapError(kind, "invalid configuration", err)
	}
	return NewFromConfig(cfg, opts...)
}
