package config

import (
	"fmt"
	"time"

	"github.com/BrandyMint/moysklad/httpclient"
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

const envPrefix = "MOYSKLAD_"

type Config struct {
	BaseURL              string        `env:"BASE_URL"               envDefault:"https://online.moysklad.ru/api/remap/1.2"`
	Timeout              time.Duration `env:"TIMEOUT"                envDefault:"30s"`
	LogLevel             string        `env:"LOG_LEVEL"              envDefault:"info"`
	MaxResponseSize      int64         `env:"MAX_RESPONSE_SIZE"      envDefault:"0"`
	LegacyStatusDispatch bool          `env:"LEGACY_STATUS_DISPATCH" envDefault:"false"`
}

func New() (*Config, error) {
	return parse(env.Options{Prefix: envPrefix}) //nolint:exhaustruct
}

// NewFromMap parses configuration from vars instead of the process
// environment. Keys carry the MOYSKLAD_ prefix.
func NewFromMap(vars map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: envPrefix, Environment: vars}) //nolint:exhaustruct
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config

	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) ClientOptions(logger zerolog.Logger) []httpclient.Option {
	opts := []httpclient.Option{
		httpclient.WithTimeout(c.Timeout),
		httpclient.WithLogger(logger),
	}

	if c.MaxResponseSize > 0 {
		opts = append(opts, httpclient.WithMaxResponseSize(c.MaxResponseSize))
	}

	if c.LegacyStatusDispatch {
		opts = append(opts, httpclient.WithLegacyStatusDispatch())
	}

	return opts
}

func (c *Config) NewClient(logger zerolog.Logger) *httpclient.Client {
	return httpclient.New(c.BaseURL, c.ClientOptions(logger)...)
}
