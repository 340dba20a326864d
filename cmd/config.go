package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/etnz/perfcompare"
	"github.com/etnz/perfcompare/pricefeed"
	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfig. The global ones are also passed
// to extensions.
const (
	EnvDataset        = "PERF_DATASET"
	EnvDistinguished  = "PERF_DISTINGUISHED"
	EnvBaseline       = "PERF_BASELINE"
	EnvVerbose        = "PERF_VERBOSE"
	EnvCoinGeckoURL   = "PERF_COINGECKO_URL"
	EnvCoinCapURL     = "PERF_COINCAP_URL"
	EnvUpdateInterval = "PERF_UPDATE_INTERVAL"
	EnvRetryInterval  = "PERF_RETRY_INTERVAL"
	EnvGeminiAPIKey   = "GEMINI_API_KEY"
)

// Config holds the settings that can come from the environment.
type Config struct {
	// Dataset is the JSON dataset file, the built-in dataset when empty.
	Dataset       string
	Distinguished perfcompare.AssetKey
	Baseline      perfcompare.AssetKey

	CoinGeckoURL   string
	CoinCapURL     string
	UpdateInterval time.Duration
	RetryInterval  time.Duration

	GeminiAPIKey string
}

// DefaultConfig returns the configuration without any environment.
func DefaultConfig() Config {
	return Config{
		Distinguished:  perfcompare.Bitcoin,
		Baseline:       perfcompare.SP500,
		CoinGeckoURL:   pricefeed.CoinGeckoURL,
		CoinCapURL:     pricefeed.CoinCapURL,
		UpdateInterval: pricefeed.DefaultUpdateInterval,
		RetryInterval:  pricefeed.DefaultRetryInterval,
	}
}

// LoadConfig loads the .env file of the working directory, if any, then
// overrides the defaults with the environment. Invalid values are reported
// and their default is kept.
func LoadConfig() (Config, error) {
	c := DefaultConfig()
	var errs []error
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		errs = append(errs, fmt.Errorf("cannot load .env: %w", err))
	}

	if v, ok := os.LookupEnv(EnvDataset); ok {
		c.Dataset = v
	}
	for name, key := range map[string]*perfcompare.AssetKey{EnvDistinguished: &c.Distinguished, EnvBaseline: &c.Baseline} {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			if err := key.UnmarshalText([]byte(v)); err != nil {
				errs = append(errs, fmt.Errorf("invalid %s: %w", name, err))
			}
		}
	}
	if v, ok := os.LookupEnv(EnvCoinGeckoURL); ok && v != "" {
		c.CoinGeckoURL = v
	}
	if v, ok := os.LookupEnv(EnvCoinCapURL); ok && v != "" {
		c.CoinCapURL = v
	}
	for name, d := range map[string]*time.Duration{EnvUpdateInterval: &c.UpdateInterval, EnvRetryInterval: &c.RetryInterval} {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			parsed, err := time.ParseDuration(v)
			switch {
			case err != nil:
				errs = append(errs, fmt.Errorf("invalid %s: %w", name, err))
			case parsed <= 0:
				errs = append(errs, fmt.Errorf("invalid %s: %q is not positive", name, v))
			default:
				*d = parsed
			}
		}
	}
	c.GeminiAPIKey = os.Getenv(EnvGeminiAPIKey)
	return c, errors.Join(errs...)
}

// Sources returns the price sources in fallback order.
func (c Config) Sources() []pricefeed.Source {
	return []pricefeed.Source{pricefeed.CoinGecko(c.CoinGeckoURL), pricefeed.CoinCap(c.CoinCapURL)}
}
