package pricefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Public endpoints of the default sources.
const (
	CoinGeckoURL = "https://api.coingecko.com/api/v3/simple/price?ids=bitcoin&vs_currencies=usd&include_24hr_change=true&include_24hr_vol=true&include_market_cap=true"
	CoinCapURL   = "https://api.coincap.io/v2/assets/bitcoin"
)

// Quote is a snapshot of the bitcoin market.
type Quote struct {
	Price     float64 `json:"price"`
	Change24h float64 `json:"change24h"` // percent
	MarketCap float64 `json:"marketCap,omitempty"`
	Volume24h float64 `json:"volume24h,omitempty"`
}

// Source is a JSON endpoint and the JSON paths of each quote field in its
// response. Price and change are required, market cap and volume are
// optional.
type Source struct {
	Name      string
	URL       string
	Price     string
	Change24h string
	MarketCap string
	Volume24h string
}

// CoinGecko returns the CoinGecko simple price source, numbers are JSON numbers.
func CoinGecko(url string) Source {
	return Source{
		Name:      "coingecko",
		URL:       url,
		Price:     "$.bitcoin.usd",
		Change24h: "$.bitcoin.usd_24h_change",
		MarketCap: "$.bitcoin.usd_market_cap",
		Volume24h: "$.bitcoin.usd_24h_vol",
	}
}

// CoinCap returns the CoinCap asset source, numbers are JSON strings.
func CoinCap(url string) Source {
	return Source{
		Name:      "coincap",
		URL:       url,
		Price:     "$.data.priceUsd",
		Change24h: "$.data.changePercent24Hr",
		MarketCap: "$.data.marketCapUsd",
		Volume24h: "$.data.volumeUsd24Hr",
	}
}

// HTTPError is returned when a source answers with a non 200 status.
type HTTPError struct {
	Source     string
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s HTTP %s", e.Source, e.Status)
}

// fetch queries the source and extracts a quote from its response.
func (s Source) fetch(ctx context.Context, client *http.Client) (Quote, error) {
	var jobj any
	if err := jwget(ctx, client, s, &jobj); err != nil {
		return Quote{}, err
	}
	var q Quote
	var err error
	if q.Price, err = s.number(jobj, s.Price, true); err != nil {
		return Quote{}, err
	}
	if q.Price <= 0 {
		return Quote{}, fmt.Errorf("%s returned an invalid price %v", s.Name, q.Price)
	}
	if q.Change24h, err = s.number(jobj, s.Change24h, true); err != nil {
		return Quote{}, err
	}
	if q.MarketCap, err = s.number(jobj, s.MarketCap, false); err != nil {
		return Quote{}, err
	}
	if q.Volume24h, err = s.number(jobj, s.Volume24h, false); err != nil {
		return Quote{}, err
	}
	return q, nil
}

// number reads the value at path as a float. Values can be JSON numbers or
// strings. A missing optional value is 0.
func (s Source) number(jobj any, path string, required bool) (float64, error) {
	if path == "" {
		return 0, nil
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil || jval == nil {
		if !required {
			return 0, nil
		}
		if err == nil {
			err = errors.New("null value")
		}
		return 0, fmt.Errorf("cannot read %q from %s: %w", path, s.Name, err)
	}
	// jsonpath may return a list of one answer
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot read %q from %s: invalid number %q: %w", path, s.Name, v, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot read %q from %s: not a number: %v", path, s.Name, jval)
	}
}

// jwget performs an HTTP GET request and unmarshals the JSON response into data.
func jwget(ctx context.Context, client *http.Client, s Source, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return fmt.Errorf("cannot create %s request: %w", s.Name, err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("cannot http GET %s: %w", s.Name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &HTTPError{Source: s.Name, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	if err := json.NewDecoder(resp.Body).Decode(data); err != nil {
		return fmt.Errorf("cannot decode %s response: %w", s.Name, err)
	}
	return nil
}
