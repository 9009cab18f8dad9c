// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/fx-convert/internal/httputil"
	"github.com/pdiddy/fx-convert/pkg/types"
)

// exchangeRateAPIResponse is the v4 "latest" payload. Only Rates is
// required; the other fields are informational.
type exchangeRateAPIResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// ExchangeRateAPI queries exchangerate-api.com for the latest rate table.
type ExchangeRateAPI struct {
	Client    *http.Client
	BaseURL   string
	UserAgent string

	// APIKey is kept for the account but never attached to the request;
	// the v4 endpoint is keyless.
	APIKey string
}

// NewExchangeRateAPI builds a provider from cfg. The client timeout is
// cfg.Timeout; zero leaves the request unbounded.
func NewExchangeRateAPI(cfg types.Config) *ExchangeRateAPI {
	return &ExchangeRateAPI{
		Client:    &http.Client{Timeout: cfg.Timeout},
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		APIKey:    cfg.APIKey,
	}
}

// URL returns the request URL for base: the configured prefix with the code
// appended.
func (p *ExchangeRateAPI) URL(base string) string {
	return p.BaseURL + base
}

// GetRates fetches the rate table for base. A body without a "rates"
// object is reported as a *RateNotFoundError.
func (p *ExchangeRateAPI) GetRates(ctx context.Context, base string) (map[string]float64, error) {
	resp, err := httputil.Get(ctx, p.Client, p.URL(base), p.UserAgent)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body exchangeRateAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("parsing exchange-rate response: %w", err)
	}
	if body.Rates == nil {
		return nil, &RateNotFoundError{Base: base}
	}
	return body.Rates, nil
}
