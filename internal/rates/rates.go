// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rates fetches exchange-rate tables and extracts the rate for a
// currency pair.
package rates

import (
	"context"
	"errors"
	"fmt"

	"github.com/pdiddy/fx-convert/internal/httputil"
)

// RateProvider returns the rate table for a base currency: every entry is
// the multiplier that converts one unit of base into that currency.
type RateProvider interface {
	GetRates(ctx context.Context, base string) (map[string]float64, error)
}

// NetworkError is returned when the transport call itself fails.
type NetworkError = httputil.TransportError

// HTTPError is returned when the API answers with a non-2xx status.
type HTTPError = httputil.StatusError

// RateNotFoundError is returned when the response carries no rates table
// or no usable entry for the target currency.
type RateNotFoundError struct {
	Base   string
	Target string
}

func (e *RateNotFoundError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("no rates table in response for %s", e.Base)
	}
	return fmt.Sprintf("exchange rate not found for %s -> %s", e.Base, e.Target)
}

// FetchExchangeRate asks p for the rate table of from and returns the entry
// for to. A missing, zero or negative entry is a *RateNotFoundError.
func FetchExchangeRate(ctx context.Context, p RateProvider, from, to string) (float64, error) {
	table, err := p.GetRates(ctx, from)
	if err != nil {
		var re *RateNotFoundError
		if errors.As(err, &re) && re.Target == "" {
			re.Target = to
		}
		return 0, err
	}
	rate, ok := table[to]
	if !ok || rate <= 0 {
		return 0, &RateNotFoundError{Base: from, Target: to}
	}
	return rate, nil
}

// Kind names the failure class of err for logging: "network", "http",
// "rate_not_found" or "other".
func Kind(err error) string {
	var ne *NetworkError
	var he *HTTPError
	var re *RateNotFoundError
	switch {
	case errors.As(err, &ne):
		return "network"
	case errors.As(err, &he):
		return "http"
	case errors.As(err, &re):
		return "rate_not_found"
	default:
		return "other"
	}
}
