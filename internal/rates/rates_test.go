// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rates

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/fx-convert/internal/httputil"
)

// fakeProvider returns a canned table or error and records the bases asked for.
type fakeProvider struct {
	table map[string]float64
	err   error
	bases []string
}

func (f *fakeProvider) GetRates(_ context.Context, base string) (map[string]float64, error) {
	f.bases = append(f.bases, base)
	if f.err != nil {
		return nil, f.err
	}
	return f.table, nil
}

func TestFetchExchangeRate(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeProvider
		want     float64
		wantKind string
	}{
		{
			name:     "returns target entry",
			provider: &fakeProvider{table: map[string]float64{"EUR": 0.92, "BRL": 4.95}},
			want:     0.92,
		},
		{
			name:     "missing target",
			provider: &fakeProvider{table: map[string]float64{"BRL": 4.95}},
			wantKind: "rate_not_found",
		},
		{
			name:     "nil table",
			provider: &fakeProvider{},
			wantKind: "rate_not_found",
		},
		{
			name:     "zero rate treated as missing",
			provider: &fakeProvider{table: map[string]float64{"EUR": 0}},
			wantKind: "rate_not_found",
		},
		{
			name:     "provider http error passes through",
			provider: &fakeProvider{err: &httputil.StatusError{StatusCode: 500, StatusText: "Internal Server Error"}},
			wantKind: "http",
		},
		{
			name:     "provider network error passes through",
			provider: &fakeProvider{err: &httputil.TransportError{URL: "x", Err: errors.New("connection refused")}},
			wantKind: "network",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FetchExchangeRate(context.Background(), tt.provider, "USD", "EUR")
			assert.Equal(t, []string{"USD"}, tt.provider.bases)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, Kind(err))
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetchExchangeRateFillsTarget(t *testing.T) {
	p := &fakeProvider{err: &RateNotFoundError{Base: "USD"}}
	_, err := FetchExchangeRate(context.Background(), p, "USD", "JPY")

	var re *RateNotFoundError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "JPY", re.Target)
	assert.Equal(t, "exchange rate not found for USD -> JPY", err.Error())
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"network", &NetworkError{URL: "u", Err: errors.New("dial")}, "network"},
		{"http", &HTTPError{StatusCode: 503}, "http"},
		{"wrapped http", fmt.Errorf("fetching: %w", &HTTPError{StatusCode: 404}), "http"},
		{"rate not found", &RateNotFoundError{Base: "USD", Target: "EUR"}, "rate_not_found"},
		{"other", errors.New("boom"), "other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}
