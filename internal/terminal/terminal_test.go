// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package terminal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/fx-convert/internal/converter"
	"github.com/pdiddy/fx-convert/internal/currency"
	"github.com/pdiddy/fx-convert/pkg/types"
)

// syncBuffer is a bytes.Buffer safe to read while Run writes to it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// tableProvider serves a fixed USD table. When gate is set, each call
// signals started and waits for gate.
type tableProvider struct {
	mu      sync.Mutex
	bases   []string
	err     error
	started chan struct{}
	gate    chan struct{}
}

func (p *tableProvider) GetRates(_ context.Context, base string) (map[string]float64, error) {
	p.mu.Lock()
	p.bases = append(p.bases, base)
	p.mu.Unlock()
	if p.started != nil {
		p.started <- struct{}{}
	}
	if p.gate != nil {
		<-p.gate
	}
	if p.err != nil {
		return nil, p.err
	}
	switch base {
	case "USD":
		return map[string]float64{"EUR": 0.92, "BRL": 5}, nil
	case "EUR":
		return map[string]float64{"USD": 1.087}, nil
	}
	return map[string]float64{}, nil
}

func (p *tableProvider) calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.bases...)
}

func newSession(t *testing.T, in io.Reader, p *tableProvider) (*Terminal, *converter.Controller, *syncBuffer) {
	t.Helper()
	out := &syncBuffer{}
	term := New(in, out, currency.Default(), false)
	f, err := currency.NewFormatter("en-US", currency.DisplayCode)
	require.NoError(t, err)
	ctrl := converter.New(term, p, f, nil)
	ctrl.Bind(term)
	return term, ctrl, out
}

func TestSessionConvert(t *testing.T) {
	in := strings.NewReader("amount 10\nfrom usd\nto eur\nconvert\nquit\n")
	p := &tableProvider{}
	term, ctrl, out := newSession(t, in, p)

	require.NoError(t, term.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Converting...")
	assert.Contains(t, got, "USD 10.00 = EUR 9.20\n")
	assert.Contains(t, got, "1 USD = 0.9200 EUR\n")
	assert.Equal(t, []string{"USD"}, p.calls())
	assert.Equal(t, types.DisplaySuccess, ctrl.State().Kind)
	assert.True(t, term.TriggerEnabled())
}

func TestSessionSwapReconverts(t *testing.T) {
	in := strings.NewReader("amount 10\nfrom USD\nto EUR\nconvert\nswap\n")
	p := &tableProvider{}
	term, ctrl, out := newSession(t, in, p)

	require.NoError(t, term.Run(context.Background()))

	assert.Equal(t, []string{"USD", "EUR"}, p.calls())
	assert.Equal(t, "EUR", term.FromCurrency())
	assert.Equal(t, "USD", term.ToCurrency())
	assert.Contains(t, out.String(), "EUR 10.00 = USD 10.87")
	assert.Equal(t, "EUR", ctrl.State().FromCurrency)
}

func TestSessionValidationAndSelectors(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"amount abc",
		"from XYZ",
		"convert",
		"bogus",
		"amount 5",
		"from BRL",
		"to brl",
		"convert",
	}, "\n"))
	p := &tableProvider{}
	term, ctrl, out := newSession(t, in, p)

	require.NoError(t, term.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "amount: "+converter.MsgInvalidAmount)
	assert.Contains(t, got, `unknown currency "XYZ"`)
	assert.Contains(t, got, types.ErrorIcon+" "+converter.MsgInvalidAmount)
	assert.Contains(t, got, `unknown command "bogus"`)
	assert.Contains(t, got, "BRL 5.00 = BRL 5.00")
	assert.Contains(t, got, "1 BRL = 1.0000 BRL")
	assert.Empty(t, p.calls(), "same-currency conversion must not fetch")
	assert.Empty(t, term.AmountValidity())
	assert.Equal(t, types.DisplaySuccess, ctrl.State().Kind)
}

func TestSessionFetchFailure(t *testing.T) {
	in := strings.NewReader("amount 1\nfrom USD\nto EUR\nconvert\n")
	p := &tableProvider{err: errors.New("dial tcp: connection refused")}
	term, ctrl, out := newSession(t, in, p)

	require.NoError(t, term.Run(context.Background()))

	assert.Contains(t, out.String(), types.ErrorIcon+" "+converter.MsgFetchFailed)
	assert.NotContains(t, out.String(), "connection refused")
	assert.Equal(t, types.DisplayError, ctrl.State().Kind)
	assert.True(t, term.TriggerEnabled())
}

func TestSessionClearSelection(t *testing.T) {
	in := strings.NewReader("amount 1\nfrom USD\nto EUR\nto\nconvert\nswap\nshow\n")
	p := &tableProvider{}
	term, _, out := newSession(t, in, p)

	require.NoError(t, term.Run(context.Background()))

	assert.Contains(t, out.String(), converter.MsgMissingTo)
	assert.Equal(t, "USD", term.FromCurrency(), "swap with an empty side is a no-op")
	assert.Contains(t, out.String(), `amount="1" from="USD" to=""`)
}

func TestConvertDroppedWhileBusy(t *testing.T) {
	pr, pw := io.Pipe()
	p := &tableProvider{started: make(chan struct{}, 4), gate: make(chan struct{})}
	term, _, out := newSession(t, pr, p)

	done := make(chan error, 1)
	go func() { done <- term.Run(context.Background()) }()

	_, err := io.WriteString(pw, "amount 10\nfrom USD\nto EUR\nconvert\n")
	require.NoError(t, err)

	select {
	case <-p.started:
	case <-time.After(2 * time.Second):
		t.Fatal("provider was not called")
	}
	assert.False(t, term.TriggerEnabled())

	_, err = io.WriteString(pw, "convert\n")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "convert ignored")
	}, 2*time.Second, 10*time.Millisecond)

	close(p.gate)
	require.NoError(t, pw.Close())

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.Equal(t, []string{"USD"}, p.calls())
	assert.True(t, term.TriggerEnabled())
}

func TestRunContextCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	term, _, _ := newSession(t, pr, &tableProvider{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, term.Run(ctx), context.Canceled)
}

func TestListAndHelp(t *testing.T) {
	term, _, out := newSession(t, strings.NewReader("list\nhelp\n"), &tableProvider{})
	require.NoError(t, term.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "USD  US Dollar")
	assert.Contains(t, got, "JPY  Japanese Yen")
	assert.Equal(t, 2, strings.Count(got, "swap source and target currencies"))
}

func TestColorOutput(t *testing.T) {
	var buf bytes.Buffer
	term := New(strings.NewReader(""), &buf, currency.Default(), true)
	term.Render(types.DisplayState{Kind: types.DisplayError, Message: "nope"})
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "nope")

	buf.Reset()
	term = New(strings.NewReader(""), &buf, currency.Default(), false)
	term.Render(types.DisplayState{Kind: types.DisplayError, Message: "nope"})
	assert.Equal(t, types.ErrorIcon+" nope\n", buf.String())
}
