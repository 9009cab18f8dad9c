// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package converter implements the converter controller: it validates the
// form, fetches one exchange-rate table per conversion and drives the
// result region through Idle, Loading, Success and Error.
package converter

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/fx-convert/internal/currency"
	"github.com/pdiddy/fx-convert/internal/rates"
	"github.com/pdiddy/fx-convert/pkg/types"
)

// MsgFetchFailed is shown for every network, HTTP and missing-rate failure.
// The underlying cause only goes to the log.
const MsgFetchFailed = "Error fetching exchange rates. Please try again."

// UI is the form and result region the controller reads and writes. The
// controller owns none of the markup; it only uses these accessors.
type UI interface {
	Amount() string
	// SetAmountValidity sets the amount field's constraint message; an
	// empty message marks the field valid.
	SetAmountValidity(message string)

	FromCurrency() string
	SetFromCurrency(code string)
	ToCurrency() string
	SetToCurrency(code string)

	// SetTriggerEnabled enables or disables the convert control.
	SetTriggerEnabled(enabled bool)

	// Render replaces the result region with state.
	Render(state types.DisplayState)
}

// EventSource delivers UI events. Handlers must be invoked serially from a
// single goroutine.
type EventSource interface {
	OnSubmit(handler func(ctx context.Context))
	OnSwapClick(handler func(ctx context.Context))
	OnAmountInput(handler func(ctx context.Context))
}

// Controller orchestrates validation, the rate fetch and rendering. It is
// not safe for concurrent use.
type Controller struct {
	ui       UI
	provider rates.RateProvider
	format   *currency.Formatter
	log      *zap.Logger

	state types.DisplayState
	newID func() string
}

// New returns a controller in the Idle state. A nil logger discards logs.
func New(ui UI, provider rates.RateProvider, format *currency.Formatter, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		ui:       ui,
		provider: provider,
		format:   format,
		log:      log,
		newID:    uuid.NewString,
	}
}

// Bind registers the controller's handlers on src: submit converts, the
// swap control swaps, and every amount edit re-validates the field.
func (c *Controller) Bind(src EventSource) {
	src.OnSubmit(func(ctx context.Context) { c.ConvertCurrency(ctx) })
	src.OnSwapClick(c.SwapCurrencies)
	src.OnAmountInput(func(context.Context) { c.ValidateAmount() })
}

// State returns what the result region currently shows.
func (c *Controller) State() types.DisplayState {
	return c.state
}

// ValidateAmount sets or clears the amount field's constraint message.
func (c *Controller) ValidateAmount() {
	if _, err := ParseAmount(c.ui.Amount()); err != nil {
		c.ui.SetAmountValidity(validationMessage(err))
		return
	}
	c.ui.SetAmountValidity("")
}

// ValidateInputs displays the first failing check, in order amount, source
// currency, target currency, and reports whether all passed.
func (c *Controller) ValidateInputs(amount, from, to string) bool {
	if _, err := CheckInputs(amount, from, to); err != nil {
		c.DisplayError(validationMessage(err))
		return false
	}
	return true
}

// SwapCurrencies exchanges the selected currencies when both are set. If a
// result or error is showing, the conversion is re-run with the new pair.
func (c *Controller) SwapCurrencies(ctx context.Context) {
	from, to := c.ui.FromCurrency(), c.ui.ToCurrency()
	if from == "" || to == "" {
		return
	}
	c.ui.SetFromCurrency(to)
	c.ui.SetToCurrency(from)

	if c.state.Visible() {
		c.ConvertCurrency(ctx)
	}
}

// ConvertCurrency reads the form, validates it and renders the conversion.
// Converting a currency into itself never touches the network. Otherwise
// the controller enters Loading and blocks on a single rate fetch.
func (c *Controller) ConvertCurrency(ctx context.Context) types.DisplayState {
	rawAmount, from, to := c.ui.Amount(), c.ui.FromCurrency(), c.ui.ToCurrency()
	if !c.ValidateInputs(rawAmount, from, to) {
		return c.state
	}
	amount, _ := ParseAmount(rawAmount)

	req := types.ConversionRequest{
		ID:           c.newID(),
		Amount:       amount,
		FromCurrency: from,
		ToCurrency:   to,
	}

	if req.Identity() {
		c.DisplayResult(req.Amount, req.Amount, req.FromCurrency, req.ToCurrency, 1)
		return c.state
	}

	c.showLoading()

	log := c.log.With(
		zap.String("request_id", req.ID),
		zap.String("from", req.FromCurrency),
		zap.String("to", req.ToCurrency),
	)
	log.Debug("fetching exchange rate")

	rate, err := rates.FetchExchangeRate(ctx, c.provider, req.FromCurrency, req.ToCurrency)
	if err != nil {
		log.Error("exchange rate fetch failed",
			zap.String("kind", rates.Kind(err)),
			zap.Error(err))
		c.DisplayError(MsgFetchFailed)
		return c.state
	}
	log.Debug("exchange rate fetched", zap.Float64("rate", rate))

	c.DisplayResult(req.Amount, req.Amount*rate, req.FromCurrency, req.ToCurrency, rate)
	return c.state
}

// DisplayResult renders a successful conversion.
func (c *Controller) DisplayResult(original, converted float64, from, to string, rate float64) {
	c.hideLoading()
	c.state = types.DisplayState{
		Kind:               types.DisplaySuccess,
		OriginalAmount:     original,
		ConvertedAmount:    converted,
		FromCurrency:       from,
		ToCurrency:         to,
		Rate:               rate,
		FormattedOriginal:  c.format.Amount(original, from),
		FormattedConverted: c.format.Amount(converted, to),
		FormattedRate:      currency.Rate(rate),
	}
	c.ui.Render(c.state)
}

// DisplayError renders message verbatim in the error style.
func (c *Controller) DisplayError(message string) {
	c.hideLoading()
	c.state = types.DisplayState{Kind: types.DisplayError, Message: message}
	c.ui.Render(c.state)
}

// showLoading disables the trigger and hides any previous result.
func (c *Controller) showLoading() {
	c.ui.SetTriggerEnabled(false)
	c.state = types.DisplayState{Kind: types.DisplayLoading}
	c.ui.Render(c.state)
}

func (c *Controller) hideLoading() {
	c.ui.SetTriggerEnabled(true)
}
