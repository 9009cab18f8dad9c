// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// ErrorIcon prefixes error messages in the result region.
const ErrorIcon = "⚠"

// ConversionRequest is built for one submit and discarded afterwards.
type ConversionRequest struct {
	// ID correlates the log lines of one conversion attempt.
	ID           string  `json:"id"`
	Amount       float64 `json:"amount"`
	FromCurrency string  `json:"from_currency"`
	ToCurrency   string  `json:"to_currency"`
}

// Identity reports whether the request converts a currency into itself.
func (r ConversionRequest) Identity() bool {
	return r.FromCurrency == r.ToCurrency
}

// DisplayKind enumerates the states of the result region.
type DisplayKind int

const (
	DisplayIdle DisplayKind = iota
	DisplayLoading
	DisplaySuccess
	DisplayError
)

// String returns the lowercase state name.
func (k DisplayKind) String() string {
	switch k {
	case DisplayIdle:
		return "idle"
	case DisplayLoading:
		return "loading"
	case DisplaySuccess:
		return "success"
	case DisplayError:
		return "error"
	default:
		return "unknown"
	}
}

// DisplayState is what the result region currently shows. Only the fields
// relevant to Kind are set.
type DisplayState struct {
	Kind DisplayKind `json:"kind"`

	OriginalAmount  float64 `json:"original_amount,omitempty"`
	ConvertedAmount float64 `json:"converted_amount,omitempty"`
	FromCurrency    string  `json:"from_currency,omitempty"`
	ToCurrency      string  `json:"to_currency,omitempty"`
	Rate            float64 `json:"rate,omitempty"`

	FormattedOriginal  string `json:"formatted_original,omitempty"`
	FormattedConverted string `json:"formatted_converted,omitempty"`
	FormattedRate      string `json:"formatted_rate,omitempty"`

	// Message is the error text for DisplayError.
	Message string `json:"message,omitempty"`
}

// Visible reports whether the result region is shown. Loading hides any
// previous result.
func (s DisplayState) Visible() bool {
	return s.Kind == DisplaySuccess || s.Kind == DisplayError
}

// Lines renders the region's text: two lines on success, one on error,
// none otherwise.
func (s DisplayState) Lines() []string {
	switch s.Kind {
	case DisplaySuccess:
		return []string{
			s.FormattedOriginal + " = " + s.FormattedConverted,
			"1 " + s.FromCurrency + " = " + s.FormattedRate + " " + s.ToCurrency,
		}
	case DisplayError:
		return []string{ErrorIcon + " " + s.Message}
	default:
		return nil
	}
}

// String joins Lines with newlines.
func (s DisplayState) String() string {
	return strings.Join(s.Lines(), "\n")
}
