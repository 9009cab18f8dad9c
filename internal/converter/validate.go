// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package converter

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Validation messages, shown verbatim.
const (
	MsgInvalidAmount = "Please enter a valid amount greater than zero."
	MsgMissingFrom   = "Please select the source currency."
	MsgMissingTo     = "Please select the target currency."
)

// ValidationError is a local input error. It never reaches the network.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseAmount parses raw as a decimal number and requires it to be finite
// and greater than zero.
func ParseAmount(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, &ValidationError{Field: "amount", Message: MsgInvalidAmount}
	}
	return v, nil
}

// CheckInputs returns the parsed amount or the first *ValidationError in
// order amount, from, to.
func CheckInputs(amount, from, to string) (float64, error) {
	v, err := ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	if from == "" {
		return 0, &ValidationError{Field: "from", Message: MsgMissingFrom}
	}
	if to == "" {
		return 0, &ValidationError{Field: "to", Message: MsgMissingTo}
	}
	return v, nil
}

func validationMessage(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return err.Error()
}
