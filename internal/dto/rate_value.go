package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/exchange_rate_board/internal/utils"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Bounds on an accepted rate. Values must fit the NUMERIC(12,4) column
// once rounded; the length and exponent limits keep the decimal arithmetic
// used for that check small.
const (
	maxRateLength   = 32
	minRateExponent = -32
	maxRateExponent = 12
)

var maxRateMagnitude = decimal.New(1, 8)

// RateValue is a rate submitted either as a JSON number or as a numeric string.
// null, "" and an absent field leave it unset.
type RateValue struct {
	Decimal decimal.Decimal
	Valid   bool
	// Quoted is set when the value arrived as a JSON string.
	Quoted bool
}

// InvalidRateError reports a value that is present but not numeric.
type InvalidRateError struct {
	Raw string
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("invalid rate value %s", e.Raw)
}

// NewRateValue wraps d as a set value.
func NewRateValue(d decimal.Decimal) RateValue {
	return RateValue{Decimal: d, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *RateValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	*v = RateValue{}

	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")), bytes.Equal(trimmed, []byte("false")):
		return nil
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return &InvalidRateError{Raw: truncateRaw(trimmed)}
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		d, err := parseRate(s)
		if err != nil {
			return &InvalidRateError{Raw: truncateRaw(trimmed)}
		}
		*v = RateValue{Decimal: d, Valid: true, Quoted: true}
		return nil
	case trimmed[0] == '-' || (trimmed[0] >= '0' && trimmed[0] <= '9'):
		d, err := parseRate(string(trimmed))
		if err != nil {
			return &InvalidRateError{Raw: truncateRaw(trimmed)}
		}
		*v = NewRateValue(d)
		return nil
	}
	return &InvalidRateError{Raw: truncateRaw(trimmed)}
}

func parseRate(s string) (decimal.Decimal, error) {
	if len(s) > maxRateLength {
		return decimal.Zero, fmt.Errorf("rate longer than %d characters", maxRateLength)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if exp := d.Exponent(); exp < minRateExponent || exp > maxRateExponent {
		return decimal.Zero, fmt.Errorf("rate exponent %d out of range", exp)
	}
	if d.Round(utils.RatePrecision).Abs().GreaterThanOrEqual(maxRateMagnitude) {
		return decimal.Zero, fmt.Errorf("rate out of range")
	}
	return d, nil
}

func truncateRaw(raw []byte) string {
	if len(raw) > maxRateLength {
		return string(raw[:maxRateLength]) + "..."
	}
	return string(raw)
}

// MarshalJSON renders the value as a JSON number, or null when unset.
func (v RateValue) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return []byte(v.Decimal.String()), nil
}

// present treats an unset value or a numeric zero as missing, so "required"
// behaves like a truthiness check. A quoted "0" is present.
func (v RateValue) present() bool {
	return v.Valid && (v.Quoted || !v.Decimal.IsZero())
}

var registerOnce sync.Once

// RegisterValidators teaches gin's validator engine how to read RateValue.
// Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterCustomTypeFunc(rateValueType, RateValue{})
	})
}

// rateValueType hands the validator a non-empty marker for present values.
func rateValueType(field reflect.Value) interface{} {
	rv, ok := field.Interface().(RateValue)
	if !ok || !rv.present() {
		return ""
	}
	return "set"
}
