package utils

import (
	"time"

	"github.com/shopspring/decimal"
)

// RatePrecision is the number of fraction digits every rendered rate carries.
const RatePrecision = 4

// TimestampLayout renders like the es-MX short date/time: "19/10/2026, 14:05:09".
const TimestampLayout = "02/01/2006, 15:04:05"

// RateFormatter turns stored rate data into display strings.
type RateFormatter interface {
	FormatRate(rate decimal.Decimal) string
	FormatTimestamp(t time.Time) string
}

// LocaleRateFormatter renders rates with fixed precision and timestamps in a fixed location.
type LocaleRateFormatter struct {
	Location *time.Location
}

// NewLocaleRateFormatter returns a formatter for loc; nil means time.Local.
func NewLocaleRateFormatter(loc *time.Location) *LocaleRateFormatter {
	if loc == nil {
		loc = time.Local
	}
	return &LocaleRateFormatter{Location: loc}
}

// FormatRate formats a rate with exactly RatePrecision decimals.
// Example: 20 returns "20.0000", 19.75 returns "19.7500", 1.23456 returns "1.2346"
func (f *LocaleRateFormatter) FormatRate(rate decimal.Decimal) string {
	return rate.StringFixed(RatePrecision)
}

// FormatTimestamp formats t in the formatter's location.
func (f *LocaleRateFormatter) FormatTimestamp(t time.Time) string {
	return t.In(f.Location).Format(TimestampLayout)
}
