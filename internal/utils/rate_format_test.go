package utils_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/SscSPs/exchange_rate_board/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRate_AlwaysFourDecimals(t *testing.T) {
	f := utils.NewLocaleRateFormatter(time.UTC)

	cases := map[string]decimal.Decimal{
		"20.0000": decimal.NewFromInt(20),
		"19.7500": decimal.NewFromFloat(19.75),
		"20.1000": decimal.RequireFromString("20.10"),
		"1.2346":  decimal.RequireFromString("1.23456"),
		"0.0001":  decimal.RequireFromString("0.00005"),
		"-3.5000": decimal.NewFromFloat(-3.5),
	}
	for want, in := range cases {
		assert.Equal(t, want, f.FormatRate(in), "input %s", in.String())
	}
}

func TestFormatTimestamp_UsesConfiguredLocation(t *testing.T) {
	mx, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)
	f := utils.NewLocaleRateFormatter(mx)

	// Mexico City has no DST since 2022, UTC-6 all year.
	ts := time.Date(2026, time.October, 19, 20, 5, 9, 0, time.UTC)

	assert.Equal(t, "19/10/2026, 14:05:09", f.FormatTimestamp(ts))
}

func TestFormatTimestamp_ZeroPads(t *testing.T) {
	f := utils.NewLocaleRateFormatter(time.UTC)
	ts := time.Date(2025, time.January, 5, 3, 4, 5, 0, time.UTC)

	assert.Equal(t, "05/01/2025, 03:04:05", f.FormatTimestamp(ts))
}

func TestNewLocaleRateFormatter_NilLocation(t *testing.T) {
	f := utils.NewLocaleRateFormatter(nil)
	assert.Equal(t, time.Local, f.Location)
}
