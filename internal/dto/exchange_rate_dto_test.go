package dto_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/exchange_rate_board/internal/core/domain"
	"github.com/SscSPs/exchange_rate_board/internal/dto"
	"github.com/SscSPs/exchange_rate_board/internal/utils"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateValue_AcceptsNumbersAndNumericStrings(t *testing.T) {
	cases := map[string]string{
		`19.75`:     "19.75",
		`20`:        "20",
		`"20.10"`:   "20.1",
		`" 19.5 "`:  "19.5",
		`-1.5`:      "-1.5",
		`1e1`:       "10",
		`"0.00001"`: "0.00001",
	}
	for raw, want := range cases {
		var v dto.RateValue
		require.NoError(t, json.Unmarshal([]byte(raw), &v), raw)
		assert.True(t, v.Valid, raw)
		assert.True(t, decimal.RequireFromString(want).Equal(v.Decimal), "%s decoded as %s", raw, v.Decimal)
	}
}

func TestRateValue_UnsetInputs(t *testing.T) {
	for _, raw := range []string{`null`, `""`, `"   "`, `false`} {
		var v dto.RateValue
		require.NoError(t, json.Unmarshal([]byte(raw), &v), raw)
		assert.False(t, v.Valid, raw)
	}
}

func TestRateValue_RejectsNonNumeric(t *testing.T) {
	for _, raw := range []string{`"abc"`, `true`, `{}`, `[1]`, `"19,75"`} {
		var v dto.RateValue
		err := json.Unmarshal([]byte(raw), &v)
		require.Error(t, err, raw)

		var invalid *dto.InvalidRateError
		assert.True(t, errors.As(err, &invalid), raw)
	}
}

func TestRateValue_RejectsOutOfRange(t *testing.T) {
	for _, raw := range []string{
		`"1e-200000000"`,
		`1e2000000`,
		`1e-33`,
		`"100000000"`,
		`99999999.99995`,
		`-100000000`,
		`"` + strings.Repeat("1", 40) + `"`,
	} {
		var v dto.RateValue
		err := json.Unmarshal([]byte(raw), &v)
		require.Error(t, err, raw)

		var invalid *dto.InvalidRateError
		require.True(t, errors.As(err, &invalid), raw)
		assert.LessOrEqual(t, len(invalid.Raw), 40, raw)
		assert.False(t, v.Valid, raw)
	}
}

func TestRateValue_AcceptsColumnBounds(t *testing.T) {
	for _, raw := range []string{`99999999.9999`, `"-99999999.9999"`, `0.0001`, `1E+2`} {
		var v dto.RateValue
		require.NoError(t, json.Unmarshal([]byte(raw), &v), raw)
		assert.True(t, v.Valid, raw)
	}
}

func TestRateValue_QuotedZeroIsPresent(t *testing.T) {
	var v dto.RateValue
	require.NoError(t, json.Unmarshal([]byte(`"0"`), &v))
	assert.True(t, v.Valid)
	assert.True(t, v.Quoted)
	assert.True(t, v.Decimal.IsZero())
}

func TestRateValue_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(dto.NewRateValue(decimal.RequireFromString("19.75")))
	require.NoError(t, err)
	assert.JSONEq(t, `19.75`, string(b))

	b, err = json.Marshal(dto.RateValue{})
	require.NoError(t, err)
	assert.JSONEq(t, `null`, string(b))
}

func TestCreateExchangeRateRequest_RequiredRates(t *testing.T) {
	dto.RegisterValidators()

	decode := func(body string) error {
		var req dto.CreateExchangeRateRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		return binding.Validator.ValidateStruct(&req)
	}

	assert.NoError(t, decode(`{"buy": 19.75, "sell": "20.10"}`))
	assert.NoError(t, decode(`{"buy": "0", "sell": "0.0"}`))

	for _, body := range []string{
		`{"sell": 20.10}`,
		`{"buy": 19.75}`,
		`{"buy": null, "sell": 20.10}`,
		`{"buy": "", "sell": 20.10}`,
		`{"buy": 0, "sell": 20.10}`,
		`{}`,
	} {
		err := decode(body)
		require.Error(t, err, body)
		var verrs validator.ValidationErrors
		assert.True(t, errors.As(err, &verrs), body)
	}
}

func TestResponses_FormatRates(t *testing.T) {
	f := utils.NewLocaleRateFormatter(time.UTC)
	createdAt := time.Date(2026, time.October, 19, 14, 5, 9, 0, time.UTC)
	rate := &domain.ExchangeRate{
		ID:        3,
		BuyRate:   decimal.NewFromFloat(19.75),
		SellRate:  decimal.NewFromInt(20),
		CreatedAt: createdAt,
	}

	latest := dto.ToExchangeRateResponse(rate, f)
	assert.Equal(t, dto.ExchangeRateResponse{Buy: "19.7500", Sell: "20.0000", LastUpdate: "19/10/2026, 14:05:09"}, latest)

	created := dto.ToCreateExchangeRateResponse(rate, f)
	assert.True(t, created.Success)
	assert.Equal(t, latest, created.Data)

	history := dto.ToExchangeRateHistoryResponse([]domain.ExchangeRate{*rate}, f)
	assert.Equal(t, []dto.ExchangeRateHistoryItem{{ID: 3, Buy: "19.7500", Sell: "20.0000", Date: "19/10/2026, 14:05:09"}}, history)
}

func TestHistoryResponse_EmptyEncodesAsArray(t *testing.T) {
	b, err := json.Marshal(dto.ToExchangeRateHistoryResponse(nil, utils.NewLocaleRateFormatter(time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(b))
}

func TestFallbackExchangeRateResponse(t *testing.T) {
	b, err := json.Marshal(dto.FallbackExchangeRateResponse())
	require.NoError(t, err)
	assert.JSONEq(t, `{"buy":"19.8000","sell":"20.2000","lastUpdate":"Sin datos"}`, string(b))
}
