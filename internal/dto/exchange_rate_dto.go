package dto

import (
	"github.com/SscSPs/exchange_rate_board/internal/core/domain"
	"github.com/SscSPs/exchange_rate_board/internal/utils"
)

// Values shown by GetLatest before any rate has been recorded.
const (
	FallbackBuyRate    = "19.8000"
	FallbackSellRate   = "20.2000"
	FallbackLastUpdate = "Sin datos"
)

// CreateExchangeRateRequest defines the structure for creating a new exchange rate.
type CreateExchangeRateRequest struct {
	Buy  RateValue `json:"buy" binding:"required" swaggertype:"number" example:"19.75"`
	Sell RateValue `json:"sell" binding:"required" swaggertype:"number" example:"20.10"`
}

// ExchangeRateResponse is the latest-rate payload.
type ExchangeRateResponse struct {
	Buy        string `json:"buy" example:"19.7500"`
	Sell       string `json:"sell" example:"20.1000"`
	LastUpdate string `json:"lastUpdate" example:"19/10/2026, 14:05:09"`
}

// CreateExchangeRateResponse wraps the stored rate.
type CreateExchangeRateResponse struct {
	Success bool                 `json:"success" example:"true"`
	Data    ExchangeRateResponse `json:"data"`
}

// ExchangeRateHistoryItem is one row of the history listing.
type ExchangeRateHistoryItem struct {
	ID   int64  `json:"id" example:"42"`
	Buy  string `json:"buy" example:"19.7500"`
	Sell string `json:"sell" example:"20.1000"`
	Date string `json:"date" example:"19/10/2026, 14:05:09"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error" example:"Error al obtener datos"`
}

// FallbackExchangeRateResponse is returned when no rate has been recorded.
func FallbackExchangeRateResponse() ExchangeRateResponse {
	return ExchangeRateResponse{
		Buy:        FallbackBuyRate,
		Sell:       FallbackSellRate,
		LastUpdate: FallbackLastUpdate,
	}
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate, f utils.RateFormatter) ExchangeRateResponse {
	return ExchangeRateResponse{
		Buy:        f.FormatRate(rate.BuyRate),
		Sell:       f.FormatRate(rate.SellRate),
		LastUpdate: f.FormatTimestamp(rate.CreatedAt),
	}
}

// ToCreateExchangeRateResponse wraps the stored rate in the create envelope.
func ToCreateExchangeRateResponse(rate *domain.ExchangeRate, f utils.RateFormatter) CreateExchangeRateResponse {
	return CreateExchangeRateResponse{
		Success: true,
		Data:    ToExchangeRateResponse(rate, f),
	}
}

// ToExchangeRateHistoryResponse converts rates to history items, preserving order.
// Always returns a non-nil slice so an empty history encodes as [].
func ToExchangeRateHistoryResponse(rates []domain.ExchangeRate, f utils.RateFormatter) []ExchangeRateHistoryItem {
	items := make([]ExchangeRateHistoryItem, len(rates))
	for i, rate := range rates {
		items[i] = ExchangeRateHistoryItem{
			ID:   rate.ID,
			Buy:  f.FormatRate(rate.BuyRate),
			Sell: f.FormatRate(rate.SellRate),
			Date: f.FormatTimestamp(rate.CreatedAt),
		}
	}
	return items
}
