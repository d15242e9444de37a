package services

import (
	"context"

	"github.com/SscSPs/exchange_rate_board/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetLatestExchangeRate retrieves the most recent rate, or apperrors.ErrNotFound.
	GetLatestExchangeRate(ctx context.Context) (*domain.ExchangeRate, error)

	// ListExchangeRateHistory retrieves the most recent rates, newest first.
	ListExchangeRateHistory(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate persists a new buy/sell pair.
	CreateExchangeRate(ctx context.Context, buy, sell decimal.Decimal) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
