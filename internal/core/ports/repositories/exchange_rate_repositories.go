package repositories

import (
	"context"

	"github.com/SscSPs/exchange_rate_board/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindLatestExchangeRate retrieves the most recently created rate.
	// Returns apperrors.ErrNotFound when no rate has been recorded.
	FindLatestExchangeRate(ctx context.Context) (*domain.ExchangeRate, error)

	// ListRecentExchangeRates retrieves up to limit rates, newest first.
	ListRecentExchangeRates(ctx context.Context, limit int) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate inserts a new rate and returns it with the store-assigned ID and CreatedAt.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error)
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
// This is a facade for clients that need access to all operations
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
