package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/exchange_rate_board/internal/apperrors"
	"github.com/SscSPs/exchange_rate_board/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_rate_board/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_rate_board/internal/core/ports/services"
	"github.com/SscSPs/exchange_rate_board/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// HistoryLimit caps how many rates ListExchangeRateHistory returns.
const HistoryLimit = 20

// exchangeRateService provides business logic for exchange rates.
type exchangeRateService struct {
	BaseService
	rateRepo portsrepo.ExchangeRateRepositoryFacade
	metrics  *metrics.Metrics
}

// ExchangeRateOption is a functional option for configuring the exchange rate service
type ExchangeRateOption func(*exchangeRateService)

// WithRateMetrics records created rates and store failures.
func WithRateMetrics(m *metrics.Metrics) ExchangeRateOption {
	return func(s *exchangeRateService) {
		s.metrics = m
	}
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, options ...ExchangeRateOption) portssvc.ExchangeRateSvcFacade {
	svc := &exchangeRateService{
		rateRepo: rateRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// GetLatestExchangeRate returns the most recently created rate.
// apperrors.ErrNotFound is passed through untouched so callers can substitute a fallback.
func (s *exchangeRateService) GetLatestExchangeRate(ctx context.Context) (*domain.ExchangeRate, error) {
	rate, err := s.rateRepo.FindLatestExchangeRate(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "No exchange rates recorded yet")
			return nil, err
		}
		s.recordStoreError("latest")
		s.LogError(ctx, err, "Failed to find latest exchange rate")
		return nil, fmt.Errorf("failed to get latest exchange rate in service: %w", err)
	}
	return rate, nil
}

// CreateExchangeRate persists a new buy/sell pair. Presence is checked by the caller;
// no range or ordering check is applied between buy and sell.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, buy, sell decimal.Decimal) (*domain.ExchangeRate, error) {
	saved, err := s.rateRepo.SaveExchangeRate(ctx, domain.ExchangeRate{
		BuyRate:  buy,
		SellRate: sell,
	})
	if err != nil {
		s.recordStoreError("create")
		s.LogError(ctx, err, "Failed to save exchange rate",
			slog.String("buy", buy.String()),
			slog.String("sell", sell.String()))
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RatesCreatedTotal.Inc()
	}
	s.LogInfo(ctx, "Exchange rate created", slog.Int64("rate_id", saved.ID))
	return saved, nil
}

// ListExchangeRateHistory returns up to HistoryLimit rates, newest first.
func (s *exchangeRateService) ListExchangeRateHistory(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListRecentExchangeRates(ctx, HistoryLimit)
	if err != nil {
		s.recordStoreError("history")
		s.LogError(ctx, err, "Failed to list exchange rate history")
		return nil, fmt.Errorf("failed to list exchange rate history in service: %w", err)
	}
	if len(rates) > HistoryLimit {
		rates = rates[:HistoryLimit]
	}
	return rates, nil
}

func (s *exchangeRateService) recordStoreError(operation string) {
	if s.metrics != nil {
		s.metrics.StoreErrorsTotal.WithLabelValues(operation).Inc()
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)
