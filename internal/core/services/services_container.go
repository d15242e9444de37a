package services

import (
	portsrepo "github.com/SscSPs/exchange_rate_board/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_rate_board/internal/core/ports/services"
	"github.com/SscSPs/exchange_rate_board/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		ExchangeRate: NewExchangeRateService(repos.ExchangeRateRepo, WithRateMetrics(m)),
		Health:       NewHealthService(repos.Health),
	}
}
