package services

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/exchange_rate_board/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_rate_board/internal/core/ports/services"
)

type healthService struct {
	BaseService
	checker portsrepo.HealthChecker
}

// NewHealthService reports readiness based on store reachability.
func NewHealthService(checker portsrepo.HealthChecker) portssvc.HealthSvc {
	return &healthService{checker: checker}
}

func (s *healthService) CheckHealth(ctx context.Context) error {
	if s.checker == nil {
		return nil
	}
	if err := s.checker.Ping(ctx); err != nil {
		s.LogError(ctx, err, "Store health check failed")
		return fmt.Errorf("store unreachable: %w", err)
	}
	return nil
}
