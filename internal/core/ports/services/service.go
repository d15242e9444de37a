package services

import "context"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	ExchangeRate ExchangeRateSvcFacade
	Health       HealthSvc
}

// HealthSvc reports service readiness.
type HealthSvc interface {
	CheckHealth(ctx context.Context) error
}
