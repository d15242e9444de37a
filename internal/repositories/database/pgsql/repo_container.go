package pgsql

import (
	portsrepo "github.com/SscSPs/exchange_rate_board/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository onto a single pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	exchangeRateRepo := NewPgxExchangeRateRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ExchangeRateRepo: exchangeRateRepo,
		Health:           &exchangeRateRepo.BaseRepository,
	}
}
