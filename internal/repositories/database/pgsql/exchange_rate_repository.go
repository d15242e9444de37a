package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/exchange_rate_board/internal/apperrors"
	"github.com/SscSPs/exchange_rate_board/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_rate_board/internal/core/ports/repositories"
	"github.com/SscSPs/exchange_rate_board/internal/models"
	"github.com/SscSPs/exchange_rate_board/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository implements the ExchangeRateRepositoryFacade interface using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// NewPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SaveExchangeRate inserts a new rate. id and created_at are assigned by the database
// and read back in the same statement.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	modelRate := mapping.ToModelExchangeRate(rate)

	var saved models.ExchangeRate
	err := r.Pool.QueryRow(ctx, insertExchangeRateQuery, modelRate.BuyRate, modelRate.SellRate).Scan(
		&saved.ID, &saved.BuyRate, &saved.SellRate, &saved.CreatedAt,
	)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to insert exchange rate", err)
	}

	domainRate := mapping.ToDomainExchangeRate(saved)
	return &domainRate, nil
}

// FindLatestExchangeRate retrieves the most recent exchange rate.
func (r *PgxExchangeRateRepository) FindLatestExchangeRate(ctx context.Context) (*domain.ExchangeRate, error) {
	var modelRate models.ExchangeRate
	err := r.Pool.QueryRow(ctx, findLatestExchangeRateQuery).Scan(
		&modelRate.ID, &modelRate.BuyRate, &modelRate.SellRate, &modelRate.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no exchange rates recorded")
		}
		return nil, apperrors.NewStoreError("failed to find latest exchange rate", err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// ListRecentExchangeRates retrieves up to limit rates ordered by created_at descending.
func (r *PgxExchangeRateRepository) ListRecentExchangeRates(ctx context.Context, limit int) ([]domain.ExchangeRate, error) {
	rows, err := r.Pool.Query(ctx, listRecentExchangeRatesQuery, limit)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to list exchange rates", err)
	}

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		var m models.ExchangeRate
		err := row.Scan(&m.ID, &m.BuyRate, &m.SellRate, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, apperrors.NewStoreError("failed to scan exchange rates", err)
	}

	return mapping.ToDomainExchangeRates(modelRates), nil
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)
