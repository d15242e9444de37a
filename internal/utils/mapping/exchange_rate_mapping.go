package mapping

import (
	"github.com/SscSPs/exchange_rate_board/internal/core/domain"
	"github.com/SscSPs/exchange_rate_board/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ID:        d.ID,
		BuyRate:   d.BuyRate,
		SellRate:  d.SellRate,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ID:        m.ID,
		BuyRate:   m.BuyRate,
		SellRate:  m.SellRate,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainExchangeRates converts a slice of model rows, preserving order.
func ToDomainExchangeRates(ms []models.ExchangeRate) []domain.ExchangeRate {
	rates := make([]domain.ExchangeRate, len(ms))
	for i, m := range ms {
		rates[i] = ToDomainExchangeRate(m)
	}
	return rates
}
