package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate mirrors a row of the exchange_rates table.
type ExchangeRate struct {
	ID        int64           `db:"id"`
	BuyRate   decimal.Decimal `db:"buy_rate"`
	SellRate  decimal.Decimal `db:"sell_rate"`
	CreatedAt time.Time       `db:"created_at"` // assigned by the store
}
