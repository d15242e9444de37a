package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a buy/sell price pair recorded at CreatedAt.
// Rows are immutable once stored.
type ExchangeRate struct {
	ID        int64           `json:"id"`
	BuyRate   decimal.Decimal `json:"buyRate"`
	SellRate  decimal.Decimal `json:"sellRate"`
	CreatedAt time.Time       `json:"createdAt"`
}
