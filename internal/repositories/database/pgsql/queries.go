package pgsql

const (
	insertExchangeRateQuery = `
		INSERT INTO exchange_rates (buy_rate, sell_rate)
		VALUES ($1, $2)
		RETURNING id, buy_rate, sell_rate, created_at
	`

	findLatestExchangeRateQuery = `
		SELECT id, buy_rate, sell_rate, created_at
		FROM exchange_rates
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	listRecentExchangeRatesQuery = `
		SELECT id, buy_rate, sell_rate, created_at
		FROM exchange_rates
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
)
