package domain

import "github.com/shopspring/decimal"

// RateTable is a snapshot of exchange rates relative to a base currency,
// as published by the external rate feed. Rates map a currency code to the
// amount of that currency one unit of the base buys.
type RateTable struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}
