package dto

import (
	"github.com/pennypilot-app/pennypilot_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RatesResponse is the shape returned by /api/rates, mirroring the upstream
// feed: a base currency and a code → rate map.
type RatesResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// ToRatesResponse converts a domain.RateTable to its wire shape.
func ToRatesResponse(table *domain.RateTable) RatesResponse {
	return RatesResponse{
		Base:  table.Base,
		Rates: table.Rates,
	}
}
