// Package dashboard holds the pure derivations behind the dashboard view:
// totals, per-category nets and currency conversion. Everything here is
// recomputed from the fetched transaction list; nothing is cached.
package dashboard

import (
	"github.com/pennypilot-app/pennypilot_backend/internal/core/domain"
	"github.com/pennypilot-app/pennypilot_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// Totals aggregates a transaction list by type, in minor units.
// Net is income minus expense and may be negative.
type Totals struct {
	Income  int64
	Expense int64
	Net     int64
}

// SumByType computes the income/expense/net totals of a list. An empty or
// nil list yields zero totals.
func SumByType(txns []dto.TransactionResponse) Totals {
	var t Totals
	for _, txn := range txns {
		if txn.Type == domain.Income {
			t.Income += txn.Amount
		} else {
			t.Expense += txn.Amount
		}
	}
	t.Net = t.Income - t.Expense
	return t
}

// CategoryNet is the signed net of one category, in major units for display.
type CategoryNet struct {
	Category domain.Category
	Net      decimal.Decimal
}

// GroupByCategory nets each category: incomes contribute positively,
// expenses negatively. Minor units are converted to major (divided by 100)
// for display. Categories with no transactions are omitted; the result
// follows the fixed category display order.
func GroupByCategory(txns []dto.TransactionResponse) []CategoryNet {
	nets := map[domain.Category]int64{}
	for _, txn := range txns {
		signed := txn.Amount
		if txn.Type == domain.Expense {
			signed = -signed
		}
		nets[txn.Category] += signed
	}

	result := []CategoryNet{}
	for _, category := range domain.Categories {
		minor, ok := nets[category]
		if !ok {
			continue
		}
		result = append(result, CategoryNet{
			Category: category,
			Net:      decimal.NewFromInt(minor).Div(decimal.NewFromInt(100)),
		})
	}
	return result
}

// ConvertMinor converts an amount in base-currency minor units to a display
// value in the chosen currency using the fetched rate table. Without a
// fetched table the conversion is unavailable for every currency, USD
// included. With a table, USD is the feed's base and converts at identity
// even when absent from the rate map; an unknown currency yields ok=false —
// the display shows "unavailable", never a computed zero.
func ConvertMinor(amountMinor int64, currency string, table *domain.RateTable) (decimal.Decimal, bool) {
	if table == nil || table.Rates == nil {
		return decimal.Decimal{}, false
	}
	rate := decimal.NewFromInt(1)
	if currency != "USD" {
		r, ok := table.Rates[currency]
		if !ok {
			return decimal.Decimal{}, false
		}
		rate = r
	}
	major := decimal.NewFromInt(amountMinor).Div(decimal.NewFromInt(100))
	return major.Mul(rate), true
}
