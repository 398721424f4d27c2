package dashboard

import (
	"testing"

	"github.com/pennypilot-app/pennypilot_backend/internal/core/domain"
	"github.com/pennypilot-app/pennypilot_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func txn(t domain.TransactionType, amount int64, category domain.Category) dto.TransactionResponse {
	return dto.TransactionResponse{Type: t, Amount: amount, Category: category}
}

func TestSumByType_Empty(t *testing.T) {
	totals := SumByType(nil)
	assert.Equal(t, Totals{}, totals)

	totals = SumByType([]dto.TransactionResponse{})
	assert.Equal(t, Totals{}, totals)
}

func TestSumByType_Mixed(t *testing.T) {
	totals := SumByType([]dto.TransactionResponse{
		txn(domain.Income, 100000, domain.CategoryOther),
		txn(domain.Expense, 25050, domain.CategoryGroceries),
		txn(domain.Expense, 80000, domain.CategoryRent),
	})

	assert.Equal(t, int64(100000), totals.Income)
	assert.Equal(t, int64(105050), totals.Expense)
	assert.Equal(t, int64(-5050), totals.Net)
	assert.Equal(t, totals.Income-totals.Expense, totals.Net)
}

func TestGroupByCategory_SignsAndUnits(t *testing.T) {
	nets := GroupByCategory([]dto.TransactionResponse{
		txn(domain.Expense, 25050, domain.CategoryGroceries),
		txn(domain.Income, 5000, domain.CategoryGroceries),
		txn(domain.Expense, 80000, domain.CategoryRent),
	})

	assert.Len(t, nets, 2)
	// Expense-heavy groceries net negative, in major units.
	assert.Equal(t, domain.CategoryGroceries, nets[0].Category)
	assert.True(t, nets[0].Net.Equal(decimal.RequireFromString("-200.50")), "got %s", nets[0].Net)
	assert.Equal(t, domain.CategoryRent, nets[1].Category)
	assert.True(t, nets[1].Net.Equal(decimal.RequireFromString("-800")), "got %s", nets[1].Net)
}

func TestGroupByCategory_FollowsDisplayOrder(t *testing.T) {
	// Insert in reverse display order; output must follow the fixed order.
	nets := GroupByCategory([]dto.TransactionResponse{
		txn(domain.Expense, 100, domain.CategoryOther),
		txn(domain.Expense, 100, domain.CategoryFun),
		txn(domain.Expense, 100, domain.CategoryGroceries),
	})

	assert.Equal(t, []domain.Category{
		domain.CategoryGroceries, domain.CategoryFun, domain.CategoryOther,
	}, []domain.Category{nets[0].Category, nets[1].Category, nets[2].Category})
}

func TestGroupByCategory_OmitsEmptyCategories(t *testing.T) {
	nets := GroupByCategory([]dto.TransactionResponse{
		txn(domain.Income, 100, domain.CategoryRent),
	})

	assert.Len(t, nets, 1)
	assert.Equal(t, domain.CategoryRent, nets[0].Category)
	assert.True(t, nets[0].Net.Equal(decimal.NewFromInt(1)))
}

func TestConvertMinor_USDIdentity(t *testing.T) {
	// USD converts at identity even when the fetched table omits it.
	table := &domain.RateTable{
		Base:  "USD",
		Rates: map[string]decimal.Decimal{"EUR": decimal.RequireFromString("0.9")},
	}

	v, ok := ConvertMinor(12345, "USD", table)
	assert.True(t, ok)
	assert.True(t, v.Equal(decimal.RequireFromString("123.45")), "got %s", v)
}

func TestConvertMinor_NoTableUnavailableForEveryCurrency(t *testing.T) {
	// Before the rate fetch completes there is nothing to convert with,
	// not even at the USD identity rate.
	_, ok := ConvertMinor(12345, "USD", nil)
	assert.False(t, ok)

	_, ok = ConvertMinor(12345, "USD", &domain.RateTable{Base: "USD"})
	assert.False(t, ok)
}

func TestConvertMinor_KnownRate(t *testing.T) {
	table := &domain.RateTable{
		Base:  "USD",
		Rates: map[string]decimal.Decimal{"EUR": decimal.RequireFromString("0.9")},
	}

	v, ok := ConvertMinor(10000, "EUR", table)
	assert.True(t, ok)
	assert.True(t, v.Equal(decimal.NewFromInt(90)), "got %s", v)
}

func TestConvertMinor_Unavailable(t *testing.T) {
	table := &domain.RateTable{Base: "USD", Rates: map[string]decimal.Decimal{}}

	_, ok := ConvertMinor(10000, "EUR", table)
	assert.False(t, ok)

	_, ok = ConvertMinor(10000, "EUR", nil)
	assert.False(t, ok)

	_, ok = ConvertMinor(10000, "EUR", &domain.RateTable{Base: "USD"})
	assert.False(t, ok)
}

func TestDefaultFilters(t *testing.T) {
	f := DefaultFilters()
	assert.Empty(t, f.From)
	assert.Empty(t, f.To)
	assert.Nil(t, f.Category)
	assert.Nil(t, f.Type)
	assert.Equal(t, domain.SortDateDesc, f.Sort)
}

func TestFiltersQuery_Defaults(t *testing.T) {
	q := DefaultFilters().Query()

	assert.Equal(t, "all", q.Get("category"))
	assert.Equal(t, "all", q.Get("type"))
	assert.Equal(t, string(domain.SortDateDesc), q.Get("sort"))
}

func TestFiltersQuery_Constrained(t *testing.T) {
	category := domain.CategoryTransport
	txnType := domain.Expense
	f := Filters{
		From:     "2024-01-01",
		To:       "2024-06-30",
		Category: &category,
		Type:     &txnType,
		Sort:     domain.SortAmountAsc,
	}

	q := f.Query()
	assert.Equal(t, "2024-01-01", q.Get("from"))
	assert.Equal(t, "2024-06-30", q.Get("to"))
	assert.Equal(t, "transport", q.Get("category"))
	assert.Equal(t, "expense", q.Get("type"))
	assert.Equal(t, "amount_asc", q.Get("sort"))
}

func TestFiltersQuery_EmptySortFallsBack(t *testing.T) {
	q := Filters{}.Query()
	assert.Equal(t, string(domain.SortDateDesc), q.Get("sort"))
}
