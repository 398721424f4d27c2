package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionTypeIsValid(t *testing.T) {
	assert.True(t, Income.IsValid())
	assert.True(t, Expense.IsValid())
	assert.False(t, TransactionType("transfer").IsValid())
	assert.False(t, TransactionType("").IsValid())
}

func TestCategoryIsValid(t *testing.T) {
	for _, category := range Categories {
		assert.True(t, category.IsValid(), "category %q should be valid", category)
	}
	assert.False(t, Category("yachts").IsValid())
	assert.False(t, Category("").IsValid())
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, SortDateDesc, ParseSortOrder("date_desc"))
	assert.Equal(t, SortDateAsc, ParseSortOrder("date_asc"))
	assert.Equal(t, SortAmountDesc, ParseSortOrder("amount_desc"))
	assert.Equal(t, SortAmountAsc, ParseSortOrder("amount_asc"))

	// Anything unrecognized falls back to newest-first.
	assert.Equal(t, SortDateDesc, ParseSortOrder("sideways"))
	assert.Equal(t, SortDateDesc, ParseSortOrder(""))
}
