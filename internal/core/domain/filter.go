package domain

// SortOrder enumerates the supported orderings for transaction lists.
type SortOrder string

const (
	SortDateDesc   SortOrder = "date_desc" // default
	SortDateAsc    SortOrder = "date_asc"
	SortAmountDesc SortOrder = "amount_desc"
	SortAmountAsc  SortOrder = "amount_asc"
)

// ParseSortOrder maps a wire value to a SortOrder. Unknown or empty values
// fall back to the default date-descending order.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortDateAsc, SortAmountDesc, SortAmountAsc:
		return SortOrder(s)
	default:
		return SortDateDesc
	}
}

// TransactionFilter constrains a transaction list query. Nil fields mean "no
// constraint"; the wire sentinel "all" never reaches this struct. Date bounds
// are inclusive and compared lexically, which is correct for ISO dates.
type TransactionFilter struct {
	FromDate *string
	ToDate   *string
	Category *Category
	Type     *TransactionType
	Sort     SortOrder
}
