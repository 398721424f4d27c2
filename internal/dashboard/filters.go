package dashboard

import (
	"net/url"

	"github.com/pennypilot-app/pennypilot_backend/internal/core/domain"
)

// Filters is the dashboard's list filter state. Nil category/type mean "no
// filter" — the wire sentinel "all" only appears at the query-string
// boundary, never in this struct.
type Filters struct {
	From     string
	To       string
	Category *domain.Category
	Type     *domain.TransactionType
	Sort     domain.SortOrder
}

// DefaultFilters returns the initial filter state: unbounded dates, no
// category/type constraint, newest first.
func DefaultFilters() Filters {
	return Filters{Sort: domain.SortDateDesc}
}

// Query encodes the filter state as list query parameters. Absent
// constraints are encoded as the "all" sentinel the API understands.
func (f Filters) Query() url.Values {
	q := url.Values{}
	q.Set("from", f.From)
	q.Set("to", f.To)
	if f.Category != nil {
		q.Set("category", string(*f.Category))
	} else {
		q.Set("category", "all")
	}
	if f.Type != nil {
		q.Set("type", string(*f.Type))
	} else {
		q.Set("type", "all")
	}
	sort := f.Sort
	if sort == "" {
		sort = domain.SortDateDesc
	}
	q.Set("sort", string(sort))
	return q
}
