package domain

import "time"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// IsValid checks whether the type is one of the known enumeration values.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Category is the fixed spending/earning bucket a transaction belongs to.
type Category string

const (
	CategoryGroceries Category = "groceries"
	CategoryRent      Category = "rent"
	CategoryTransport Category = "transport"
	CategoryFun       Category = "fun"
	CategoryUtilities Category = "utilities"
	CategoryOther     Category = "other"
)

// Categories lists every valid category, in display order.
var Categories = []Category{
	CategoryGroceries,
	CategoryRent,
	CategoryTransport,
	CategoryFun,
	CategoryUtilities,
	CategoryOther,
}

// IsValid checks whether the category is one of the known enumeration values.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Transaction is a single income or expense entry owned by one user.
// Amount is an integer count of minor currency units (cents); clients divide
// by 100 for display. Date is a lexically comparable "YYYY-MM-DD" string.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	UserID        string          `json:"userID"` // provider subject of the owner, set once at creation
	Type          TransactionType `json:"type"`
	Amount        int64           `json:"amount"`
	Category      Category        `json:"category"`
	Note          string          `json:"note"`
	Date          string          `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
