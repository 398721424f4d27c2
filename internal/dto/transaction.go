package dto

import (
	"time"

	"github.com/pennypilot-app/pennypilot_backend/internal/core/domain"
)

// CreateTransactionRequest defines the body for creating a transaction.
// Amount is in minor currency units (cents) and must be non-negative.
type CreateTransactionRequest struct {
	Type     domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Amount   *int64                 `json:"amount" binding:"required,gte=0"`
	Category domain.Category        `json:"category" binding:"required,oneof=groceries rent transport fun utilities other"`
	Note     string                 `json:"note" binding:"omitempty,max=200"`
	Date     string                 `json:"date" binding:"required,datetime=2006-01-02"`
}

// UpdateTransactionRequest defines the body for updating a transaction.
// All fields are optional; nil means "keep the current value". The merged
// result is re-validated by the service against the same constraints as
// creation.
type UpdateTransactionRequest struct {
	Type     *domain.TransactionType `json:"type" binding:"omitempty,oneof=income expense"`
	Amount   *int64                  `json:"amount" binding:"omitempty,gte=0"`
	Category *domain.Category        `json:"category" binding:"omitempty,oneof=groceries rent transport fun utilities other"`
	Note     *string                 `json:"note" binding:"omitempty,max=200"`
	Date     *string                 `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// TransactionResponse is the wire shape of a transaction. The owner ID is
// deliberately not exposed; every returned transaction belongs to the caller.
type TransactionResponse struct {
	ID        string                 `json:"id"`
	Type      domain.TransactionType `json:"type"`
	Amount    int64                  `json:"amount"`
	Category  domain.Category        `json:"category"`
	Note      string                 `json:"note"`
	Date      string                 `json:"date"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to its wire shape.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        txn.TransactionID,
		Type:      txn.Type,
		Amount:    txn.Amount,
		Category:  txn.Category,
		Note:      txn.Note,
		Date:      txn.Date,
		CreatedAt: txn.CreatedAt,
		UpdatedAt: txn.UpdatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain transactions.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
