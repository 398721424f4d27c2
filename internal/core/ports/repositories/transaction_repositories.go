package repositories

import (
	"context"

	"github.com/pennypilot-app/pennypilot_backend/internal/core/domain"
)

// Every method takes the owner's userID as an explicit parameter. Owner
// scoping is the only access-control invariant in the system, so it is never
// optional and never inferred from the entity.

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction owned by userID.
	// Returns apperrors.ErrNotFound when no such owned transaction exists.
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
	// ListTransactions retrieves all transactions owned by userID matching
	// the filter, in the filter's sort order.
	ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction for userID and returns the
	// stored row including database-assigned timestamps.
	SaveTransaction(ctx context.Context, userID string, txn domain.Transaction) (*domain.Transaction, error)
	// UpdateTransaction replaces the mutable fields of an owned transaction.
	// Returns apperrors.ErrNotFound when no such owned transaction exists.
	UpdateTransaction(ctx context.Context, userID string, txn domain.Transaction) (*domain.Transaction, error)
	// DeleteTransaction removes an owned transaction.
	// Returns apperrors.ErrNotFound when no such owned transaction exists.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
