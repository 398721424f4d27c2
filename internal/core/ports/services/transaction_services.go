package services

import (
	"context"

	"github.com/pennypilot-app/pennypilot_backend/internal/core/domain"
	"github.com/pennypilot-app/pennypilot_backend/internal/dto"
)

// TransactionSvcFacade defines the business operations on transactions.
// userID is always the verified caller's subject; services never accept an
// owner from request payloads.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}
