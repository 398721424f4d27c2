package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pennypilot-app/pennypilot_backend/internal/apperrors"
	"github.com/pennypilot-app/pennypilot_backend/internal/core/domain"
	portsrepo "github.com/pennypilot-app/pennypilot_backend/internal/core/ports/repositories"
	portssvc "github.com/pennypilot-app/pennypilot_backend/internal/core/ports/services"
	"github.com/pennypilot-app/pennypilot_backend/internal/dto"
	"github.com/google/uuid"
)

const maxNoteLength = 200

// transactionService provides business logic for transactions.
type transactionService struct {
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service backed by the given
// repository.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

// validateTransaction re-checks the full constraint set on a transaction.
// DTO binding already rejects most bad input, but updates merge fields before
// persisting, so the merged result is validated here regardless of source.
func validateTransaction(txn *domain.Transaction) error {
	if !txn.Type.IsValid() {
		return fmt.Errorf("%w: type must be 'income' or 'expense'", apperrors.ErrValidation)
	}
	if txn.Amount < 0 {
		return fmt.Errorf("%w: amount must be non-negative", apperrors.ErrValidation)
	}
	if !txn.Category.IsValid() {
		return fmt.Errorf("%w: unknown category '%s'", apperrors.ErrValidation, txn.Category)
	}
	if len(txn.Note) > maxNoteLength {
		return fmt.Errorf("%w: note must be at most %d characters", apperrors.ErrValidation, maxNoteLength)
	}
	if _, err := time.Parse("2006-01-02", txn.Date); err != nil {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD form", apperrors.ErrValidation)
	}
	return nil
}

// CreateTransaction validates the request and persists a new transaction
// owned by userID. Any owner information in the request is ignored; the
// verified identity is the only source of ownership.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Type:          req.Type,
		Amount:        *req.Amount,
		Category:      req.Category,
		Note:          req.Note,
		Date:          req.Date,
	}

	if err := validateTransaction(&txn); err != nil {
		return nil, err
	}

	created, err := s.txnRepo.SaveTransaction(ctx, userID, txn)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction in service: %w", err)
	}
	return created, nil
}

// ListTransactions returns the caller's transactions matching the filter.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if filter.Sort == "" {
		filter.Sort = domain.SortDateDesc
	}
	txns, err := s.txnRepo.ListTransactions(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}
	return txns, nil
}

// UpdateTransaction merges the partial request into the stored transaction,
// re-validates the result and persists it. A transaction owned by another
// user is indistinguishable from a missing one: both yield ErrNotFound.
func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	existing, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if req.Type != nil {
		merged.Type = *req.Type
	}
	if req.Amount != nil {
		merged.Amount = *req.Amount
	}
	if req.Category != nil {
		merged.Category = *req.Category
	}
	if req.Note != nil {
		merged.Note = *req.Note
	}
	if req.Date != nil {
		merged.Date = *req.Date
	}

	if err := validateTransaction(&merged); err != nil {
		return nil, err
	}

	updated, err := s.txnRepo.UpdateTransaction(ctx, userID, merged)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTransaction removes an owned transaction, or returns ErrNotFound.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	return s.txnRepo.DeleteTransaction(ctx, userID, transactionID)
}
