package pgsql

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pennypilot-app/pennypilot_backend/internal/apperrors"
	"github.com/pennypilot-app/pennypilot_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// psql builds queries with PostgreSQL-style $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PgxTransactionRepository implements the transaction repository ports using
// pgxpool. Every query carries the owner's user_id in its WHERE clause; an
// unowned row is reported as not found.
type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

// NewTransactionRepository creates a new PgxTransactionRepository.
func NewTransactionRepository(db *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{db: db}
}

// SaveTransaction inserts a new transaction and returns the stored row with
// its database-assigned timestamps.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, userID string, txn domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (
			transaction_id, user_id, type, amount, category, note, date
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`
	stored := txn
	stored.UserID = userID
	err := r.db.QueryRow(ctx, query,
		stored.TransactionID, userID, stored.Type, stored.Amount, stored.Category, stored.Note, stored.Date,
	).Scan(&stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error inserting transaction: %w", err)
	}
	return &stored, nil
}

// FindTransactionByID retrieves a single transaction owned by userID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, user_id, type, amount, category, note, date, created_at, updated_at
		FROM transactions
		WHERE transaction_id = $1 AND user_id = $2
	`
	txn := &domain.Transaction{}
	err := r.db.QueryRow(ctx, query, transactionID, userID).Scan(
		&txn.TransactionID, &txn.UserID, &txn.Type, &txn.Amount, &txn.Category, &txn.Note, &txn.Date,
		&txn.CreatedAt, &txn.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding transaction: %w", err)
	}
	return txn, nil
}

// ListTransactions retrieves all transactions owned by userID matching the
// filter. Date bounds are inclusive; unknown sort values were already folded
// into the default by the caller.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	builder := psql.
		Select("transaction_id", "user_id", "type", "amount", "category", "note", "date", "created_at", "updated_at").
		From("transactions").
		Where(sq.Eq{"user_id": userID})

	if filter.FromDate != nil {
		builder = builder.Where(sq.GtOrEq{"date": *filter.FromDate})
	}
	if filter.ToDate != nil {
		builder = builder.Where(sq.LtOrEq{"date": *filter.ToDate})
	}
	if filter.Category != nil {
		builder = builder.Where(sq.Eq{"category": *filter.Category})
	}
	if filter.Type != nil {
		builder = builder.Where(sq.Eq{"type": *filter.Type})
	}

	switch filter.Sort {
	case domain.SortDateAsc:
		builder = builder.OrderBy("date ASC")
	case domain.SortAmountDesc:
		builder = builder.OrderBy("amount DESC")
	case domain.SortAmountAsc:
		builder = builder.OrderBy("amount ASC")
	default:
		builder = builder.OrderBy("date DESC")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building transaction list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		var txn domain.Transaction
		if err := rows.Scan(
			&txn.TransactionID, &txn.UserID, &txn.Type, &txn.Amount, &txn.Category, &txn.Note, &txn.Date,
			&txn.CreatedAt, &txn.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning transaction row: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// UpdateTransaction replaces the mutable fields of an owned transaction and
// refreshes its updated_at timestamp.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, userID string, txn domain.Transaction) (*domain.Transaction, error) {
	query := `
		UPDATE transactions
		SET type = $1, amount = $2, category = $3, note = $4, date = $5, updated_at = now()
		WHERE transaction_id = $6 AND user_id = $7
		RETURNING created_at, updated_at
	`
	updated := txn
	updated.UserID = userID
	err := r.db.QueryRow(ctx, query,
		updated.Type, updated.Amount, updated.Category, updated.Note, updated.Date,
		updated.TransactionID, userID,
	).Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error updating transaction: %w", err)
	}
	return &updated, nil
}

// DeleteTransaction removes an owned transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, transactionID, userID)
	if err != nil {
		return fmt.Errorf("error deleting transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
