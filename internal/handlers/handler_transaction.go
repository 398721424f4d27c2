package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pennypilot-app/pennypilot_backend/internal/apperrors"
	"github.com/pennypilot-app/pennypilot_backend/internal/core/domain"
	portssvc "github.com/pennypilot-app/pennypilot_backend/internal/core/ports/services"
	"github.com/pennypilot-app/pennypilot_backend/internal/dto"
	"github.com/pennypilot-app/pennypilot_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// RegisterTransactionRoutes registers all transaction-related routes.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// filterFromQuery decodes the list query parameters into a filter. Absent
// values, the "all" sentinel and unknown enum values all mean "no
// constraint"; unknown sort values fall back to the default ordering.
func filterFromQuery(c *gin.Context) domain.TransactionFilter {
	filter := domain.TransactionFilter{
		Sort: domain.ParseSortOrder(c.Query("sort")),
	}

	if from := c.Query("from"); from != "" {
		filter.FromDate = &from
	}
	if to := c.Query("to"); to != "" {
		filter.ToDate = &to
	}
	if category := domain.Category(c.Query("category")); category.IsValid() {
		filter.Category = &category
	}
	if txnType := domain.TransactionType(c.Query("type")); txnType.IsValid() {
		filter.Type = &txnType
	}

	return filter
}

// listTransactions godoc
// @Summary List the caller's transactions
// @Description Returns all transactions owned by the authenticated user, optionally filtered by inclusive date bounds, category and type, in the requested sort order
// @Tags transactions
// @Produce  json
// @Param   from query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param   to query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param   category query string false "Category filter ('all' or absent for no filter)"
// @Param   type query string false "Type filter ('all' or absent for no filter)"
// @Param   sort query string false "Sort order: date_desc (default), date_asc, amount_desc, amount_asc"
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	filter := filterFromQuery(c)

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), userID, filter)
	if err != nil {
		logger.Error("Failed to list transactions in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// createTransaction godoc
// @Summary Create a new transaction
// @Description Creates a transaction owned by the authenticated user; any client-supplied owner is ignored
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		}
		return
	}

	logger.Info("Transaction created", slog.String("transaction_id", created.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(created))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Applies a partial update to an owned transaction; the merged result is re-validated. A transaction owned by someone else is reported as not found
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, transactionID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Transaction not found for update", slog.String("transaction_id", transactionID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(updated))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Deletes an owned transaction. A transaction owned by someone else is reported as not found
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, transactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found for delete", slog.String("transaction_id", transactionID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		} else {
			logger.Error("Failed to delete transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
