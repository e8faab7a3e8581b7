package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pledgerhq/pledger_backend/internal/core/domain"
	portssvc "github.com/pledgerhq/pledger_backend/internal/core/ports/services"
	"github.com/pledgerhq/pledger_backend/internal/dto"
	"github.com/pledgerhq/pledger_backend/internal/middleware"
	"github.com/pledgerhq/pledger_backend/internal/platform/dedup"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	txnService portssvc.TransactionSvcFacade
	dedup      *dedup.Registry
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, registry *dedup.Registry) *transactionHandler {
	return &transactionHandler{txnService: ts, dedup: registry}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, txnService portssvc.TransactionSvcFacade, registry *dedup.Registry) {
	h := newTransactionHandler(txnService, registry)

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.createTransaction)
		txns.POST("/transfer", h.createTransfer)
		txns.POST("/batch", h.createTransactionsBatch)
		txns.POST("/bulk-delete", h.deleteTransactions)
		txns.GET("", h.listTransactions)
		txns.GET("/:id", h.getTransaction)
		txns.PUT("/:id", h.updateTransaction)
		txns.DELETE("/:id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Creates a single transaction against an active account
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	txn, err := h.txnService.CreateTransaction(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// createTransfer godoc
// @Summary Create a transfer
// @Description Atomically creates the paired TRANSFER_OUT/TRANSFER_IN rows
// @Tags transactions
// @Accept json
// @Produce json
// @Param transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/transfer [post]
func (h *transactionHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	result, err := h.txnService.CreateTransfer(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, err, "Failed to create transfer")
		return
	}
	c.JSON(http.StatusCreated, result)
}

// createTransactionsBatch godoc
// @Summary Create transactions in bulk
// @Description Validates every record and inserts all of them or none; failures report per-record errors
// @Tags transactions
// @Accept json
// @Produce json
// @Param batch body dto.BatchCreateTransactionsRequest true "Batch of transactions"
// @Success 201 {array} dto.TransactionResponse
// @Failure 400 {object} BatchErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/batch [post]
func (h *transactionHandler) createTransactionsBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BatchCreateTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransactionsBatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	txns, err := h.txnService.CreateTransactionsBatch(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, err, "Failed to create transaction batch")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponses(txns))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists matching transactions; supports month shorthand, date ranges and an incremental-sync cursor
// @Tags transactions
// @Produce json
// @Param accountID query string false "Account ID"
// @Param categoryID query string false "Category ID"
// @Param status query string false "Transaction status"
// @Param type query string false "Transaction type"
// @Param month query string false "YYYY-MM shorthand"
// @Param dateFrom query string false "Inclusive lower bound (RFC 3339)"
// @Param dateTo query string false "Exclusive upper bound (RFC 3339)"
// @Param since query string false "Incremental-sync cursor (RFC 3339)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	key := dedup.Key("transactions.list", ownerID, c.Request.URL.RawQuery)
	v, err := h.dedup.Do(key, func() (interface{}, error) {
		return h.txnService.ListTransactions(c.Request.Context(), ownerID, params)
	})
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(v.([]domain.Transaction)))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Description Retrieves one transaction, soft-deleted or not
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}
	transactionID := c.Param("id")

	key := dedup.Key("transactions.get", ownerID, transactionID)
	v, err := h.dedup.Do(key, func() (interface{}, error) {
		return h.txnService.GetTransactionByID(c.Request.Context(), ownerID, transactionID)
	})
	if err != nil {
		respondError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(v.(*domain.Transaction)))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Applies only the fields present in the payload; an empty payload is a no-op
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	txn, err := h.txnService.UpdateTransaction(c.Request.Context(), ownerID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Soft-deletes the transaction and, for transfer legs, its partner rows; returns every id deleted
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} map[string][]string
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}
	deleted, err := h.txnService.DeleteTransaction(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedIDs": deleted})
}

// deleteTransactions godoc
// @Summary Delete transactions in bulk
// @Description Soft-deletes up to 100 transactions plus their transfer closures
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.BulkDeleteTransactionsRequest true "Transaction ids"
// @Success 200 {object} dto.BulkDeleteResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/bulk-delete [post]
func (h *transactionHandler) deleteTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkDeleteTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for deleteTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	ownerID, ok := mustOwnerID(c)
	if !ok {
		return
	}

	result, err := h.txnService.DeleteTransactions(c.Request.Context(), ownerID, req.TransactionIDs)
	if err != nil {
		respondError(c, err, "Failed to delete transactions")
		return
	}
	c.JSON(http.StatusOK, result)
}
