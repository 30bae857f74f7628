package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/bshiribaiev/hackfest/internal/pkg/logger"
	"github.com/bshiribaiev/hackfest/internal/pkg/models"
	"github.com/bshiribaiev/hackfest/internal/utils"
	"github.com/bshiribaiev/hackfest/services/finance"
)

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	transactionUC finance.TransactionUC
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionUC finance.TransactionUC) *TransactionHandler {
	return &TransactionHandler{transactionUC: transactionUC}
}

// CreateTransaction handles transaction submission requests
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req models.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	tx, err := h.transactionUC.SubmitTransaction(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, finance.ErrValidation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to create transaction",
			logger.String("user_id", req.UserID.String()),
			logger.Err(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to create transaction")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created successfully", tx)
}

// ListTransactions handles transaction listing requests
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid limit")
		}
	}

	transactions, err := h.transactionUC.ListTransactions(c.Request().Context(), userID, limit)
	if err != nil {
		logger.Error("Failed to list transactions", logger.String("user_id", userID.String()), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", transactions)
}

// ListTransactionsByCategory handles per-category transaction listing
func (h *TransactionHandler) ListTransactionsByCategory(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}
	category := c.Param("category")

	transactions, err := h.transactionUC.ListTransactionsByCategory(c.Request().Context(), userID, category)
	if err != nil {
		logger.Error("Failed to list transactions by category",
			logger.String("user_id", userID.String()),
			logger.String("category", category),
			logger.Err(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to list transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", transactions)
}

// FraudCheck handles risk scoring requests for candidate transactions
func (h *TransactionHandler) FraudCheck(c echo.Context) error {
	var req models.FraudCheckRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.transactionUC.ScoreTransaction(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, finance.ErrValidation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to score transaction", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to score transaction")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction scored successfully", result)
}
