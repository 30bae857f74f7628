package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/bshiribaiev/hackfest/internal/pkg/logger"
	"github.com/bshiribaiev/hackfest/internal/pkg/models"
	"github.com/bshiribaiev/hackfest/internal/utils"
	"github.com/bshiribaiev/hackfest/services/finance"
)

// BudgetHandler handles HTTP requests for budget operations
type BudgetHandler struct {
	budgetUC finance.BudgetUC
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetUC finance.BudgetUC) *BudgetHandler {
	return &BudgetHandler{budgetUC: budgetUC}
}

// CreateBudget handles budget creation requests
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	var req models.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	budget, err := h.budgetUC.CreateBudget(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, finance.ErrBudgetExists):
			return utils.ConflictResponse(c, err.Error())
		case errors.Is(err, finance.ErrValidation):
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to create budget",
			logger.String("user_id", req.UserID.String()),
			logger.Err(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to create budget")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Budget created successfully", budget)
}

// ListBudgets handles budget listing requests
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	budgets, err := h.budgetUC.ListBudgets(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list budgets", logger.String("user_id", userID.String()), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list budgets")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Budgets retrieved successfully", budgets)
}

// updateBudgetRequest is the payload for limit updates
type updateBudgetRequest struct {
	LimitAmount float64 `json:"limit_amount"`
}

// UpdateBudget handles budget limit update requests
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	budgetID, err := uuid.Parse(c.Param("budget_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid budget ID")
	}

	var req updateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	budget, err := h.budgetUC.UpdateBudgetLimit(c.Request().Context(), budgetID, req.LimitAmount)
	if err != nil {
		switch {
		case errors.Is(err, finance.ErrBudgetNotFound):
			return utils.NotFoundResponse(c, "Budget not found")
		case errors.Is(err, finance.ErrValidation):
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to update budget", logger.String("budget_id", budgetID.String()), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update budget")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Budget updated successfully", budget)
}

// DeleteBudget handles budget deletion requests
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	budgetID, err := uuid.Parse(c.Param("budget_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid budget ID")
	}

	if err := h.budgetUC.DeleteBudget(c.Request().Context(), budgetID); err != nil {
		if errors.Is(err, finance.ErrBudgetNotFound) {
			return utils.NotFoundResponse(c, "Budget not found")
		}
		logger.Error("Failed to delete budget", logger.String("budget_id", budgetID.String()), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to delete budget")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Budget deleted successfully", nil)
}

// SpendingTracker handles budget rollup requests
func (h *BudgetHandler) SpendingTracker(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	tracker, err := h.budgetUC.SpendingTracker(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to build spending tracker", logger.String("user_id", userID.String()), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to build spending tracker")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Spending tracker retrieved successfully", tracker)
}
