package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bshiribaiev/hackfest/services/finance/handler/http"
)

// Handler coordinates all HTTP handlers for the finance service
type Handler struct {
	studentHandler     *http.StudentHandler
	transactionHandler *http.TransactionHandler
	budgetHandler      *http.BudgetHandler
	adviceHandler      *http.AdviceHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(
	studentHandler *http.StudentHandler,
	transactionHandler *http.TransactionHandler,
	budgetHandler *http.BudgetHandler,
	adviceHandler *http.AdviceHandler,
) *Handler {
	return &Handler{
		studentHandler:     studentHandler,
		transactionHandler: transactionHandler,
		budgetHandler:      budgetHandler,
		adviceHandler:      adviceHandler,
	}
}

// RegisterRoutes registers all finance routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	// Student routes
	studentGroup := api.Group("/students")
	studentGroup.POST("", h.studentHandler.CreateStudent)
	studentGroup.GET("", h.studentHandler.ListStudents)
	studentGroup.GET("/:id", h.studentHandler.GetStudent)
	studentGroup.GET("/:id/profile", h.studentHandler.GetStudentProfile)

	// Transaction routes
	txnGroup := api.Group("/transactions")
	txnGroup.POST("", h.transactionHandler.CreateTransaction)
	txnGroup.GET("/:user_id", h.transactionHandler.ListTransactions)
	txnGroup.GET("/:user_id/category/:category", h.transactionHandler.ListTransactionsByCategory)

	// Fraud check route
	api.POST("/fraud-check", h.transactionHandler.FraudCheck)

	// Budget routes
	budgetGroup := api.Group("/budgets")
	budgetGroup.POST("", h.budgetHandler.CreateBudget)
	budgetGroup.GET("/user/:user_id", h.budgetHandler.ListBudgets)
	budgetGroup.GET("/user/:user_id/tracker", h.budgetHandler.SpendingTracker)
	budgetGroup.PUT("/:budget_id", h.budgetHandler.UpdateBudget)
	budgetGroup.DELETE("/:budget_id", h.budgetHandler.DeleteBudget)

	// Advice route
	api.POST("/advice", h.adviceHandler.Advise)
}
