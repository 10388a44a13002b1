package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/services"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/dto"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to expense entries.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{
		expenseService: es,
	}
}

// registerExpenseRoutes registers expense routes nested under a company.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.listExpenses)
		expenses.POST("", h.createExpense)
		expenses.DELETE("/:expense_id", h.deleteExpense)
		expenses.DELETE("", h.deleteAllExpenses)
	}
}

// listExpenses godoc
// @Summary List expense entries
// @Description Lists the company's expense entries, newest first, under optional filters.
// @Tags expenses
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   paid query bool false "Payment state filter"
// @Param   category query string false "Category filter"
// @Param   search query string false "Free-text search on descriptions"
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to list expenses"
// @Security BearerAuth
// @Router /companies/{company_id}/expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	companyID := c.Param("company_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entries, err := h.expenseService.ListExpenses(c.Request.Context(), userID, companyID, parseEntryFilterQuery(c))
	if err != nil {
		respondServiceError(c, err, "Failed to list expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpensesResponse(entries))
}

// createExpense godoc
// @Summary Create an expense entry
// @Description Validates the form input and creates one expense entry for the company.
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   expense body dto.CreateExpenseRequest true "Expense entry details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to create expense"
// @Security BearerAuth
// @Router /companies/{company_id}/expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.expenseService.CreateExpense(c.Request.Context(), userID, companyID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create expense")
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(entry))
}

// deleteExpense godoc
// @Summary Delete an expense entry
// @Description Deletes one expense entry, scoped to the company.
// @Tags expenses
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   expense_id path string true "Expense entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Entry not found in this company"
// @Failure 500 {object} ErrorResponse "Failed to delete expense"
// @Security BearerAuth
// @Router /companies/{company_id}/expenses/{expense_id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	companyID := c.Param("company_id")
	expenseID := c.Param("expense_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), userID, companyID, expenseID); err != nil {
		respondServiceError(c, err, "Failed to delete expense")
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteAllExpenses godoc
// @Summary Delete all expense entries
// @Description Deletes every expense entry of the company (requires admin role). Entries of other companies are never touched.
// @Tags expenses
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Success 200 {object} dto.DeleteAllResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to delete expenses"
// @Security BearerAuth
// @Router /companies/{company_id}/expenses [delete]
func (h *expenseHandler) deleteAllExpenses(c *gin.Context) {
	companyID := c.Param("company_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	deleted, err := h.expenseService.DeleteAllExpenses(c.Request.Context(), userID, companyID)
	if err != nil {
		respondServiceError(c, err, "Failed to delete expenses")
		return
	}

	c.JSON(http.StatusOK, dto.DeleteAllResponse{Deleted: deleted})
}
