package dto

import (
	"time"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/utils"
)

// --- Expense DTOs ---

// CreateExpenseRequest is the expense form input.
type CreateExpenseRequest struct {
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Value       string `json:"value" binding:"required"`   // localized currency string
	DueDate     string `json:"dueDate" binding:"required"` // YYYY-MM-DD
	IsPaid      bool   `json:"isPaid"`
}

// ExpenseResponse defines data returned for an expense entry.
type ExpenseResponse struct {
	ExpenseID      string    `json:"expenseID"`
	CompanyID      string    `json:"companyID"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Amount         string    `json:"amount"`
	FormattedValue string    `json:"formattedValue"`
	DueDate        string    `json:"dueDate"`
	FormattedDate  string    `json:"formattedDate"`
	IsPaid         bool      `json:"isPaid"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToExpenseResponse converts domain.ExpenseEntry to DTO.
func ToExpenseResponse(e *domain.ExpenseEntry) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:      e.ExpenseID,
		CompanyID:      e.CompanyID,
		Description:    e.Description,
		Category:       string(e.Category),
		Amount:         e.Amount.StringFixed(2),
		FormattedValue: utils.FormatBRL(e.Amount),
		DueDate:        e.DueDate.Format("2006-01-02"),
		FormattedDate:  utils.FormatDateBR(e.DueDate),
		IsPaid:         e.IsPaid,
		CreatedAt:      e.CreatedAt,
	}
}

// ListExpensesResponse wraps a list of expense entries.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToListExpensesResponse converts a slice of domain.ExpenseEntry to DTO.
func ToListExpensesResponse(es []domain.ExpenseEntry) ListExpensesResponse {
	list := make([]ExpenseResponse, len(es))
	for i, e := range es {
		list[i] = ToExpenseResponse(&e)
	}
	return ListExpensesResponse{Expenses: list}
}
