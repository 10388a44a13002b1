package services

import (
	"context"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/dto"
)

// ExpenseReaderSvc defines read operations for expense entries.
type ExpenseReaderSvc interface {
	// ListExpenses fetches the expense entries for the active company under the
	// given filter; empty companyID returns an empty list with no error.
	ListExpenses(ctx context.Context, userID, companyID string, filter domain.EntryFilter) ([]domain.ExpenseEntry, error)
}

// ExpenseWriterSvc defines mutation operations for expense entries.
type ExpenseWriterSvc interface {
	// CreateExpense validates the form input and inserts one entry tagged with
	// the company id. Validation failures never reach the repository.
	CreateExpense(ctx context.Context, userID, companyID string, req dto.CreateExpenseRequest) (*domain.ExpenseEntry, error)

	// DeleteExpense deletes a single entry, scoped to the company id.
	DeleteExpense(ctx context.Context, userID, companyID, expenseID string) error

	// DeleteAllExpenses deletes every entry of the company; never crosses tenants.
	DeleteAllExpenses(ctx context.Context, userID, companyID string) (int64, error)
}

// ExpenseSvcFacade combines all expense service interfaces.
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
