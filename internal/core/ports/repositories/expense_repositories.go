package repositories

import (
	"context"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
)

// ExpenseReader defines read operations for expense entries, always company-scoped.
type ExpenseReader interface {
	// ListExpenses retrieves the company's expense entries matching the filter,
	// ordered by creation time descending.
	ListExpenses(ctx context.Context, companyID string, filter domain.EntryFilter) ([]domain.ExpenseEntry, error)
}

// ExpenseWriter defines write operations for expense entries.
type ExpenseWriter interface {
	// SaveExpense persists a new expense entry tagged with its company id.
	SaveExpense(ctx context.Context, entry domain.ExpenseEntry) error

	// DeleteExpense deletes one entry by id, constrained to the owning company.
	DeleteExpense(ctx context.Context, expenseID, companyID string) error

	// DeleteAllExpenses deletes every entry belonging to the given company only.
	DeleteAllExpenses(ctx context.Context, companyID string) (int64, error)
}

// ExpenseRepositoryFacade combines all expense repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
