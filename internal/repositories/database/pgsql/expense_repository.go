package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/apperrors"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	portsrepo "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense entries.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

var FULL_EXPENSE_SELECT_QUERY = `
SELECT
	e.expense_id, e.company_id, e.description, e.category, e.amount,
	e.due_date, e.is_paid, e.created_at, e.created_by, e.last_updated_at, e.last_updated_by
FROM expenses e
`

func (r *PgxExpenseRepository) getExpenses(ctx context.Context, filterQuery string, args ...any) ([]domain.ExpenseEntry, error) {
	query := FULL_EXPENSE_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expenses", err)
	}
	defer rows.Close()

	var entries []domain.ExpenseEntry
	for rows.Next() {
		var e domain.ExpenseEntry
		err := rows.Scan(
			&e.ExpenseID,
			&e.CompanyID,
			&e.Description,
			&e.Category,
			&e.Amount,
			&e.DueDate,
			&e.IsPaid,
			&e.CreatedAt,
			&e.CreatedBy,
			&e.LastUpdatedAt,
			&e.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan expense row", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating expense rows", err)
	}
	if entries == nil {
		return []domain.ExpenseEntry{}, nil
	}
	return entries, nil
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, companyID string, filter domain.EntryFilter) ([]domain.ExpenseEntry, error) {
	if companyID == "" {
		return nil, apperrors.NewValidationFailedError("company id is required")
	}

	whereClause := `WHERE e.company_id = $1`
	args := []any{companyID}

	if filter.Paid != nil {
		args = append(args, *filter.Paid)
		whereClause += fmt.Sprintf(" AND e.is_paid = $%d", len(args))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		whereClause += fmt.Sprintf(" AND e.category = $%d", len(args))
	}
	if filter.HasDateRange() {
		args = append(args, *filter.StartDate)
		whereClause += fmt.Sprintf(" AND e.due_date >= $%d", len(args))
		args = append(args, *filter.EndDate)
		whereClause += fmt.Sprintf(" AND e.due_date <= $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		whereClause += fmt.Sprintf(" AND e.description ILIKE $%d", len(args))
	}

	whereClause += " ORDER BY e.created_at DESC;"

	return r.getExpenses(ctx, whereClause, args...)
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, entry domain.ExpenseEntry) error {
	query := `
		INSERT INTO expenses (
			expense_id, company_id, description, category, amount,
			due_date, is_paid, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.ExpenseID,
		entry.CompanyID,
		entry.Description,
		entry.Category,
		entry.Amount,
		entry.DueDate,
		entry.IsPaid,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return apperrors.NewConflictError("expense ID " + entry.ExpenseID + " already exists")
			}
			if pgErr.Code == "23503" {
				return apperrors.NewValidationFailedError("company does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save expense "+entry.ExpenseID, err)
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID, companyID string) error {
	if companyID == "" {
		return apperrors.NewValidationFailedError("company id is required")
	}
	result, err := r.Pool.Exec(ctx,
		`DELETE FROM expenses WHERE expense_id = $1 AND company_id = $2;`,
		expenseID, companyID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete expense "+expenseID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("expense entry not found")
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteAllExpenses(ctx context.Context, companyID string) (int64, error) {
	if companyID == "" {
		return 0, apperrors.NewValidationFailedError("company id is required")
	}
	result, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE company_id = $1;`, companyID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to delete expenses for company "+companyID, err)
	}
	return result.RowsAffected(), nil
}
