package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/apperrors"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	portsrepo "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRevenueRepository struct {
	BaseRepository
}

// newPgxRevenueRepository creates a new repository for revenue entries.
func newPgxRevenueRepository(pool *pgxpool.Pool) portsrepo.RevenueRepositoryFacade {
	return &PgxRevenueRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RevenueRepositoryFacade = (*PgxRevenueRepository)(nil)

var FULL_REVENUE_SELECT_QUERY = `
SELECT
	r.revenue_id, r.company_id, r.service_name, r.client_name, r.amount,
	r.service_date, r.status, r.created_at, r.created_by, r.last_updated_at, r.last_updated_by
FROM revenues r
`

func (r *PgxRevenueRepository) getRevenues(ctx context.Context, filterQuery string, args ...any) ([]domain.RevenueEntry, error) {
	query := FULL_REVENUE_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query revenues", err)
	}
	defer rows.Close()

	var entries []domain.RevenueEntry
	for rows.Next() {
		var e domain.RevenueEntry
		err := rows.Scan(
			&e.RevenueID,
			&e.CompanyID,
			&e.ServiceName,
			&e.ClientName,
			&e.Amount,
			&e.ServiceDate,
			&e.Status,
			&e.CreatedAt,
			&e.CreatedBy,
			&e.LastUpdatedAt,
			&e.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan revenue row", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating revenue rows", err)
	}
	if entries == nil {
		return []domain.RevenueEntry{}, nil
	}
	return entries, nil
}

// ListRevenues builds the scoped query: company id always first, then the
// optional filter clauses, newest created first.
func (r *PgxRevenueRepository) ListRevenues(ctx context.Context, companyID string, filter domain.EntryFilter) ([]domain.RevenueEntry, error) {
	if companyID == "" {
		return nil, apperrors.NewValidationFailedError("company id is required")
	}

	whereClause := `WHERE r.company_id = $1`
	args := []any{companyID}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		whereClause += fmt.Sprintf(" AND r.status = $%d", len(args))
	}
	if filter.HasDateRange() {
		args = append(args, *filter.StartDate)
		whereClause += fmt.Sprintf(" AND r.service_date >= $%d", len(args))
		args = append(args, *filter.EndDate)
		whereClause += fmt.Sprintf(" AND r.service_date <= $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		whereClause += fmt.Sprintf(" AND (r.service_name ILIKE $%d OR r.client_name ILIKE $%d)", len(args), len(args))
	}

	whereClause += " ORDER BY r.created_at DESC;"

	return r.getRevenues(ctx, whereClause, args...)
}

func (r *PgxRevenueRepository) ListRevenuesInPeriod(ctx context.Context, companyID string, start, end time.Time) ([]domain.RevenueEntry, error) {
	if companyID == "" {
		return nil, apperrors.NewValidationFailedError("company id is required")
	}
	query := `
	WHERE r.company_id = $1 AND r.service_date >= $2 AND r.service_date <= $3
	ORDER BY r.service_date;
	`
	return r.getRevenues(ctx, query, companyID, start, end)
}

func (r *PgxRevenueRepository) SaveRevenue(ctx context.Context, entry domain.RevenueEntry) error {
	query := `
		INSERT INTO revenues (
			revenue_id, company_id, service_name, client_name, amount,
			service_date, status, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.RevenueID,
		entry.CompanyID,
		entry.ServiceName,
		entry.ClientName,
		entry.Amount,
		entry.ServiceDate,
		entry.Status,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return apperrors.NewConflictError("revenue ID " + entry.RevenueID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("company does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save revenue "+entry.RevenueID, err)
	}
	return nil
}

// DeleteRevenue deletes by id AND company id. The company predicate is the
// tenant-isolation guard: an id belonging to another company affects zero rows
// and reports not found.
func (r *PgxRevenueRepository) DeleteRevenue(ctx context.Context, revenueID, companyID string) error {
	if companyID == "" {
		return apperrors.NewValidationFailedError("company id is required")
	}
	result, err := r.Pool.Exec(ctx,
		`DELETE FROM revenues WHERE revenue_id = $1 AND company_id = $2;`,
		revenueID, companyID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete revenue "+revenueID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("revenue entry not found")
	}
	return nil
}

// DeleteAllRevenues deletes the company's entries only. The company predicate
// is mandatory; the query is never built without it.
func (r *PgxRevenueRepository) DeleteAllRevenues(ctx context.Context, companyID string) (int64, error) {
	if companyID == "" {
		return 0, apperrors.NewValidationFailedError("company id is required")
	}
	result, err := r.Pool.Exec(ctx, `DELETE FROM revenues WHERE company_id = $1;`, companyID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to delete revenues for company "+companyID, err)
	}
	return result.RowsAffected(), nil
}
