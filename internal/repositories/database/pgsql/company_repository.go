package pgsql

import (
	"context"
	"errors"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/apperrors"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	portsrepo "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryWithTx {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CompanyRepositoryWithTx = (*PgxCompanyRepository)(nil)

var FULL_COMPANY_SELECT_QUERY = `
SELECT
	c.company_id, c.cnpj, c.name, c.company_type, c.city, c.logo_url, c.brand_color,
	c.is_active, c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
FROM companies c
`

// getCompanies runs the shared select with the given filter clause.
func (r *PgxCompanyRepository) getCompanies(ctx context.Context, filterQuery string, args ...any) ([]domain.Company, error) {
	query := FULL_COMPANY_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query companies", err)
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var c domain.Company
		err := rows.Scan(
			&c.CompanyID,
			&c.CNPJ,
			&c.Name,
			&c.CompanyType,
			&c.City,
			&c.LogoURL,
			&c.BrandColor,
			&c.IsActive,
			&c.CreatedAt,
			&c.CreatedBy,
			&c.LastUpdatedAt,
			&c.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan company row", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating company rows", err)
	}
	if companies == nil {
		return []domain.Company{}, nil
	}
	return companies, nil
}

func (r *PgxCompanyRepository) SaveCompanyWithOwner(ctx context.Context, company domain.Company, owner domain.UserCompany) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	companyQuery := `
		INSERT INTO companies (
			company_id, cnpj, name, company_type, city, logo_url, brand_color,
			is_active, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, companyQuery,
		company.CompanyID,
		company.CNPJ,
		company.Name,
		company.CompanyType,
		company.City,
		company.LogoURL,
		company.BrandColor,
		company.IsActive,
		company.CreatedAt,
		company.CreatedBy,
		company.LastUpdatedAt,
		company.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("company with CNPJ " + company.CNPJ + " already exists")
			}
		}
		return apperrors.NewAppError(500, "failed to save company "+company.CompanyID, err)
	}

	membershipQuery := `
		INSERT INTO user_companies (user_id, company_id, role, joined_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err = tx.Exec(ctx, membershipQuery,
		owner.UserID,
		owner.CompanyID,
		owner.Role,
		owner.JoinedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to add owner "+owner.UserID+" to company "+owner.CompanyID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction for company "+company.CompanyID, err)
	}
	return nil
}

func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	query := `
		UPDATE companies
		SET cnpj = $1, name = $2, company_type = $3, city = $4, logo_url = $5,
		    brand_color = $6, last_updated_at = $7, last_updated_by = $8
		WHERE company_id = $9;
	`
	result, err := r.Pool.Exec(ctx, query,
		company.CNPJ,
		company.Name,
		company.CompanyType,
		company.City,
		company.LogoURL,
		company.BrandColor,
		company.LastUpdatedAt,
		company.LastUpdatedBy,
		company.CompanyID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError("company with CNPJ " + company.CNPJ + " already exists")
		}
		return apperrors.NewAppError(500, "failed to update company "+company.CompanyID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("company not found")
	}
	return nil
}

func (r *PgxCompanyRepository) DeleteCompany(ctx context.Context, companyID string) error {
	// Membership rows go via ON DELETE CASCADE.
	result, err := r.Pool.Exec(ctx, `DELETE FROM companies WHERE company_id = $1;`, companyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete company "+companyID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("company not found")
	}
	return nil
}

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `WHERE c.company_id = $1`
	companies, err := r.getCompanies(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &companies[0], nil
}

// ListCompaniesByUserID joins through user_companies: a company is visible only
// when a membership row exists and the user has not been removed from it.
func (r *PgxCompanyRepository) ListCompaniesByUserID(ctx context.Context, userID string) ([]domain.Company, error) {
	query := `
	JOIN user_companies uc ON c.company_id = uc.company_id
	WHERE uc.user_id = $1 AND uc.role != $2 AND c.is_active = true
	ORDER BY c.created_at, c.company_id;
	`
	return r.getCompanies(ctx, query, userID, domain.RoleRemoved)
}

func (r *PgxCompanyRepository) AddUserToCompany(ctx context.Context, membership domain.UserCompany) error {
	query := `
		INSERT INTO user_companies (user_id, company_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, company_id) DO UPDATE SET role = EXCLUDED.role;
	` // Upsert: add user or update their role if they already exist
	_, err := r.Pool.Exec(ctx, query,
		membership.UserID,
		membership.CompanyID,
		membership.Role,
		membership.JoinedAt,
	)

	if err != nil {
		return apperrors.NewAppError(500, "failed to add/update user "+membership.UserID+" in company "+membership.CompanyID, err)
	}
	return nil
}

func (r *PgxCompanyRepository) FindUserCompanyRole(ctx context.Context, userID, companyID string) (*domain.UserCompany, error) {
	query := `
		SELECT user_id, company_id, role, joined_at
		FROM user_companies
		WHERE user_id = $1 AND company_id = $2;
	`
	var uc domain.UserCompany
	err := r.Pool.QueryRow(ctx, query, userID, companyID).Scan(
		&uc.UserID,
		&uc.CompanyID,
		&uc.Role,
		&uc.JoinedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No membership row means the company does not exist for this user.
			return nil, apperrors.NewNotFoundError("company not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find user "+userID+" company role in "+companyID, err)
	}
	return &uc, nil
}

// ListUsersByCompanyID retrieves all memberships of a company, excluding
// users with the REMOVED role.
func (r *PgxCompanyRepository) ListUsersByCompanyID(ctx context.Context, companyID string) ([]domain.UserCompany, error) {
	query := `
		SELECT uc.user_id, u.name AS user_name, uc.company_id, uc.role, uc.joined_at
		FROM user_companies uc
		JOIN users u ON uc.user_id = u.user_id
		WHERE uc.company_id = $1 AND uc.role != $2
		ORDER BY uc.joined_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, domain.RoleRemoved)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users for company "+companyID, err)
	}
	defer rows.Close()

	var memberships []domain.UserCompany
	for rows.Next() {
		var uc domain.UserCompany
		err := rows.Scan(
			&uc.UserID,
			&uc.UserName,
			&uc.CompanyID,
			&uc.Role,
			&uc.JoinedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan user company row", err)
		}
		memberships = append(memberships, uc)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating user company rows", err)
	}

	return memberships, nil
}
