package repositories

import (
	"context"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
)

// CompanyReader defines read operations for company data.
type CompanyReader interface {
	// FindCompanyByID retrieves a specific company by its ID.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// ListCompaniesByUserID retrieves the companies a user is a member of,
	// in stable load order. Companies with only a REMOVED membership are excluded.
	ListCompaniesByUserID(ctx context.Context, userID string) ([]domain.Company, error)
}

// CompanyWriter defines write operations for company data.
type CompanyWriter interface {
	// SaveCompanyWithOwner persists a new company and its owner's ADMIN
	// membership atomically. Either both rows exist afterwards or neither does.
	SaveCompanyWithOwner(ctx context.Context, company domain.Company, owner domain.UserCompany) error

	// UpdateCompany persists changes to an existing company.
	UpdateCompany(ctx context.Context, company domain.Company) error

	// DeleteCompany removes a company and its membership rows.
	DeleteCompany(ctx context.Context, companyID string) error
}

// CompanyMembershipManager defines operations for managing company memberships.
type CompanyMembershipManager interface {
	// AddUserToCompany adds a user to a company with a specific role (upsert).
	AddUserToCompany(ctx context.Context, membership domain.UserCompany) error

	// FindUserCompanyRole retrieves the role of a user in a company.
	FindUserCompanyRole(ctx context.Context, userID, companyID string) (*domain.UserCompany, error)

	// ListUsersByCompanyID retrieves the memberships of a company.
	ListUsersByCompanyID(ctx context.Context, companyID string) ([]domain.UserCompany, error)
}

// CompanyRepositoryFacade combines all company-related repository interfaces.
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
	CompanyMembershipManager
}

// CompanyRepositoryWithTx extends CompanyRepositoryFacade with transaction capabilities.
type CompanyRepositoryWithTx interface {
	CompanyRepositoryFacade
	TransactionManager
}
