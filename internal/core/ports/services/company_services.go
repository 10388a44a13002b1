package services

import (
	"context"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/dto"
)

// CompanyReaderSvc defines read operations for the company directory.
type CompanyReaderSvc interface {
	// FindCompanyByID retrieves a specific company by its ID.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// ListUserCompanies retrieves the companies visible to a user. Visibility is
	// strictly membership-based: a company appears only if a user-company link exists.
	ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error)

	// ResolveActiveCompany picks the active company for a session: the remembered
	// company id if it is still in the user's visible set, otherwise the first
	// company in load order. A nil company with a nil error is the documented
	// "nothing selected yet" state when the visible set is empty.
	ResolveActiveCompany(ctx context.Context, userID, rememberedID string) (*domain.Company, error)
}

// CompanyWriterSvc defines administrative write operations for companies.
type CompanyWriterSvc interface {
	// CreateCompany persists a new company and makes the creator its admin.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error)

	// UpdateCompany updates a company; requires the ADMIN role.
	UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest, requestingUserID string) (*domain.Company, error)

	// DeleteCompany removes a company; requires the ADMIN role.
	DeleteCompany(ctx context.Context, companyID string, requestingUserID string) error
}

// CompanySelectionSvc defines the active-company selection operation.
type CompanySelectionSvc interface {
	// SelectCompany validates that the user may see the company and returns it
	// together with its derived theme. Persisting the selected id is the caller's
	// concern (the HTTP layer stores it in a client-local cookie).
	SelectCompany(ctx context.Context, userID, companyID string) (*domain.Company, domain.Theme, error)
}

// CompanyMembershipSvc defines operations for managing company membership.
type CompanyMembershipSvc interface {
	// AddUserToCompany adds a user to a company with a specific role.
	// Adding on behalf of someone else requires the ADMIN role.
	AddUserToCompany(ctx context.Context, addingUserID, targetUserID, companyID string, role domain.UserCompanyRole) error

	// ListCompanyUsers retrieves the memberships of a company.
	ListCompanyUsers(ctx context.Context, companyID string, requestingUserID string) ([]domain.UserCompany, error)
}

// CompanyAuthorizerSvc defines tenant authorization checks used by the
// entry services. Injecting it keeps the scoping requirement visible at
// every call site instead of hiding it in ambient state.
type CompanyAuthorizerSvc interface {
	// AuthorizeUserAction checks that the user holds at least the required role
	// in the company; returns ErrForbidden or ErrNotFound otherwise.
	AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.UserCompanyRole) error
}

// CompanySvcFacade combines all company-related service interfaces.
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
	CompanySelectionSvc
	CompanyMembershipSvc
	CompanyAuthorizerSvc
}
