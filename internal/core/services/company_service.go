package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/apperrors"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	portsrepo "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/repositories"
	portssvc "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/services"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/dto"
	"github.com/google/uuid"
)

// companyService implements the CompanySvcFacade interface
type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates a new company service with the provided dependencies
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{
		companyRepo: companyRepo,
	}
}

// Ensure companyService implements the CompanySvcFacade interface
var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// normalizeCNPJ strips formatting punctuation from a CNPJ, keeping digits only.
func normalizeCNPJ(cnpj string) (string, error) {
	var digits strings.Builder
	for _, r := range cnpj {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '.' || r == '/' || r == '-' || r == ' ':
			// formatting characters, ignore
		default:
			return "", apperrors.NewValidationFailedError("cnpj contains invalid characters")
		}
	}
	if digits.Len() != 14 {
		return "", apperrors.NewValidationFailedError("cnpj must have 14 digits")
	}
	return digits.String(), nil
}

// FindCompanyByID retrieves a company by its ID
func (s *companyService) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find company by ID",
				slog.String("company_id", companyID))
		}
		return nil, err
	}
	return company, nil
}

// ListUserCompanies retrieves all companies a user is a member of
func (s *companyService) ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error) {
	companies, err := s.companyRepo.ListCompaniesByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list companies for user",
			slog.String("user_id", userID))
		return nil, err
	}

	if companies == nil {
		return []domain.Company{}, nil
	}

	s.LogDebug(ctx, "Companies listed successfully",
		slog.Int("count", len(companies)),
		slog.String("user_id", userID))
	return companies, nil
}

// ResolveActiveCompany picks the session's active company: the remembered id
// when it is still visible to the user, otherwise the first visible company.
// An empty visible set resolves to nil with no error.
func (s *companyService) ResolveActiveCompany(ctx context.Context, userID, rememberedID string) (*domain.Company, error) {
	companies, err := s.ListUserCompanies(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		s.LogDebug(ctx, "User has no visible companies", slog.String("user_id", userID))
		return nil, nil
	}

	if rememberedID != "" {
		for i := range companies {
			if companies[i].CompanyID == rememberedID {
				return &companies[i], nil
			}
		}
		// Stale remembered id (membership revoked or company deleted) falls
		// through to the default rather than erroring.
		s.LogDebug(ctx, "Remembered company no longer visible, falling back to first",
			slog.String("user_id", userID),
			slog.String("remembered_id", rememberedID))
	}

	return &companies[0], nil
}

// CreateCompany creates a new company and makes the creator its admin
func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	cnpj, err := normalizeCNPJ(req.CNPJ)
	if err != nil {
		s.LogDebug(ctx, "Rejected company creation with invalid CNPJ",
			slog.String("user_id", creatorUserID))
		return nil, err
	}

	now := time.Now()
	company := domain.Company{
		CompanyID:   uuid.NewString(),
		CNPJ:        cnpj,
		Name:        req.Name,
		CompanyType: domain.CompanyType(req.CompanyType),
		City:        req.City,
		BrandColor:  req.BrandColor,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.LogoURL != "" {
		company.LogoURL = &req.LogoURL
	}

	owner := domain.UserCompany{
		UserID:    creatorUserID,
		CompanyID: company.CompanyID,
		Role:      domain.RoleAdmin,
		JoinedAt:  now,
	}
	if err := s.companyRepo.SaveCompanyWithOwner(ctx, company, owner); err != nil {
		s.LogError(ctx, err, "Failed to save company with owner membership",
			slog.String("company_id", company.CompanyID),
			slog.String("user_id", creatorUserID))
		return nil, err
	}

	s.LogInfo(ctx, "Company created successfully",
		slog.String("company_id", company.CompanyID),
		slog.String("creator_id", creatorUserID))
	return &company, nil
}

// UpdateCompany updates a company's details; requires the ADMIN role
func (s *companyService) UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest, requestingUserID string) (*domain.Company, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, companyID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if req.CNPJ != nil {
		cnpj, err := normalizeCNPJ(*req.CNPJ)
		if err != nil {
			return nil, err
		}
		company.CNPJ = cnpj
	}
	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.CompanyType != nil {
		company.CompanyType = domain.CompanyType(*req.CompanyType)
	}
	if req.City != nil {
		company.City = *req.City
	}
	if req.LogoURL != nil {
		company.LogoURL = req.LogoURL
	}
	if req.BrandColor != nil {
		company.BrandColor = *req.BrandColor
	}
	company.LastUpdatedAt = time.Now()
	company.LastUpdatedBy = requestingUserID

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		s.LogError(ctx, err, "Failed to update company",
			slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Company updated successfully",
		slog.String("company_id", companyID),
		slog.String("user_id", requestingUserID))
	return company, nil
}

// DeleteCompany removes a company; requires the ADMIN role
func (s *companyService) DeleteCompany(ctx context.Context, companyID string, requestingUserID string) error {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, companyID, domain.RoleAdmin); err != nil {
		return err
	}

	if err := s.companyRepo.DeleteCompany(ctx, companyID); err != nil {
		s.LogError(ctx, err, "Failed to delete company",
			slog.String("company_id", companyID))
		return err
	}

	s.LogInfo(ctx, "Company deleted",
		slog.String("company_id", companyID),
		slog.String("user_id", requestingUserID))
	return nil
}

// SelectCompany validates visibility and returns the company with its theme
func (s *companyService) SelectCompany(ctx context.Context, userID, companyID string) (*domain.Company, domain.Theme, error) {
	if err := s.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, domain.Theme{}, err
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, domain.Theme{}, err
	}

	s.LogDebug(ctx, "Company selected",
		slog.String("company_id", companyID),
		slog.String("user_id", userID))
	return company, domain.ThemeFor(company), nil
}

// AddUserToCompany adds a user to a company with a specific role
func (s *companyService) AddUserToCompany(ctx context.Context, addingUserID, targetUserID, companyID string, role domain.UserCompanyRole) error {
	// Self-assignment is permitted (the creator adding itself as admin).
	if addingUserID != targetUserID {
		if err := s.AuthorizeUserAction(ctx, addingUserID, companyID, domain.RoleAdmin); err != nil {
			s.LogError(ctx, err, "User not authorized to add members to company",
				slog.String("adding_user_id", addingUserID),
				slog.String("company_id", companyID))
			return err
		}
	}

	membership := domain.UserCompany{
		UserID:    targetUserID,
		CompanyID: companyID,
		Role:      role,
		JoinedAt:  time.Now(),
	}

	if err := s.companyRepo.AddUserToCompany(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add user to company",
			slog.String("target_user_id", targetUserID),
			slog.String("company_id", companyID))
		return err
	}

	s.LogInfo(ctx, "User added to company",
		slog.String("target_user_id", targetUserID),
		slog.String("company_id", companyID),
		slog.String("role", string(role)))
	return nil
}

// ListCompanyUsers retrieves the memberships of a company
func (s *companyService) ListCompanyUsers(ctx context.Context, companyID string, requestingUserID string) ([]domain.UserCompany, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	memberships, err := s.companyRepo.ListUsersByCompanyID(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list company users",
			slog.String("company_id", companyID))
		return nil, err
	}
	if memberships == nil {
		return []domain.UserCompany{}, nil
	}
	return memberships, nil
}

// AuthorizeUserAction checks if a user has required permissions for a company
func (s *companyService) AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.UserCompanyRole) error {
	membership, err := s.companyRepo.FindUserCompanyRole(ctx, userID, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of company",
				slog.String("user_id", userID),
				slog.String("company_id", companyID))
			return apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to find user company role",
			slog.String("user_id", userID),
			slog.String("company_id", companyID))
		return err
	}

	if !hasRequiredRole(membership.Role, requiredRole) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("company_id", companyID),
			slog.String("user_role", string(membership.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}

	return nil
}

// hasRequiredRole checks if the user's role meets or exceeds the required role
func hasRequiredRole(userRole, requiredRole domain.UserCompanyRole) bool {
	switch requiredRole {
	case domain.RoleReadOnly:
		return userRole.CanRead()
	case domain.RoleMember:
		return userRole.CanWrite()
	case domain.RoleAdmin:
		return userRole == domain.RoleAdmin
	default:
		return false
	}
}
