package dto

import (
	"time"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
)

// --- Company DTOs ---

// CreateCompanyRequest defines data for creating a new company.
type CreateCompanyRequest struct {
	CNPJ        string `json:"cnpj" binding:"required"`
	Name        string `json:"name" binding:"required"`
	CompanyType string `json:"companyType" binding:"required,oneof=matriz filial"`
	City        string `json:"city" binding:"required"`
	LogoURL     string `json:"logoURL"`
	BrandColor  string `json:"brandColor" binding:"required,hexcolor"`
}

// UpdateCompanyRequest defines data for updating a company. Pointer fields
// distinguish "leave unchanged" from "set to zero value".
type UpdateCompanyRequest struct {
	CNPJ        *string `json:"cnpj"`
	Name        *string `json:"name"`
	CompanyType *string `json:"companyType" binding:"omitempty,oneof=matriz filial"`
	City        *string `json:"city"`
	LogoURL     *string `json:"logoURL"`
	BrandColor  *string `json:"brandColor" binding:"omitempty,hexcolor"`
}

// CompanyResponse defines data returned for a company.
type CompanyResponse struct {
	CompanyID   string    `json:"companyID"`
	CNPJ        string    `json:"cnpj"`
	Name        string    `json:"name"`
	CompanyType string    `json:"companyType"`
	City        string    `json:"city"`
	LogoURL     *string   `json:"logoURL,omitempty"`
	BrandColor  string    `json:"brandColor"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
}

// ToCompanyResponse converts domain.Company to DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:   c.CompanyID,
		CNPJ:        c.CNPJ,
		Name:        c.Name,
		CompanyType: string(c.CompanyType),
		City:        c.City,
		LogoURL:     c.LogoURL,
		BrandColor:  c.BrandColor,
		CreatedAt:   c.CreatedAt,
		CreatedBy:   c.CreatedBy,
	}
}

// ListCompaniesResponse wraps a list of companies.
type ListCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// ToListCompaniesResponse converts a slice of domain.Company to DTO.
func ToListCompaniesResponse(cs []domain.Company) ListCompaniesResponse {
	list := make([]CompanyResponse, len(cs))
	for i, c := range cs {
		list[i] = ToCompanyResponse(&c)
	}
	return ListCompaniesResponse{Companies: list}
}

// ActiveCompanyResponse carries the resolved active company and its theme.
// Company is null when nothing is selected yet (empty visible set).
type ActiveCompanyResponse struct {
	Company *CompanyResponse `json:"company"`
	Theme   *domain.Theme    `json:"theme,omitempty"`
}

// ToActiveCompanyResponse converts the resolution result to DTO.
func ToActiveCompanyResponse(c *domain.Company) ActiveCompanyResponse {
	if c == nil {
		return ActiveCompanyResponse{}
	}
	resp := ToCompanyResponse(c)
	theme := domain.ThemeFor(c)
	return ActiveCompanyResponse{Company: &resp, Theme: &theme}
}

// --- Membership DTOs ---

// AddUserToCompanyRequest defines data for adding a user to a company.
type AddUserToCompanyRequest struct {
	UserID string                 `json:"userID" binding:"required"`
	Role   domain.UserCompanyRole `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// UserCompanyResponse defines data returned about a user's membership.
type UserCompanyResponse struct {
	UserID    string                 `json:"userID"`
	UserName  string                 `json:"userName,omitempty"`
	CompanyID string                 `json:"companyID"`
	Role      domain.UserCompanyRole `json:"role"`
	JoinedAt  time.Time              `json:"joinedAt"`
}

// ToUserCompanyResponse converts domain.UserCompany to DTO.
func ToUserCompanyResponse(uc *domain.UserCompany) UserCompanyResponse {
	return UserCompanyResponse{
		UserID:    uc.UserID,
		UserName:  uc.UserName,
		CompanyID: uc.CompanyID,
		Role:      uc.Role,
		JoinedAt:  uc.JoinedAt,
	}
}
