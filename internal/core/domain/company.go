package domain

import "time"

// CompanyType distinguishes a head office from a branch.
type CompanyType string

const (
	CompanyTypeMatriz CompanyType = "matriz"
	CompanyTypeFilial CompanyType = "filial"
)

// Company is the tenant unit: every revenue and expense entry belongs to exactly
// one company, and all entry queries are scoped to the company id.
type Company struct {
	CompanyID   string      `json:"companyID"`
	CNPJ        string      `json:"cnpj"` // legal tax id, digits only
	Name        string      `json:"name"`
	CompanyType CompanyType `json:"companyType"`
	City        string      `json:"city"`
	LogoURL     *string     `json:"logoURL"`
	BrandColor  string      `json:"brandColor"` // hex color applied to the UI chrome
	IsActive    bool        `json:"isActive"`
	AuditFields
}

// UserCompanyRole defines the possible roles a user can have within a company.
type UserCompanyRole string

const (
	RoleAdmin    UserCompanyRole = "ADMIN"
	RoleMember   UserCompanyRole = "MEMBER"
	RoleReadOnly UserCompanyRole = "READONLY"
	RoleRemoved  UserCompanyRole = "REMOVED" // users removed from the company keep a tombstone row
)

// CanWrite reports whether the role allows creating or deleting entries.
func (r UserCompanyRole) CanWrite() bool {
	return r == RoleAdmin || r == RoleMember
}

// CanRead reports whether the role allows viewing company data at all.
func (r UserCompanyRole) CanRead() bool {
	return r == RoleAdmin || r == RoleMember || r == RoleReadOnly
}

// UserCompany represents the membership of a User in a Company.
// A user only sees companies for which a membership row exists.
type UserCompany struct {
	UserID    string          `json:"userID"`
	UserName  string          `json:"userName"`
	CompanyID string          `json:"companyID"`
	Role      UserCompanyRole `json:"role"`
	JoinedAt  time.Time       `json:"joinedAt"`
}

// Theme is the presentation values derived from the active company.
// It replaces the original system's global style mutation with an explicit value.
type Theme struct {
	PrimaryColor string `json:"primaryColor"`
}

// ThemeFor derives the UI theme from a company's branding.
func ThemeFor(c *Company) Theme {
	return Theme{PrimaryColor: c.BrandColor}
}
