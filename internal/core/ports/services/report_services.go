package services

import (
	"context"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
)

// ReportSvcFacade is the in-memory report registry: generation appends a
// metadata record (no document is produced), the list is capped at the most
// recent entries, and clearing wipes both the registry and the company's data.
type ReportSvcFacade interface {
	// GenerateReport performs a bounded read of the month's revenue entries for
	// the company, simulates generation time, and records the report metadata.
	// Requires an authenticated caller; month is 1-12.
	GenerateReport(ctx context.Context, userID, companyID string, reportType domain.ReportType, month, year int, format string) (*domain.Report, error)

	// ListReports returns the company's registry entries, newest first. The
	// caller must be a member of the company; other companies' records are
	// never included.
	ListReports(ctx context.Context, userID, companyID string) ([]domain.Report, error)

	// ClearAllData deletes every revenue and expense entry of the company and
	// empties the registry. Irreversible; requires the ADMIN role.
	ClearAllData(ctx context.Context, userID, companyID string) error
}

// DashboardSvc computes the purely derived presentation aggregates.
type DashboardSvc interface {
	// BuildDashboard assembles summary cards, 12-month revenue/expense totals
	// and per-category expense totals from the company's entries.
	BuildDashboard(ctx context.Context, userID, companyID string, year int) (*DashboardData, error)
}

// DashboardData is the assembled dashboard payload, declared here so both the
// service and the handlers can share it without a dependency cycle.
type DashboardData struct {
	TotalRevenue   string          `json:"totalRevenue"`
	PendingRevenue string          `json:"pendingRevenue"`
	LateRevenue    string          `json:"lateRevenue"`
	TotalExpense   string          `json:"totalExpense"`
	Balance        string          `json:"balance"`
	Monthly        []MonthlyTotal  `json:"monthly"`
	Categories     []CategoryTotal `json:"categories"`
}

// MonthlyTotal is one month's aggregated revenue and expense.
type MonthlyTotal struct {
	Name     string `json:"name"` // abbreviated Portuguese month name
	Receitas string `json:"receitas"`
	Despesas string `json:"despesas"`
}

// CategoryTotal is one expense category's aggregated amount.
type CategoryTotal struct {
	Category domain.ExpenseCategory `json:"category"`
	Total    string                 `json:"total"`
}
