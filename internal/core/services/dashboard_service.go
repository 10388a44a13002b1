package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	portsrepo "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/repositories"
	portssvc "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/services"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/utils"
	"github.com/shopspring/decimal"
)

// dashboardService implements the DashboardSvc interface. All values are
// derived on read; nothing here is persisted.
type dashboardService struct {
	BaseService
	revenueRepo portsrepo.RevenueReader
	expenseRepo portsrepo.ExpenseReader
}

// NewDashboardService creates a new dashboard service with the provided dependencies
func NewDashboardService(
	revenueRepo portsrepo.RevenueReader,
	expenseRepo portsrepo.ExpenseReader,
	authorizer portssvc.CompanyAuthorizerSvc,
) portssvc.DashboardSvc {
	return &dashboardService{
		BaseService: BaseService{CompanyAuthorizer: authorizer},
		revenueRepo: revenueRepo,
		expenseRepo: expenseRepo,
	}
}

// Ensure dashboardService implements the DashboardSvc interface
var _ portssvc.DashboardSvc = (*dashboardService)(nil)

// emptyDashboard is the zero-state payload shown before a company is selected.
func emptyDashboard() *portssvc.DashboardData {
	zero := utils.FormatBRL(decimal.Zero)
	monthly := make([]portssvc.MonthlyTotal, 12)
	for m := 1; m <= 12; m++ {
		monthly[m-1] = portssvc.MonthlyTotal{
			Name:     domain.ShortMonthNames[m],
			Receitas: zero,
			Despesas: zero,
		}
	}
	return &portssvc.DashboardData{
		TotalRevenue:   zero,
		PendingRevenue: zero,
		LateRevenue:    zero,
		TotalExpense:   zero,
		Balance:        zero,
		Monthly:        monthly,
		Categories:     []portssvc.CategoryTotal{},
	}
}

// BuildDashboard assembles the summary cards, the 12-month revenue/expense
// series and the per-category expense totals for one calendar year.
func (s *dashboardService) BuildDashboard(ctx context.Context, userID, companyID string, year int) (*portssvc.DashboardData, error) {
	if companyID == "" {
		return emptyDashboard(), nil
	}
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0).Add(-time.Nanosecond)

	revenues, err := s.revenueRepo.ListRevenuesInPeriod(ctx, companyID, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to read revenues for dashboard",
			slog.String("company_id", companyID),
			slog.Int("year", year))
		return nil, err
	}

	expenseFilter := domain.EntryFilter{StartDate: &start, EndDate: &end}
	expenses, err := s.expenseRepo.ListExpenses(ctx, companyID, expenseFilter)
	if err != nil {
		s.LogError(ctx, err, "Failed to read expenses for dashboard",
			slog.String("company_id", companyID),
			slog.Int("year", year))
		return nil, err
	}

	var totalRevenue, pendingRevenue, lateRevenue, totalExpense decimal.Decimal
	var revenueByMonth, expenseByMonth [13]decimal.Decimal
	categoryTotals := map[domain.ExpenseCategory]decimal.Decimal{}

	for i := range revenues {
		e := &revenues[i]
		totalRevenue = totalRevenue.Add(e.Amount)
		switch e.Status {
		case domain.StatusPending:
			pendingRevenue = pendingRevenue.Add(e.Amount)
		case domain.StatusLate:
			lateRevenue = lateRevenue.Add(e.Amount)
		}
		m := int(e.ServiceDate.Month())
		revenueByMonth[m] = revenueByMonth[m].Add(e.Amount)
	}

	for i := range expenses {
		e := &expenses[i]
		totalExpense = totalExpense.Add(e.Amount)
		m := int(e.DueDate.Month())
		expenseByMonth[m] = expenseByMonth[m].Add(e.Amount)
		categoryTotals[e.Category] = categoryTotals[e.Category].Add(e.Amount)
	}

	monthly := make([]portssvc.MonthlyTotal, 12)
	for m := 1; m <= 12; m++ {
		monthly[m-1] = portssvc.MonthlyTotal{
			Name:     domain.ShortMonthNames[m],
			Receitas: utils.FormatBRL(revenueByMonth[m]),
			Despesas: utils.FormatBRL(expenseByMonth[m]),
		}
	}

	// Categories appear in their fixed display order; absent ones are dropped.
	categories := make([]portssvc.CategoryTotal, 0, len(categoryTotals))
	for _, cat := range domain.ExpenseCategories {
		total, ok := categoryTotals[cat]
		if !ok {
			continue
		}
		categories = append(categories, portssvc.CategoryTotal{
			Category: cat,
			Total:    utils.FormatBRL(total),
		})
	}

	return &portssvc.DashboardData{
		TotalRevenue:   utils.FormatBRL(totalRevenue),
		PendingRevenue: utils.FormatBRL(pendingRevenue),
		LateRevenue:    utils.FormatBRL(lateRevenue),
		TotalExpense:   utils.FormatBRL(totalExpense),
		Balance:        utils.FormatBRL(totalRevenue.Sub(totalExpense)),
		Monthly:        monthly,
		Categories:     categories,
	}, nil
}
