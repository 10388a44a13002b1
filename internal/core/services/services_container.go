package services

import (
	portsrepo "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/repositories"
	portssvc "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/services"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The company service comes first: every entry service authorizes through it.
	container.Company = NewCompanyService(repos.CompanyRepo)
	companyAuthorizer := portssvc.CompanyAuthorizerSvc(container.Company)

	container.User = NewUserService(repos.UserRepo)
	container.Revenue = NewRevenueService(repos.RevenueRepo, companyAuthorizer)
	container.Expense = NewExpenseService(repos.ExpenseRepo, companyAuthorizer)
	container.Report = NewReportService(repos.RevenueRepo, container.Revenue, container.Expense, companyAuthorizer)
	container.Dashboard = NewDashboardService(repos.RevenueRepo, repos.ExpenseRepo, companyAuthorizer)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CompanySvcFacade = (*companyService)(nil)
	_ portssvc.RevenueSvcFacade = (*revenueService)(nil)
	_ portssvc.ExpenseSvcFacade = (*expenseService)(nil)
	_ portssvc.ReportSvcFacade  = (*reportService)(nil)
	_ portssvc.DashboardSvc     = (*dashboardService)(nil)
)
