package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/apperrors"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	portssvc "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/services"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type DashboardServiceTestSuite struct {
	suite.Suite
	mockRevenueRepo *MockRevenueRepository
	mockExpenseRepo *MockExpenseRepository
	mockAuthorizer  *MockCompanyAuthorizer
	service         portssvc.DashboardSvc
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockRevenueRepo = new(MockRevenueRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockAuthorizer = new(MockCompanyAuthorizer)
	suite.service = services.NewDashboardService(suite.mockRevenueRepo, suite.mockExpenseRepo, suite.mockAuthorizer)
}

// --- Test Cases ---

func (suite *DashboardServiceTestSuite) TestBuildDashboard_NoCompanySelectedIsZeroState() {
	ctx := context.Background()

	data, err := suite.service.BuildDashboard(ctx, uuid.NewString(), "", 2024)

	suite.Require().NoError(err)
	suite.Require().NotNil(data)
	suite.Equal("R$ 0,00", data.TotalRevenue)
	suite.Equal("R$ 0,00", data.Balance)
	suite.Require().Len(data.Monthly, 12)
	suite.Equal("Jan", data.Monthly[0].Name)
	suite.Equal("Dez", data.Monthly[11].Name)
	suite.Empty(data.Categories)
	suite.mockRevenueRepo.AssertNotCalled(suite.T(), "ListRevenuesInPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "ListExpenses", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DashboardServiceTestSuite) TestBuildDashboard_Forbidden() {
	ctx := context.Background()
	userID := uuid.NewString()
	companyID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, userID, companyID, domain.RoleReadOnly).
		Return(apperrors.ErrForbidden).Once()

	data, err := suite.service.BuildDashboard(ctx, userID, companyID, 2024)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(data)
}

func (suite *DashboardServiceTestSuite) TestBuildDashboard_AggregatesYear() {
	ctx := context.Background()
	userID := uuid.NewString()
	companyID := uuid.NewString()
	wantStart := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := wantStart.AddDate(1, 0, 0).Add(-time.Nanosecond)

	revenues := []domain.RevenueEntry{
		{
			RevenueID:   "r1",
			Amount:      decimal.RequireFromString("3000.00"),
			ServiceDate: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
			Status:      domain.StatusPaid,
		},
		{
			RevenueID:   "r2",
			Amount:      decimal.RequireFromString("1500.00"),
			ServiceDate: time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC),
			Status:      domain.StatusPending,
		},
		{
			RevenueID:   "r3",
			Amount:      decimal.RequireFromString("500.00"),
			ServiceDate: time.Date(2024, time.July, 2, 0, 0, 0, 0, time.UTC),
			Status:      domain.StatusLate,
		},
	}
	expenses := []domain.ExpenseEntry{
		{
			ExpenseID: "e1",
			Amount:    decimal.RequireFromString("1200.00"),
			DueDate:   time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			Category:  domain.CategoryPessoal,
		},
		{
			ExpenseID: "e2",
			Amount:    decimal.RequireFromString("300.00"),
			DueDate:   time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC),
			Category:  domain.CategoryInstalacoes,
		},
		{
			ExpenseID: "e3",
			Amount:    decimal.RequireFromString("800.00"),
			DueDate:   time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC),
			Category:  domain.CategoryPessoal,
		},
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, userID, companyID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockRevenueRepo.On("ListRevenuesInPeriod", ctx, companyID, wantStart, wantEnd).Return(revenues, nil).Once()
	suite.mockExpenseRepo.On("ListExpenses", ctx, companyID, mock.MatchedBy(func(f domain.EntryFilter) bool {
		return f.StartDate != nil && f.StartDate.Equal(wantStart) &&
			f.EndDate != nil && f.EndDate.Equal(wantEnd)
	})).Return(expenses, nil).Once()

	data, err := suite.service.BuildDashboard(ctx, userID, companyID, 2024)

	suite.Require().NoError(err)
	suite.Require().NotNil(data)
	suite.Equal("R$ 5.000,00", data.TotalRevenue)
	suite.Equal("R$ 1.500,00", data.PendingRevenue)
	suite.Equal("R$ 500,00", data.LateRevenue)
	suite.Equal("R$ 2.300,00", data.TotalExpense)
	suite.Equal("R$ 2.700,00", data.Balance)

	suite.Require().Len(data.Monthly, 12)
	march := data.Monthly[2]
	suite.Equal("Mar", march.Name)
	suite.Equal("R$ 4.500,00", march.Receitas)
	suite.Equal("R$ 1.200,00", march.Despesas)
	january := data.Monthly[0]
	suite.Equal("R$ 0,00", january.Receitas)
	suite.Equal("R$ 0,00", january.Despesas)

	// Categories follow display order; untouched categories are absent.
	suite.Require().Len(data.Categories, 2)
	suite.Equal(domain.CategoryInstalacoes, data.Categories[0].Category)
	suite.Equal("R$ 300,00", data.Categories[0].Total)
	suite.Equal(domain.CategoryPessoal, data.Categories[1].Category)
	suite.Equal("R$ 2.000,00", data.Categories[1].Total)
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
