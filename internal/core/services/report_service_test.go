package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/apperrors"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	portssvc "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/services"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/services"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RevenueWriterSvc ---
type MockRevenueWriterSvc struct {
	mock.Mock
}

func (m *MockRevenueWriterSvc) CreateRevenue(ctx context.Context, userID, companyID string, req dto.CreateRevenueRequest) (*domain.RevenueEntry, error) {
	args := m.Called(ctx, userID, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueEntry), args.Error(1)
}

func (m *MockRevenueWriterSvc) DeleteRevenue(ctx context.Context, userID, companyID, revenueID string) error {
	args := m.Called(ctx, userID, companyID, revenueID)
	return args.Error(0)
}

func (m *MockRevenueWriterSvc) DeleteAllRevenues(ctx context.Context, userID, companyID string) (int64, error) {
	args := m.Called(ctx, userID, companyID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ExpenseWriterSvc ---
type MockExpenseWriterSvc struct {
	mock.Mock
}

func (m *MockExpenseWriterSvc) CreateExpense(ctx context.Context, userID, companyID string, req dto.CreateExpenseRequest) (*domain.ExpenseEntry, error) {
	args := m.Called(ctx, userID, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseEntry), args.Error(1)
}

func (m *MockExpenseWriterSvc) DeleteExpense(ctx context.Context, userID, companyID, expenseID string) error {
	args := m.Called(ctx, userID, companyID, expenseID)
	return args.Error(0)
}

func (m *MockExpenseWriterSvc) DeleteAllExpenses(ctx context.Context, userID, companyID string) (int64, error) {
	args := m.Called(ctx, userID, companyID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type ReportServiceTestSuite struct {
	suite.Suite
	mockRevenueRepo *MockRevenueRepository
	mockRevenueSvc  *MockRevenueWriterSvc
	mockExpenseSvc  *MockExpenseWriterSvc
	mockAuthorizer  *MockCompanyAuthorizer
	service         portssvc.ReportSvcFacade
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockRevenueRepo = new(MockRevenueRepository)
	suite.mockRevenueSvc = new(MockRevenueWriterSvc)
	suite.mockExpenseSvc = new(MockExpenseWriterSvc)
	suite.mockAuthorizer = new(MockCompanyAuthorizer)
	suite.service = services.NewReportService(
		suite.mockRevenueRepo,
		suite.mockRevenueSvc,
		suite.mockExpenseSvc,
		suite.mockAuthorizer,
	)
}

// --- Test Cases ---

func (suite *ReportServiceTestSuite) TestGenerateReport_RequiresAuthentication() {
	ctx := context.Background()

	report, err := suite.service.GenerateReport(ctx, "", uuid.NewString(), domain.ReportMonthly, 4, 2024, "pdf")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(report)
	suite.mockRevenueRepo.AssertNotCalled(suite.T(), "ListRevenuesInPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestGenerateReport_RequiresCompany() {
	ctx := context.Background()

	report, err := suite.service.GenerateReport(ctx, uuid.NewString(), "", domain.ReportMonthly, 4, 2024, "pdf")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(report)
}

func (suite *ReportServiceTestSuite) TestGenerateReport_RejectsInvalidMonth() {
	ctx := context.Background()

	report, err := suite.service.GenerateReport(ctx, uuid.NewString(), uuid.NewString(), domain.ReportMonthly, 13, 2024, "pdf")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(report)
	suite.mockAuthorizer.AssertNotCalled(suite.T(), "AuthorizeUserAction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestGenerateReport_BoundedMonthReadAndPeriodLabel() {
	ctx := context.Background()
	userID := uuid.NewString()
	companyID := uuid.NewString()
	wantStart := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := wantStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, userID, companyID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockRevenueRepo.On("ListRevenuesInPeriod", ctx, companyID, wantStart, wantEnd).
		Return([]domain.RevenueEntry{{RevenueID: "r1"}, {RevenueID: "r2"}}, nil).Once()

	report, err := suite.service.GenerateReport(ctx, userID, companyID, domain.ReportMonthly, 4, 2024, "pdf")

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Equal("Abril 2024", report.Period)
	suite.Equal(companyID, report.CompanyID)
	suite.Equal(2, report.EntryCount)
	suite.Equal("pdf", report.Format)
	suite.mockRevenueRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestGenerateReport_CancelledContextAborts() {
	userID := uuid.NewString()
	companyID := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, userID, companyID, domain.RoleReadOnly).Return(nil)
	suite.mockRevenueRepo.On("ListRevenuesInPeriod", ctx, companyID, mock.Anything, mock.Anything).
		Return([]domain.RevenueEntry{}, nil).Once()

	report, err := suite.service.GenerateReport(ctx, userID, companyID, domain.ReportMonthly, 4, 2024, "pdf")

	suite.Require().Error(err)
	suite.ErrorIs(err, context.Canceled)
	suite.Nil(report)

	reports, err := suite.service.ListReports(context.Background(), userID, companyID)
	suite.Require().NoError(err)
	suite.Empty(reports)
}

func (suite *ReportServiceTestSuite) TestListReports_RequiresAuthentication() {
	reports, err := suite.service.ListReports(context.Background(), "", uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(reports)
}

func (suite *ReportServiceTestSuite) TestListReports_NoCompanySelected() {
	reports, err := suite.service.ListReports(context.Background(), uuid.NewString(), "")

	suite.Require().NoError(err)
	suite.NotNil(reports)
	suite.Empty(reports)
	suite.mockAuthorizer.AssertNotCalled(suite.T(), "AuthorizeUserAction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestListReports_NonMemberSeesNothing() {
	ctx := context.Background()
	ownerUserID := uuid.NewString()
	outsiderUserID := uuid.NewString()
	companyID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, ownerUserID, companyID, domain.RoleReadOnly).Return(nil)
	suite.mockRevenueRepo.On("ListRevenuesInPeriod", ctx, companyID, mock.Anything, mock.Anything).
		Return([]domain.RevenueEntry{}, nil).Once()

	_, err := suite.service.GenerateReport(ctx, ownerUserID, companyID, domain.ReportMonthly, 4, 2024, "pdf")
	suite.Require().NoError(err)

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, outsiderUserID, companyID, domain.RoleReadOnly).
		Return(apperrors.ErrForbidden).Once()

	reports, err := suite.service.ListReports(ctx, outsiderUserID, companyID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(reports)
}

func (suite *ReportServiceTestSuite) TestListReports_ScopedToCompany() {
	ctx := context.Background()
	userID := uuid.NewString()
	companyA := uuid.NewString()
	companyB := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, userID, mock.Anything, domain.RoleReadOnly).Return(nil)
	suite.mockRevenueRepo.On("ListRevenuesInPeriod", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.RevenueEntry{}, nil)

	for i, companyID := range []string{companyA, companyB} {
		_, err := suite.service.GenerateReport(ctx, userID, companyID, domain.ReportMonthly, i+1, 2024, "pdf")
		suite.Require().NoError(err)
	}

	reports, err := suite.service.ListReports(ctx, userID, companyA)

	suite.Require().NoError(err)
	suite.Require().Len(reports, 1)
	suite.Equal(companyA, reports[0].CompanyID)
}

func (suite *ReportServiceTestSuite) TestRegistry_KeepsNewestFiveOnly() {
	ctx := context.Background()
	userID := uuid.NewString()
	companyID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, userID, companyID, domain.RoleReadOnly).Return(nil)
	suite.mockRevenueRepo.On("ListRevenuesInPeriod", ctx, companyID, mock.Anything, mock.Anything).
		Return([]domain.RevenueEntry{}, nil).Times(6)

	for month := 1; month <= 6; month++ {
		_, err := suite.service.GenerateReport(ctx, userID, companyID, domain.ReportMonthly, month, 2024, "pdf")
		suite.Require().NoError(err)
	}

	reports, err := suite.service.ListReports(ctx, userID, companyID)

	suite.Require().NoError(err)
	suite.Require().Len(reports, 5)
	// Newest first: June down to February; January fell off.
	suite.Equal("Junho 2024", reports[0].Period)
	suite.Equal("Fevereiro 2024", reports[4].Period)
	for _, r := range reports {
		suite.NotEqual("Janeiro 2024", r.Period)
	}
}

func (suite *ReportServiceTestSuite) TestClearAllData_RequiresAdmin() {
	ctx := context.Background()
	userID := uuid.NewString()
	companyID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, userID, companyID, domain.RoleAdmin).
		Return(apperrors.ErrForbidden).Once()

	err := suite.service.ClearAllData(ctx, userID, companyID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRevenueSvc.AssertNotCalled(suite.T(), "DeleteAllRevenues", mock.Anything, mock.Anything, mock.Anything)
	suite.mockExpenseSvc.AssertNotCalled(suite.T(), "DeleteAllExpenses", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestClearAllData_WipesEntriesAndOwnRegistryOnly() {
	ctx := context.Background()
	userID := uuid.NewString()
	ownCompanyID := uuid.NewString()
	otherCompanyID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, userID, mock.Anything, domain.RoleReadOnly).Return(nil)
	suite.mockRevenueRepo.On("ListRevenuesInPeriod", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.RevenueEntry{}, nil)

	for i, companyID := range []string{ownCompanyID, otherCompanyID} {
		_, err := suite.service.GenerateReport(ctx, userID, companyID, domain.ReportMonthly, i+1, 2024, "pdf")
		suite.Require().NoError(err, fmt.Sprintf("setup generation %d", i))
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, userID, ownCompanyID, domain.RoleAdmin).Return(nil).Once()
	suite.mockRevenueSvc.On("DeleteAllRevenues", ctx, userID, ownCompanyID).Return(int64(12), nil).Once()
	suite.mockExpenseSvc.On("DeleteAllExpenses", ctx, userID, ownCompanyID).Return(int64(8), nil).Once()

	err := suite.service.ClearAllData(ctx, userID, ownCompanyID)

	suite.Require().NoError(err)
	suite.mockRevenueSvc.AssertExpectations(suite.T())
	suite.mockExpenseSvc.AssertExpectations(suite.T())

	ownReports, err := suite.service.ListReports(ctx, userID, ownCompanyID)
	suite.Require().NoError(err)
	suite.Empty(ownReports)
	otherReports, err := suite.service.ListReports(ctx, userID, otherCompanyID)
	suite.Require().NoError(err)
	suite.Require().Len(otherReports, 1)
	suite.Equal(otherCompanyID, otherReports[0].CompanyID)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
