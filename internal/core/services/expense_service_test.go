package services_test

import (
	"context"
	"testing"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/apperrors"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	portssvc "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/services"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/services"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, companyID string, filter domain.EntryFilter) ([]domain.ExpenseEntry, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseEntry), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, entry domain.ExpenseEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID, companyID string) error {
	args := m.Called(ctx, expenseID, companyID)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteAllExpenses(ctx context.Context, companyID string) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type ExpenseServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockExpenseRepository
	mockAuthorizer *MockCompanyAuthorizer
	service        portssvc.ExpenseSvcFacade
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExpenseRepository)
	suite.mockAuthorizer = new(MockCompanyAuthorizer)
	suite.service = services.NewExpenseService(suite.mockRepo, suite.mockAuthorizer)
}

// --- Test Cases ---

func (suite *ExpenseServiceTestSuite) TestListExpenses_NoCompanySelected() {
	ctx := context.Background()

	entries, err := suite.service.ListExpenses(ctx, uuid.NewString(), "", domain.EntryFilter{})

	suite.Require().NoError(err)
	suite.NotNil(entries)
	suite.Empty(entries)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListExpenses", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_FilterPassedThrough() {
	ctx := context.Background()
	userID := uuid.NewString()
	companyID := uuid.NewString()
	paid := true
	category := domain.CategoryFornecedores
	filter := domain.EntryFilter{Paid: &paid, Category: &category}
	stored := []domain.ExpenseEntry{
		{ExpenseID: "e1", CompanyID: companyID, Description: "Urnas", Category: domain.CategoryFornecedores},
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, userID, companyID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockRepo.On("ListExpenses", ctx, companyID, filter).Return(stored, nil).Once()

	entries, err := suite.service.ListExpenses(ctx, userID, companyID, filter)

	suite.Require().NoError(err)
	suite.Equal(stored, entries)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	companyID := uuid.NewString()
	req := dto.CreateExpenseRequest{
		Description: "Aluguel da capela",
		Category:    "Instalações",
		Value:       "2.800,00",
		DueDate:     "2024-05-10",
		IsPaid:      false,
	}

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, userID, companyID, domain.RoleMember).Return(nil).Once()
	suite.mockRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.ExpenseEntry) bool {
		return e.CompanyID == companyID &&
			e.Description == req.Description &&
			e.Category == domain.CategoryInstalacoes &&
			e.Amount.Equal(decimal.RequireFromString("2800.00")) &&
			e.DueDate.Format("2006-01-02") == req.DueDate &&
			!e.IsPaid &&
			e.CreatedBy == userID
	})).Return(nil).Once()

	entry, err := suite.service.CreateExpense(ctx, userID, companyID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.ExpenseID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_UnknownCategory_NoRepoCall() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Description: "Aluguel da capela",
		Category:    "Marketing",
		Value:       "2.800,00",
		DueDate:     "2024-05-10",
	}

	entry, err := suite.service.CreateExpense(ctx, uuid.NewString(), uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
	suite.mockAuthorizer.AssertNotCalled(suite.T(), "AuthorizeUserAction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_InvalidValue_NoRepoCall() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Description: "Aluguel da capela",
		Category:    "Instalações",
		Value:       "",
		DueDate:     "2024-05-10",
	}

	entry, err := suite.service.CreateExpense(ctx, uuid.NewString(), uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_ScopedToCompany() {
	ctx := context.Background()
	userID := uuid.NewString()
	companyID := uuid.NewString()
	expenseID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, userID, companyID, domain.RoleMember).Return(nil).Once()
	suite.mockRepo.On("DeleteExpense", ctx, expenseID, companyID).Return(nil).Once()

	err := suite.service.DeleteExpense(ctx, userID, companyID, expenseID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestDeleteAllExpenses_RequiresAdmin() {
	ctx := context.Background()
	userID := uuid.NewString()
	companyID := uuid.NewString()

	suite.mockAuthorizer.On("AuthorizeUserAction", ctx, userID, companyID, domain.RoleAdmin).
		Return(apperrors.ErrForbidden).Once()

	deleted, err := suite.service.DeleteAllExpenses(ctx, userID, companyID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Zero(deleted)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteAllExpenses", mock.Anything, mock.Anything)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
