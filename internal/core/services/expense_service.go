package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/apperrors"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	portsrepo "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/repositories"
	portssvc "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/services"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/dto"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/utils"
	"github.com/google/uuid"
)

// expenseService implements the ExpenseSvcFacade interface
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new expense service with the provided dependencies
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, authorizer portssvc.CompanyAuthorizerSvc) portssvc.ExpenseSvcFacade {
	return &expenseService{
		BaseService: BaseService{CompanyAuthorizer: authorizer},
		expenseRepo: expenseRepo,
	}
}

// Ensure expenseService implements the ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// ListExpenses fetches the company's entries under the filter. An empty
// companyID returns an empty list with no error and no repository call.
func (s *expenseService) ListExpenses(ctx context.Context, userID, companyID string, filter domain.EntryFilter) ([]domain.ExpenseEntry, error) {
	if companyID == "" {
		return []domain.ExpenseEntry{}, nil
	}
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	entries, err := s.expenseRepo.ListExpenses(ctx, companyID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses",
			slog.String("company_id", companyID))
		return nil, err
	}
	return entries, nil
}

// CreateExpense validates the form input fully before touching the repository.
func (s *expenseService) CreateExpense(ctx context.Context, userID, companyID string, req dto.CreateExpenseRequest) (*domain.ExpenseEntry, error) {
	if companyID == "" {
		return nil, apperrors.NewValidationFailedError("no company selected")
	}

	amount, err := utils.ParseBRL(req.Value)
	if err != nil {
		return nil, err
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("invalid due date: " + req.DueDate)
	}

	category := domain.ExpenseCategory(req.Category)
	if !category.Valid() {
		return nil, apperrors.NewValidationFailedError("invalid expense category: " + req.Category)
	}

	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := domain.ExpenseEntry{
		ExpenseID:   uuid.NewString(),
		CompanyID:   companyID,
		Description: req.Description,
		Category:    category,
		Amount:      amount,
		DueDate:     dueDate,
		IsPaid:      req.IsPaid,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save expense entry",
			slog.String("company_id", companyID),
			slog.String("expense_id", entry.ExpenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense entry created",
		slog.String("expense_id", entry.ExpenseID),
		slog.String("company_id", companyID))
	return &entry, nil
}

// DeleteExpense deletes one entry, scoped to the company id.
func (s *expenseService) DeleteExpense(ctx context.Context, userID, companyID, expenseID string) error {
	if companyID == "" {
		return apperrors.NewValidationFailedError("no company selected")
	}
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID, companyID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense entry",
			slog.String("expense_id", expenseID),
			slog.String("company_id", companyID))
		return err
	}

	s.LogInfo(ctx, "Expense entry deleted",
		slog.String("expense_id", expenseID),
		slog.String("company_id", companyID))
	return nil
}

// DeleteAllExpenses wipes the company's entries only.
func (s *expenseService) DeleteAllExpenses(ctx context.Context, userID, companyID string) (int64, error) {
	if companyID == "" {
		return 0, apperrors.NewValidationFailedError("no company selected")
	}
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleAdmin); err != nil {
		return 0, err
	}

	deleted, err := s.expenseRepo.DeleteAllExpenses(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete all expense entries",
			slog.String("company_id", companyID))
		return 0, err
	}

	s.LogInfo(ctx, "All expense entries deleted for company",
		slog.String("company_id", companyID),
		slog.Int64("deleted", deleted))
	return deleted, nil
}
