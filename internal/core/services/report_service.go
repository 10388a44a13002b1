package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/apperrors"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	portsrepo "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/repositories"
	portssvc "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/services"
)

// maxReports caps the in-memory registry at the most recent generations.
const maxReports = 5

// generationDelay simulates document assembly time. Generation currently
// produces metadata only; the delay keeps the UX honest about the cost.
const generationDelay = 1500 * time.Millisecond

// reportService implements the ReportSvcFacade interface. The registry is
// process-local: it resets on restart and is not shared between instances.
type reportService struct {
	BaseService
	revenueRepo portsrepo.RevenueReader
	revenueSvc  portssvc.RevenueWriterSvc
	expenseSvc  portssvc.ExpenseWriterSvc

	mu      sync.Mutex
	reports []domain.Report // newest first
}

// NewReportService creates a new report service with the provided dependencies
func NewReportService(
	revenueRepo portsrepo.RevenueReader,
	revenueSvc portssvc.RevenueWriterSvc,
	expenseSvc portssvc.ExpenseWriterSvc,
	authorizer portssvc.CompanyAuthorizerSvc,
) portssvc.ReportSvcFacade {
	return &reportService{
		BaseService: BaseService{CompanyAuthorizer: authorizer},
		revenueRepo: revenueRepo,
		revenueSvc:  revenueSvc,
		expenseSvc:  expenseSvc,
	}
}

// Ensure reportService implements the ReportSvcFacade interface
var _ portssvc.ReportSvcFacade = (*reportService)(nil)

// GenerateReport records one generation in the registry after a bounded read
// of the month's revenue entries.
func (s *reportService) GenerateReport(ctx context.Context, userID, companyID string, reportType domain.ReportType, month, year int, format string) (*domain.Report, error) {
	if userID == "" {
		return nil, apperrors.NewUnauthorizedError("authentication required to generate reports")
	}
	if companyID == "" {
		return nil, apperrors.NewValidationFailedError("no company selected")
	}
	if month < 1 || month > 12 {
		return nil, apperrors.NewValidationFailedError("month must be between 1 and 12")
	}
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	// Bounded read: only the requested month, never the full table.
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	entries, err := s.revenueRepo.ListRevenuesInPeriod(ctx, companyID, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to read revenue entries for report",
			slog.String("company_id", companyID),
			slog.Int("month", month),
			slog.Int("year", year))
		return nil, err
	}

	select {
	case <-time.After(generationDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	report := domain.Report{
		Name:        reportType.DisplayName(),
		Kind:        reportType.Kind(),
		Period:      fmt.Sprintf("%s %d", domain.MonthNames[month], year),
		Format:      format,
		CompanyID:   companyID,
		EntryCount:  len(entries),
		GeneratedAt: time.Now(),
	}

	s.mu.Lock()
	s.reports = append([]domain.Report{report}, s.reports...)
	if len(s.reports) > maxReports {
		s.reports = s.reports[:maxReports]
	}
	s.mu.Unlock()

	s.LogInfo(ctx, "Report generated",
		slog.String("company_id", companyID),
		slog.String("report_name", report.Name),
		slog.String("period", report.Period),
		slog.Int("entry_count", report.EntryCount))
	return &report, nil
}

// ListReports returns the company's registry entries, newest first. Records
// of other companies never cross the membership boundary.
func (s *reportService) ListReports(ctx context.Context, userID, companyID string) ([]domain.Report, error) {
	if userID == "" {
		return nil, apperrors.NewUnauthorizedError("authentication required to list reports")
	}
	if companyID == "" {
		return []domain.Report{}, nil
	}
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Report, 0, len(s.reports))
	for _, r := range s.reports {
		if r.CompanyID == companyID {
			out = append(out, r)
		}
	}
	return out, nil
}

// ClearAllData wipes the company's revenue and expense entries and empties the
// registry for that company. Irreversible.
func (s *reportService) ClearAllData(ctx context.Context, userID, companyID string) error {
	if userID == "" {
		return apperrors.NewUnauthorizedError("authentication required to clear data")
	}
	if companyID == "" {
		return apperrors.NewValidationFailedError("no company selected")
	}
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleAdmin); err != nil {
		return err
	}

	revenuesDeleted, err := s.revenueSvc.DeleteAllRevenues(ctx, userID, companyID)
	if err != nil {
		return err
	}
	expensesDeleted, err := s.expenseSvc.DeleteAllExpenses(ctx, userID, companyID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.reports[:0]
	for _, r := range s.reports {
		if r.CompanyID != companyID {
			kept = append(kept, r)
		}
	}
	s.reports = kept
	s.mu.Unlock()

	s.LogInfo(ctx, "All company data cleared",
		slog.String("company_id", companyID),
		slog.String("user_id", userID),
		slog.Int64("revenues_deleted", revenuesDeleted),
		slog.Int64("expenses_deleted", expensesDeleted))
	return nil
}
