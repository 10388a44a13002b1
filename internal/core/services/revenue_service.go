package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"time"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/apperrors"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	portsrepo "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/repositories"
	portssvc "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/services"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/dto"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/utils"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// statusLabels maps the stored payment status to its pt-BR display label,
// used in exported documents.
var statusLabels = map[domain.PaymentStatus]string{
	domain.StatusPaid:    "Pago",
	domain.StatusPending: "Pendente",
	domain.StatusLate:    "Atrasado",
}

// exportHeader is the column order of exported revenue documents.
var exportHeader = []string{"Serviço", "Cliente", "Valor", "Data", "Status"}

// revenueService implements the RevenueSvcFacade interface
type revenueService struct {
	BaseService
	revenueRepo portsrepo.RevenueRepositoryFacade
}

// NewRevenueService creates a new revenue service with the provided dependencies
func NewRevenueService(revenueRepo portsrepo.RevenueRepositoryFacade, authorizer portssvc.CompanyAuthorizerSvc) portssvc.RevenueSvcFacade {
	return &revenueService{
		BaseService: BaseService{CompanyAuthorizer: authorizer},
		revenueRepo: revenueRepo,
	}
}

// Ensure revenueService implements the RevenueSvcFacade interface
var _ portssvc.RevenueSvcFacade = (*revenueService)(nil)

// ListRevenues fetches the company's entries under the filter. An empty
// companyID is the "no company selected yet" state: empty list, no error,
// and no repository call.
func (s *revenueService) ListRevenues(ctx context.Context, userID, companyID string, filter domain.EntryFilter) ([]domain.RevenueEntry, error) {
	if companyID == "" {
		return []domain.RevenueEntry{}, nil
	}
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	entries, err := s.revenueRepo.ListRevenues(ctx, companyID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list revenues",
			slog.String("company_id", companyID))
		return nil, err
	}
	return entries, nil
}

// CreateRevenue validates the form input fully before touching the repository.
func (s *revenueService) CreateRevenue(ctx context.Context, userID, companyID string, req dto.CreateRevenueRequest) (*domain.RevenueEntry, error) {
	if companyID == "" {
		return nil, apperrors.NewValidationFailedError("no company selected")
	}

	amount, err := utils.ParseBRL(req.ServiceValue)
	if err != nil {
		return nil, err
	}

	serviceDate, err := time.Parse("2006-01-02", req.ServiceDate)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("invalid service date: " + req.ServiceDate)
	}

	status := domain.PaymentStatus(req.PaymentStatus)
	if !status.Valid() {
		return nil, apperrors.NewValidationFailedError("invalid payment status: " + req.PaymentStatus)
	}

	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := domain.RevenueEntry{
		RevenueID:   uuid.NewString(),
		CompanyID:   companyID,
		ServiceName: req.ServiceType,
		ClientName:  req.ClientName,
		Amount:      amount,
		ServiceDate: serviceDate,
		Status:      status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.revenueRepo.SaveRevenue(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save revenue entry",
			slog.String("company_id", companyID),
			slog.String("revenue_id", entry.RevenueID))
		return nil, err
	}

	s.LogInfo(ctx, "Revenue entry created",
		slog.String("revenue_id", entry.RevenueID),
		slog.String("company_id", companyID))
	return &entry, nil
}

// DeleteRevenue deletes one entry; the delete is scoped to the company id so a
// foreign id reads as not found.
func (s *revenueService) DeleteRevenue(ctx context.Context, userID, companyID, revenueID string) error {
	if companyID == "" {
		return apperrors.NewValidationFailedError("no company selected")
	}
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.revenueRepo.DeleteRevenue(ctx, revenueID, companyID); err != nil {
		s.LogError(ctx, err, "Failed to delete revenue entry",
			slog.String("revenue_id", revenueID),
			slog.String("company_id", companyID))
		return err
	}

	s.LogInfo(ctx, "Revenue entry deleted",
		slog.String("revenue_id", revenueID),
		slog.String("company_id", companyID))
	return nil
}

// DeleteAllRevenues wipes the company's entries only.
func (s *revenueService) DeleteAllRevenues(ctx context.Context, userID, companyID string) (int64, error) {
	if companyID == "" {
		return 0, apperrors.NewValidationFailedError("no company selected")
	}
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleAdmin); err != nil {
		return 0, err
	}

	deleted, err := s.revenueRepo.DeleteAllRevenues(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete all revenue entries",
			slog.String("company_id", companyID))
		return 0, err
	}

	s.LogInfo(ctx, "All revenue entries deleted for company",
		slog.String("company_id", companyID),
		slog.Int64("deleted", deleted))
	return deleted, nil
}

// ExportRevenues renders the filtered list as a downloadable document.
func (s *revenueService) ExportRevenues(ctx context.Context, userID, companyID string, filter domain.EntryFilter, format string) ([]byte, string, error) {
	entries, err := s.ListRevenues(ctx, userID, companyID, filter)
	if err != nil {
		return nil, "", err
	}

	switch format {
	case "csv", "":
		data, err := renderRevenuesCSV(entries)
		return data, "text/csv; charset=utf-8", err
	case "xlsx":
		data, err := renderRevenuesXLSX(entries)
		return data, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", err
	default:
		return nil, "", apperrors.NewValidationFailedError("unsupported export format: " + format)
	}
}

func exportRow(e *domain.RevenueEntry) []string {
	label, ok := statusLabels[e.Status]
	if !ok {
		label = string(e.Status)
	}
	return []string{
		e.ServiceName,
		e.ClientName,
		utils.FormatBRL(e.Amount),
		utils.FormatDateBR(e.ServiceDate),
		label,
	}
}

func renderRevenuesCSV(entries []domain.RevenueEntry) ([]byte, error) {
	var buf bytes.Buffer
	// UTF-8 BOM so spreadsheet apps decode the accented headers correctly.
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for i := range entries {
		if err := w.Write(exportRow(&entries[i])); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func renderRevenuesXLSX(entries []domain.RevenueEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Receitas"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}
	for row := range entries {
		for col, value := range exportRow(&entries[row]) {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
