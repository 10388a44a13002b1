package services

import (
	"context"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/dto"
)

// RevenueReaderSvc defines read operations for revenue entries.
type RevenueReaderSvc interface {
	// ListRevenues fetches the revenue entries for the active company under the
	// given filter. An empty companyID is the "nothing selected yet" state and
	// returns an empty list with no error.
	ListRevenues(ctx context.Context, userID, companyID string, filter domain.EntryFilter) ([]domain.RevenueEntry, error)
}

// RevenueWriterSvc defines mutation operations for revenue entries.
type RevenueWriterSvc interface {
	// CreateRevenue validates the form input (all fields required, localized
	// currency string) and inserts one entry tagged with the company id.
	// Validation failures never reach the repository.
	CreateRevenue(ctx context.Context, userID, companyID string, req dto.CreateRevenueRequest) (*domain.RevenueEntry, error)

	// DeleteRevenue deletes a single entry, scoped to the company id.
	DeleteRevenue(ctx context.Context, userID, companyID, revenueID string) error

	// DeleteAllRevenues deletes every entry of the company; never crosses tenants.
	DeleteAllRevenues(ctx context.Context, userID, companyID string) (int64, error)
}

// RevenueExporterSvc turns a filtered revenue list into a spreadsheet document.
type RevenueExporterSvc interface {
	// ExportRevenues renders the filtered entries as CSV or XLSX bytes together
	// with the content type to serve them with.
	ExportRevenues(ctx context.Context, userID, companyID string, filter domain.EntryFilter, format string) ([]byte, string, error)
}

// RevenueSvcFacade combines all revenue service interfaces.
type RevenueSvcFacade interface {
	RevenueReaderSvc
	RevenueWriterSvc
	RevenueExporterSvc
}
