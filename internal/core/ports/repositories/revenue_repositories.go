package repositories

import (
	"context"
	"time"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
)

// RevenueReader defines read operations for revenue entries.
// Every method is scoped to a company id; there is no unscoped read.
type RevenueReader interface {
	// ListRevenues retrieves the company's revenue entries matching the filter,
	// ordered by creation time descending.
	ListRevenues(ctx context.Context, companyID string, filter domain.EntryFilter) ([]domain.RevenueEntry, error)

	// ListRevenuesInPeriod retrieves the company's revenue entries whose service
	// date falls inside [start, end], both inclusive.
	ListRevenuesInPeriod(ctx context.Context, companyID string, start, end time.Time) ([]domain.RevenueEntry, error)
}

// RevenueWriter defines write operations for revenue entries.
type RevenueWriter interface {
	// SaveRevenue persists a new revenue entry tagged with its company id.
	SaveRevenue(ctx context.Context, entry domain.RevenueEntry) error

	// DeleteRevenue deletes one entry by id, constrained to the owning company.
	// Deleting an id owned by another company yields ErrNotFound.
	DeleteRevenue(ctx context.Context, revenueID, companyID string) error

	// DeleteAllRevenues deletes every entry belonging to the given company only.
	DeleteAllRevenues(ctx context.Context, companyID string) (int64, error)
}

// RevenueRepositoryFacade combines all revenue repository interfaces.
type RevenueRepositoryFacade interface {
	RevenueReader
	RevenueWriter
}
