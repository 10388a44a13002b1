package dto

import (
	"time"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/utils"
)

// --- Revenue DTOs ---

// CreateRevenueRequest is the revenue form input. The value arrives as the
// localized currency string typed by the user ("R$ 1.234,56").
type CreateRevenueRequest struct {
	ServiceType   string `json:"serviceType" binding:"required"`
	ClientName    string `json:"clientName" binding:"required"`
	ServiceValue  string `json:"serviceValue" binding:"required"`
	ServiceDate   string `json:"serviceDate" binding:"required"` // YYYY-MM-DD
	PaymentStatus string `json:"paymentStatus" binding:"required,oneof=paid pending late"`
}

// RevenueResponse defines data returned for a revenue entry. The amount is the
// stored numeric value; formatted fields are display transforms applied after
// fetch, never before storage.
type RevenueResponse struct {
	RevenueID      string    `json:"revenueID"`
	CompanyID      string    `json:"companyID"`
	ServiceName    string    `json:"serviceName"`
	ClientName     string    `json:"clientName"`
	Amount         string    `json:"amount"`
	FormattedValue string    `json:"formattedValue"`
	ServiceDate    string    `json:"serviceDate"`
	FormattedDate  string    `json:"formattedDate"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToRevenueResponse converts domain.RevenueEntry to DTO.
func ToRevenueResponse(e *domain.RevenueEntry) RevenueResponse {
	return RevenueResponse{
		RevenueID:      e.RevenueID,
		CompanyID:      e.CompanyID,
		ServiceName:    e.ServiceName,
		ClientName:     e.ClientName,
		Amount:         e.Amount.StringFixed(2),
		FormattedValue: utils.FormatBRL(e.Amount),
		ServiceDate:    e.ServiceDate.Format("2006-01-02"),
		FormattedDate:  utils.FormatDateBR(e.ServiceDate),
		Status:         string(e.Status),
		CreatedAt:      e.CreatedAt,
	}
}

// ListRevenuesResponse wraps a list of revenue entries.
type ListRevenuesResponse struct {
	Revenues []RevenueResponse `json:"revenues"`
}

// ToListRevenuesResponse converts a slice of domain.RevenueEntry to DTO.
func ToListRevenuesResponse(es []domain.RevenueEntry) ListRevenuesResponse {
	list := make([]RevenueResponse, len(es))
	for i, e := range es {
		list[i] = ToRevenueResponse(&e)
	}
	return ListRevenuesResponse{Revenues: list}
}

// DeleteAllResponse reports how many rows a bulk delete removed.
type DeleteAllResponse struct {
	Deleted int64 `json:"deleted"`
}
