package dto

import (
	"time"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
)

// --- Report DTOs ---

// GenerateReportRequest defines data for triggering report generation.
type GenerateReportRequest struct {
	ReportType string `json:"reportType" binding:"required,oneof=monthly cashflow services expenses annual forecast"`
	Month      int    `json:"month" binding:"required,min=1,max=12"`
	Year       int    `json:"year" binding:"required,min=2000,max=2100"`
	Format     string `json:"format" binding:"required,oneof=pdf xlsx csv"`
}

// ReportResponse defines data returned for a generated-report record.
type ReportResponse struct {
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Period      string    `json:"period"`
	Format      string    `json:"format"`
	EntryCount  int       `json:"entryCount"`
	GeneratedAt time.Time `json:"generatedAt"`
	Date        string    `json:"date"` // pt-BR display date
}

// ToReportResponse converts domain.Report to DTO.
func ToReportResponse(r *domain.Report) ReportResponse {
	return ReportResponse{
		Name:        r.Name,
		Type:        r.Kind,
		Period:      r.Period,
		Format:      r.Format,
		EntryCount:  r.EntryCount,
		GeneratedAt: r.GeneratedAt,
		Date:        r.GeneratedAt.Format("02/01/2006"),
	}
}

// ListReportsResponse wraps the report registry contents.
type ListReportsResponse struct {
	Reports []ReportResponse `json:"reports"`
}

// ToListReportsResponse converts a slice of domain.Report to DTO.
func ToListReportsResponse(rs []domain.Report) ListReportsResponse {
	list := make([]ReportResponse, len(rs))
	for i, r := range rs {
		list[i] = ToReportResponse(&r)
	}
	return ListReportsResponse{Reports: list}
}
