package handlers

import (
	"log/slog"
	"net/http"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	portssvc "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/services"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/dto"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportHandler handles HTTP requests for the report registry.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

// newReportHandler creates a new reportHandler.
func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{
		reportService: rs,
	}
}

// registerReportRoutes registers report routes nested under a company.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	reports := rg.Group("/reports")
	{
		reports.POST("", h.generateReport)
		reports.GET("", h.listReports)
	}
	rg.DELETE("/data", h.clearAllData)
}

// generateReport godoc
// @Summary Generate a report
// @Description Runs a bounded read of the requested month's revenue entries and records the report metadata in the registry.
// @Tags reports
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   report body dto.GenerateReportRequest true "Report parameters"
// @Success 201 {object} dto.ReportResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /companies/{company_id}/reports [post]
func (h *reportHandler) generateReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var req dto.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GenerateReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.reportService.GenerateReport(
		c.Request.Context(),
		userID,
		companyID,
		domain.ReportType(req.ReportType),
		req.Month,
		req.Year,
		req.Format,
	)
	if err != nil {
		respondServiceError(c, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusCreated, dto.ToReportResponse(report))
}

// listReports godoc
// @Summary List generated reports
// @Description Returns the company's report registry entries, newest first.
// @Tags reports
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Success 200 {object} dto.ListReportsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to list reports"
// @Security BearerAuth
// @Router /companies/{company_id}/reports [get]
func (h *reportHandler) listReports(c *gin.Context) {
	companyID := c.Param("company_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	reports, err := h.reportService.ListReports(c.Request.Context(), userID, companyID)
	if err != nil {
		respondServiceError(c, err, "Failed to list reports")
		return
	}

	c.JSON(http.StatusOK, dto.ToListReportsResponse(reports))
}

// clearAllData godoc
// @Summary Clear all company data
// @Description Irreversibly deletes every revenue and expense entry of the company and empties its report registry (requires admin role).
// @Tags reports
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to clear data"
// @Security BearerAuth
// @Router /companies/{company_id}/data [delete]
func (h *reportHandler) clearAllData(c *gin.Context) {
	companyID := c.Param("company_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.reportService.ClearAllData(c.Request.Context(), userID, companyID); err != nil {
		respondServiceError(c, err, "Failed to clear company data")
		return
	}

	c.Status(http.StatusNoContent)
}
