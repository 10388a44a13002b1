package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	portssvc "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/services"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/dto"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/middleware"
	"github.com/gin-gonic/gin"
	"log/slog"
)

// revenueHandler handles HTTP requests related to revenue entries.
type revenueHandler struct {
	revenueService portssvc.RevenueSvcFacade
}

// newRevenueHandler creates a new revenueHandler.
func newRevenueHandler(rs portssvc.RevenueSvcFacade) *revenueHandler {
	return &revenueHandler{
		revenueService: rs,
	}
}

// RegisterRevenueRoutes registers revenue routes nested under a company.
func RegisterRevenueRoutes(rg *gin.RouterGroup, revenueService portssvc.RevenueSvcFacade) {
	h := newRevenueHandler(revenueService)

	revenues := rg.Group("/revenues")
	{
		revenues.GET("", h.listRevenues)
		revenues.POST("", h.createRevenue)
		revenues.DELETE("/:revenue_id", h.deleteRevenue)
		revenues.DELETE("", h.deleteAllRevenues)
		revenues.GET("/export", h.exportRevenues)
	}
}

// parseEntryFilterQuery reads the shared filter query parameters. The date
// range applies only when both bounds parse; a half-open range is ignored.
func parseEntryFilterQuery(c *gin.Context) domain.EntryFilter {
	var filter domain.EntryFilter

	if status := c.Query("status"); status != "" && status != "all" {
		ps := domain.PaymentStatus(status)
		filter.Status = &ps
	}
	if paidStr := c.Query("paid"); paidStr != "" {
		if paid, err := strconv.ParseBool(paidStr); err == nil {
			filter.Paid = &paid
		}
	}
	if category := c.Query("category"); category != "" && category != "all" {
		cat := domain.ExpenseCategory(category)
		filter.Category = &cat
	}

	startStr, endStr := c.Query("start_date"), c.Query("end_date")
	if startStr != "" && endStr != "" {
		start, errStart := time.Parse("2006-01-02", startStr)
		end, errEnd := time.Parse("2006-01-02", endStr)
		if errStart == nil && errEnd == nil {
			// Make the end bound inclusive for the whole day.
			end = end.Add(24*time.Hour - time.Nanosecond)
			filter.StartDate = &start
			filter.EndDate = &end
		}
	}

	filter.Search = c.Query("search")
	return filter
}

// listRevenues godoc
// @Summary List revenue entries
// @Description Lists the company's revenue entries, newest first, under optional filters.
// @Tags revenues
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   status query string false "Payment status filter (paid, pending, late)"
// @Param   start_date query string false "Range start (YYYY-MM-DD, requires end_date)"
// @Param   end_date query string false "Range end (YYYY-MM-DD, requires start_date)"
// @Param   search query string false "Free-text search on service and client names"
// @Success 200 {object} dto.ListRevenuesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to list revenues"
// @Security BearerAuth
// @Router /companies/{company_id}/revenues [get]
func (h *revenueHandler) listRevenues(c *gin.Context) {
	companyID := c.Param("company_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entries, err := h.revenueService.ListRevenues(c.Request.Context(), userID, companyID, parseEntryFilterQuery(c))
	if err != nil {
		respondServiceError(c, err, "Failed to list revenues")
		return
	}

	c.JSON(http.StatusOK, dto.ToListRevenuesResponse(entries))
}

// createRevenue godoc
// @Summary Create a revenue entry
// @Description Validates the form input and creates one revenue entry for the company.
// @Tags revenues
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   revenue body dto.CreateRevenueRequest true "Revenue entry details"
// @Success 201 {object} dto.RevenueResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to create revenue"
// @Security BearerAuth
// @Router /companies/{company_id}/revenues [post]
func (h *revenueHandler) createRevenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var req dto.CreateRevenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRevenue", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.revenueService.CreateRevenue(c.Request.Context(), userID, companyID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create revenue")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRevenueResponse(entry))
}

// deleteRevenue godoc
// @Summary Delete a revenue entry
// @Description Deletes one revenue entry, scoped to the company.
// @Tags revenues
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   revenue_id path string true "Revenue entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Entry not found in this company"
// @Failure 500 {object} ErrorResponse "Failed to delete revenue"
// @Security BearerAuth
// @Router /companies/{company_id}/revenues/{revenue_id} [delete]
func (h *revenueHandler) deleteRevenue(c *gin.Context) {
	companyID := c.Param("company_id")
	revenueID := c.Param("revenue_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.revenueService.DeleteRevenue(c.Request.Context(), userID, companyID, revenueID); err != nil {
		respondServiceError(c, err, "Failed to delete revenue")
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteAllRevenues godoc
// @Summary Delete all revenue entries
// @Description Deletes every revenue entry of the company (requires admin role). Entries of other companies are never touched.
// @Tags revenues
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Success 200 {object} dto.DeleteAllResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to delete revenues"
// @Security BearerAuth
// @Router /companies/{company_id}/revenues [delete]
func (h *revenueHandler) deleteAllRevenues(c *gin.Context) {
	companyID := c.Param("company_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	deleted, err := h.revenueService.DeleteAllRevenues(c.Request.Context(), userID, companyID)
	if err != nil {
		respondServiceError(c, err, "Failed to delete revenues")
		return
	}

	c.JSON(http.StatusOK, dto.DeleteAllResponse{Deleted: deleted})
}

// exportRevenues godoc
// @Summary Export revenue entries
// @Description Exports the filtered revenue list as a CSV or XLSX download with pt-BR formatted values.
// @Tags revenues
// @Produce  application/octet-stream
// @Param   company_id path string true "Company ID"
// @Param   format query string false "Export format: csv (default) or xlsx"
// @Param   status query string false "Payment status filter"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Unsupported format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to export revenues"
// @Security BearerAuth
// @Router /companies/{company_id}/revenues/export [get]
func (h *revenueHandler) exportRevenues(c *gin.Context) {
	companyID := c.Param("company_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	format := c.DefaultQuery("format", "csv")
	data, contentType, err := h.revenueService.ExportRevenues(c.Request.Context(), userID, companyID, parseEntryFilterQuery(c), format)
	if err != nil {
		respondServiceError(c, err, "Failed to export revenues")
		return
	}

	filename := fmt.Sprintf("receitas_%s.%s", time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
