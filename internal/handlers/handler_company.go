package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/apperrors"
	portssvc "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/services"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/dto"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/middleware"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// respondServiceError translates a service error into an HTTP response. Known
// application errors keep their message; everything else is masked as a 500.
func respondServiceError(c *gin.Context, err error, fallback string) {
	code := apperrors.StatusCode(err)
	if code >= http.StatusInternalServerError {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(code, ErrorResponse{Error: fallback})
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(code, ErrorResponse{Error: appErr.Message})
		return
	}
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// companyHandler handles HTTP requests related to companies.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
	cfg            *config.Config
}

// newCompanyHandler creates a new companyHandler.
func newCompanyHandler(cs portssvc.CompanySvcFacade, cfg *config.Config) *companyHandler {
	return &companyHandler{
		companyService: cs,
		cfg:            cfg,
	}
}

// registerCompanyRoutes registers routes for companies and their members, and
// nests the per-company entry, dashboard and report routes under
// /companies/:company_id.
func registerCompanyRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newCompanyHandler(services.Company, cfg)

	companies := rg.Group("/companies")
	{
		companies.POST("", h.createCompany)
		companies.GET("", h.listUserCompanies)
		companies.GET("/active", h.getActiveCompany)
	}

	companySpecific := rg.Group("/companies/:company_id")
	{
		companySpecific.POST("/select", h.selectCompany)
		companySpecific.PUT("", h.updateCompany)
		companySpecific.DELETE("", h.deleteCompany)

		companyUsers := companySpecific.Group("/users")
		{
			companyUsers.POST("", h.addUserToCompany)
			companyUsers.GET("", h.listCompanyUsers)
		}

		RegisterRevenueRoutes(companySpecific, services.Revenue)
		registerExpenseRoutes(companySpecific, services.Expense)
		registerDashboardRoutes(companySpecific, services.Dashboard)
		registerReportRoutes(companySpecific, services.Report)
	}
}

// createCompany godoc
// @Summary Create a new company
// @Description Creates a new company and assigns the creator as admin.
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "CNPJ already registered"
// @Failure 500 {object} ErrorResponse "Failed to create company"
// @Security BearerAuth
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCompany", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	newCompany, err := h.companyService.CreateCompany(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create company")
		return
	}

	logger.Info("Company created", slog.String("company_id", newCompany.CompanyID))
	c.JSON(http.StatusCreated, dto.ToCompanyResponse(newCompany))
}

// listUserCompanies godoc
// @Summary List companies for current user
// @Description Retrieves the companies the authenticated user is a member of.
// @Tags companies
// @Produce  json
// @Success 200 {object} dto.ListCompaniesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list companies"
// @Security BearerAuth
// @Router /companies [get]
func (h *companyHandler) listUserCompanies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	companies, err := h.companyService.ListUserCompanies(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list companies")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCompaniesResponse(companies))
}

// getActiveCompany godoc
// @Summary Resolve the active company
// @Description Resolves the session's active company from the remembered cookie, falling back to the first visible company. Returns a null company when the user has none.
// @Tags companies
// @Produce  json
// @Success 200 {object} dto.ActiveCompanyResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to resolve active company"
// @Security BearerAuth
// @Router /companies/active [get]
func (h *companyHandler) getActiveCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	// The remembered id lives in a client cookie; absence is not an error.
	rememberedID, _ := c.Cookie(h.cfg.CompanyCookieName)

	company, err := h.companyService.ResolveActiveCompany(c.Request.Context(), userID, rememberedID)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve active company")
		return
	}

	c.JSON(http.StatusOK, dto.ToActiveCompanyResponse(company))
}

// selectCompany godoc
// @Summary Select the active company
// @Description Marks a company as the session's active one, persisting the choice in a client cookie, and returns the company with its derived theme.
// @Tags companies
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Success 200 {object} dto.ActiveCompanyResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not a member of the company"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 500 {object} ErrorResponse "Failed to select company"
// @Security BearerAuth
// @Router /companies/{company_id}/select [post]
func (h *companyHandler) selectCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	company, theme, err := h.companyService.SelectCompany(c.Request.Context(), userID, companyID)
	if err != nil {
		respondServiceError(c, err, "Failed to select company")
		return
	}

	c.SetCookie(
		h.cfg.CompanyCookieName,
		company.CompanyID,
		int(h.cfg.CompanyCookieMaxAge.Seconds()),
		"/",
		"",
		h.cfg.IsProduction,
		false, // readable by the frontend, mirrors client-side persistence
	)

	resp := dto.ToCompanyResponse(company)
	c.JSON(http.StatusOK, dto.ActiveCompanyResponse{Company: &resp, Theme: &theme})
}

// updateCompany godoc
// @Summary Update a company
// @Description Updates company details (requires admin role).
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   company body dto.UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 500 {object} ErrorResponse "Failed to update company"
// @Security BearerAuth
// @Router /companies/{company_id} [put]
func (h *companyHandler) updateCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCompany", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update company")
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// deleteCompany godoc
// @Summary Delete a company
// @Description Removes a company and its memberships (requires admin role).
// @Tags companies
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 500 {object} ErrorResponse "Failed to delete company"
// @Security BearerAuth
// @Router /companies/{company_id} [delete]
func (h *companyHandler) deleteCompany(c *gin.Context) {
	companyID := c.Param("company_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.companyService.DeleteCompany(c.Request.Context(), companyID, userID); err != nil {
		respondServiceError(c, err, "Failed to delete company")
		return
	}

	c.Status(http.StatusNoContent)
}

// addUserToCompany godoc
// @Summary Add a user to a company
// @Description Adds a specified user to a company with a given role (requires admin permission).
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   user_details body dto.AddUserToCompanyRequest true "User ID and Role"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden (caller is not admin)"
// @Failure 404 {object} ErrorResponse "Company or user not found"
// @Failure 500 {object} ErrorResponse "Failed to add user"
// @Security BearerAuth
// @Router /companies/{company_id}/users [post]
func (h *companyHandler) addUserToCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var req dto.AddUserToCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddUserToCompany", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	addingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.companyService.AddUserToCompany(c.Request.Context(), addingUserID, req.UserID, companyID, req.Role); err != nil {
		respondServiceError(c, err, "Failed to add user to company")
		return
	}

	c.Status(http.StatusNoContent)
}

// listCompanyUsers godoc
// @Summary List company members
// @Description Retrieves the memberships of a company.
// @Tags companies
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Success 200 {array} dto.UserCompanyResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to list members"
// @Security BearerAuth
// @Router /companies/{company_id}/users [get]
func (h *companyHandler) listCompanyUsers(c *gin.Context) {
	companyID := c.Param("company_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	memberships, err := h.companyService.ListCompanyUsers(c.Request.Context(), companyID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list company members")
		return
	}

	out := make([]dto.UserCompanyResponse, len(memberships))
	for i := range memberships {
		out[i] = dto.ToUserCompanyResponse(&memberships[i])
	}
	c.JSON(http.StatusOK, out)
}
