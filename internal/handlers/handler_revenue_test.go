package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/apperrors"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	portssvc "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/services"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/dto"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/handlers"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RevenueService ---
type MockRevenueService struct {
	mock.Mock
}

func (m *MockRevenueService) ListRevenues(ctx context.Context, userID, companyID string, filter domain.EntryFilter) ([]domain.RevenueEntry, error) {
	args := m.Called(ctx, userID, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RevenueEntry), args.Error(1)
}

func (m *MockRevenueService) CreateRevenue(ctx context.Context, userID, companyID string, req dto.CreateRevenueRequest) (*domain.RevenueEntry, error) {
	args := m.Called(ctx, userID, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueEntry), args.Error(1)
}

func (m *MockRevenueService) DeleteRevenue(ctx context.Context, userID, companyID, revenueID string) error {
	args := m.Called(ctx, userID, companyID, revenueID)
	return args.Error(0)
}

func (m *MockRevenueService) DeleteAllRevenues(ctx context.Context, userID, companyID string) (int64, error) {
	args := m.Called(ctx, userID, companyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRevenueService) ExportRevenues(ctx context.Context, userID, companyID string, filter domain.EntryFilter, format string) ([]byte, string, error) {
	args := m.Called(ctx, userID, companyID, filter, format)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.RevenueSvcFacade = (*MockRevenueService)(nil)

// --- Test Suite ---
type RevenueHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockRevenueService *MockRevenueService
	jwtSecret          string
}

// generateTestToken creates a signed JWT for testing.
func (suite *RevenueHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "financeiro-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *RevenueHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockRevenueService = new(MockRevenueService)

	v1 := suite.router.Group("/api/v1/companies/:company_id")
	handlers.RegisterRevenueRoutes(v1, suite.mockRevenueService)
}

func (suite *RevenueHandlerTestSuite) doRequest(method, url, userID string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *RevenueHandlerTestSuite) TestListRevenues_Success() {
	companyID := uuid.NewString()
	userID := uuid.NewString()
	stored := []domain.RevenueEntry{
		{
			RevenueID:   uuid.NewString(),
			CompanyID:   companyID,
			ServiceName: "Cremação",
			ClientName:  "Família Souza",
			Amount:      decimal.RequireFromString("3500.00"),
			ServiceDate: time.Date(2024, 4, 9, 0, 0, 0, 0, time.UTC),
			Status:      domain.StatusPaid,
		},
	}

	suite.mockRevenueService.On("ListRevenues",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		companyID,
		mock.MatchedBy(func(f domain.EntryFilter) bool {
			return f.Status != nil && *f.Status == domain.StatusPaid && f.Search == "Souza"
		}),
	).Return(stored, nil).Once()

	url := fmt.Sprintf("/api/v1/companies/%s/revenues?status=paid&search=Souza", companyID)
	w := suite.doRequest(http.MethodGet, url, userID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.ListRevenuesResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.Require().NoError(err)
	suite.Require().Len(responseBody.Revenues, 1)
	suite.Equal(stored[0].RevenueID, responseBody.Revenues[0].RevenueID)
	suite.Equal("R$ 3.500,00", responseBody.Revenues[0].FormattedValue)
	suite.Equal("09/04/2024", responseBody.Revenues[0].FormattedDate)

	suite.mockRevenueService.AssertExpectations(suite.T())
}

func (suite *RevenueHandlerTestSuite) TestListRevenues_MissingToken() {
	companyID := uuid.NewString()

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/companies/%s/revenues", companyID), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockRevenueService.AssertNotCalled(suite.T(), "ListRevenues", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RevenueHandlerTestSuite) TestCreateRevenue_Success() {
	companyID := uuid.NewString()
	userID := uuid.NewString()
	reqBody := dto.CreateRevenueRequest{
		ServiceType:   "Sepultamento",
		ClientName:    "Família Oliveira",
		ServiceValue:  "R$ 4.200,00",
		ServiceDate:   "2024-04-09",
		PaymentStatus: "pending",
	}
	created := &domain.RevenueEntry{
		RevenueID:   uuid.NewString(),
		CompanyID:   companyID,
		ServiceName: reqBody.ServiceType,
		ClientName:  reqBody.ClientName,
		Amount:      decimal.RequireFromString("4200.00"),
		ServiceDate: time.Date(2024, 4, 9, 0, 0, 0, 0, time.UTC),
		Status:      domain.StatusPending,
	}

	suite.mockRevenueService.On("CreateRevenue",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		companyID,
		reqBody,
	).Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	url := fmt.Sprintf("/api/v1/companies/%s/revenues", companyID)
	w := suite.doRequest(http.MethodPost, url, userID, body)

	suite.Equal(http.StatusCreated, w.Code)

	var responseBody dto.RevenueResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.Require().NoError(err)
	suite.Equal(created.RevenueID, responseBody.RevenueID)

	suite.mockRevenueService.AssertExpectations(suite.T())
}

func (suite *RevenueHandlerTestSuite) TestCreateRevenue_InvalidBody() {
	companyID := uuid.NewString()
	userID := uuid.NewString()

	// Missing required fields fails binding before the service is reached.
	url := fmt.Sprintf("/api/v1/companies/%s/revenues", companyID)
	w := suite.doRequest(http.MethodPost, url, userID, []byte(`{"serviceType":"Sepultamento"}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRevenueService.AssertNotCalled(suite.T(), "CreateRevenue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RevenueHandlerTestSuite) TestCreateRevenue_ValidationErrorFromService() {
	companyID := uuid.NewString()
	userID := uuid.NewString()
	reqBody := dto.CreateRevenueRequest{
		ServiceType:   "Sepultamento",
		ClientName:    "Família Oliveira",
		ServiceValue:  "not-a-number",
		ServiceDate:   "2024-04-09",
		PaymentStatus: "pending",
	}

	suite.mockRevenueService.On("CreateRevenue",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		companyID,
		reqBody,
	).Return(nil, apperrors.NewValidationFailedError("invalid currency value")).Once()

	body, _ := json.Marshal(reqBody)
	url := fmt.Sprintf("/api/v1/companies/%s/revenues", companyID)
	w := suite.doRequest(http.MethodPost, url, userID, body)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RevenueHandlerTestSuite) TestDeleteRevenue_NotFound() {
	companyID := uuid.NewString()
	userID := uuid.NewString()
	revenueID := uuid.NewString()

	suite.mockRevenueService.On("DeleteRevenue",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		companyID,
		revenueID,
	).Return(apperrors.NewNotFoundError("revenue entry not found")).Once()

	url := fmt.Sprintf("/api/v1/companies/%s/revenues/%s", companyID, revenueID)
	w := suite.doRequest(http.MethodDelete, url, userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RevenueHandlerTestSuite) TestDeleteRevenue_Success() {
	companyID := uuid.NewString()
	userID := uuid.NewString()
	revenueID := uuid.NewString()

	suite.mockRevenueService.On("DeleteRevenue",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		companyID,
		revenueID,
	).Return(nil).Once()

	url := fmt.Sprintf("/api/v1/companies/%s/revenues/%s", companyID, revenueID)
	w := suite.doRequest(http.MethodDelete, url, userID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *RevenueHandlerTestSuite) TestDeleteAllRevenues_Forbidden() {
	companyID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockRevenueService.On("DeleteAllRevenues",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		companyID,
	).Return(int64(0), apperrors.ErrForbidden).Once()

	url := fmt.Sprintf("/api/v1/companies/%s/revenues", companyID)
	w := suite.doRequest(http.MethodDelete, url, userID, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *RevenueHandlerTestSuite) TestExportRevenues_CSVDownload() {
	companyID := uuid.NewString()
	userID := uuid.NewString()
	payload := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Serviço,Cliente,Valor,Data,Status\n")...)

	suite.mockRevenueService.On("ExportRevenues",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		companyID,
		domain.EntryFilter{},
		"csv",
	).Return(payload, "text/csv; charset=utf-8", nil).Once()

	url := fmt.Sprintf("/api/v1/companies/%s/revenues/export", companyID)
	w := suite.doRequest(http.MethodGet, url, userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "attachment; filename=")
	suite.Contains(w.Header().Get("Content-Disposition"), ".csv")
	suite.Equal(payload, w.Body.Bytes())

	suite.mockRevenueService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestRevenueHandler(t *testing.T) {
	suite.Run(t, new(RevenueHandlerTestSuite))
}
