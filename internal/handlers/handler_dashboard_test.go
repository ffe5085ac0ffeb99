package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/handlers"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetDashboard(ctx context.Context, scope domain.Scope) (*domain.DashboardViews, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardViews), args.Error(1)
}

func (m *MockDashboardService) RefreshDashboard(ctx context.Context, scope domain.Scope) (*domain.DashboardViews, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardViews), args.Error(1)
}

func (m *MockDashboardService) InvalidateScope(ctx context.Context, scope domain.Scope) error {
	args := m.Called(ctx, scope)
	return args.Error(0)
}

func (m *MockDashboardService) ExportDashboardXLSX(ctx context.Context, scope domain.Scope) ([]byte, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockDashboardService) ExportTransactionsCSV(ctx context.Context, scope domain.Scope, w io.Writer) error {
	args := m.Called(ctx, scope, w)
	if body := args.String(1); body != "" {
		_, _ = io.WriteString(w, body)
	}
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.DashboardSvc = (*MockDashboardService)(nil)

// --- Test Suite ---
type DashboardHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockService  *MockDashboardService
	jwtSecret    string
	serviceToken string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *DashboardHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "finance-dashboard-test",
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

func (suite *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.serviceToken = "internal-shared-token"
	suite.mockService = new(MockDashboardService)

	hash, err := bcrypt.GenerateFromPassword([]byte(suite.serviceToken), bcrypt.MinCost)
	suite.Require().NoError(err)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterDashboardRoutes(v1, suite.mockService)

	internal := suite.router.Group("/internal/v1", middleware.ServiceTokenAuth(string(hash)))
	handlers.RegisterInternalRoutes(internal, suite.mockService)
}

func (suite *DashboardHandlerTestSuite) do(method, url string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *DashboardHandlerTestSuite) authHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + suite.generateTestToken(uuid.NewString())}
}

func sampleViews(scope domain.Scope) *domain.DashboardViews {
	return &domain.DashboardViews{
		Scope: scope,
		AsOf:  time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC),
		KPIs: domain.KPIResult{
			Treasury:      decimal.NewFromInt(50000),
			RevenueTrend:  domain.NewTrend(25),
			ExpensesTrend: domain.NoBaseline(),
		},
		Alerts: []domain.Alert{{Severity: domain.SeverityRed, Kind: domain.AlertSevereOverdue, Count: 2}},
	}
}

// --- Test Cases ---

func (suite *DashboardHandlerTestSuite) TestGetDashboard_Success() {
	suite.mockService.On("GetDashboard", mock.Anything, domain.Scope("ACME")).Return(sampleViews("ACME"), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/finance/dashboard?scope=ACME", nil, suite.authHeaders())

	suite.Equal(http.StatusOK, w.Code)
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("ACME", body["scope"])
	kpis := body["kpis"].(map[string]any)
	suite.Equal("50000", kpis["treasury"])
	suite.InDelta(25.0, kpis["revenueTrend"], 0.001)
	suite.Nil(kpis["expensesTrend"])
	suite.Len(body["alerts"], 1)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestGetDashboard_DefaultsToAllScopes() {
	suite.mockService.On("GetDashboard", mock.Anything, domain.AllScopes).Return(sampleViews(domain.AllScopes), nil).Twice()

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/finance/dashboard", nil, suite.authHeaders()).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/finance/dashboard?scope=all", nil, suite.authHeaders()).Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestGetDashboard_Unauthenticated() {
	w := suite.do(http.MethodGet, "/api/v1/finance/dashboard", nil, nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetDashboard", mock.Anything, mock.Anything)
}

func (suite *DashboardHandlerTestSuite) TestGetDashboard_ErrorMapping() {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		retryable  bool
	}{
		{name: "validation", err: fmt.Errorf("%w: bad scope", apperrors.ErrValidation), wantStatus: http.StatusBadRequest},
		{name: "forbidden", err: apperrors.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "all sources failed", err: fmt.Errorf("%w: down", apperrors.ErrAllSourcesFailed), wantStatus: http.StatusServiceUnavailable, retryable: true},
		{name: "sources failed on upstream auth", err: fmt.Errorf("%w: %w", apperrors.ErrAllSourcesFailed, apperrors.ErrUnauthorized), wantStatus: http.StatusServiceUnavailable, retryable: true},
		{name: "unexpected", err: fmt.Errorf("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.mockService.On("GetDashboard", mock.Anything, domain.Scope("ACME")).Return(nil, tc.err).Once()

			w := suite.do(http.MethodGet, "/api/v1/finance/dashboard?scope=ACME", nil, suite.authHeaders())

			suite.Equal(tc.wantStatus, w.Code)
			var body map[string]any
			suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
			suite.NotEmpty(body["error"])
			if tc.retryable {
				suite.Equal(true, body["retryable"])
			}
		})
	}
}

func (suite *DashboardHandlerTestSuite) TestRefreshDashboard_CallerGone() {
	suite.mockService.On("RefreshDashboard", mock.Anything, domain.Scope("ACME")).Return(nil, context.Canceled).Once()

	w := suite.do(http.MethodPost, "/api/v1/finance/dashboard/refresh?scope=ACME", nil, suite.authHeaders())

	suite.Equal(499, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestRefreshDashboard_Superseded() {
	suite.mockService.On("RefreshDashboard", mock.Anything, domain.Scope("ACME")).Return(nil, apperrors.ErrSuperseded).Once()

	w := suite.do(http.MethodPost, "/api/v1/finance/dashboard/refresh?scope=ACME", nil, suite.authHeaders())

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestRefreshDashboard_RateLimited() {
	router := gin.New()
	limiter, err := middleware.NewMemoryLimiter("1-M")
	suite.Require().NoError(err)
	v1 := router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterDashboardRoutes(v1, suite.mockService, middleware.RateLimit(limiter))
	suite.mockService.On("RefreshDashboard", mock.Anything, domain.AllScopes).Return(sampleViews(domain.AllScopes), nil).Once()

	headers := suite.authHeaders()
	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/finance/dashboard/refresh", nil)
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	suite.Equal([]int{http.StatusOK, http.StatusTooManyRequests}, codes)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestExportDashboardXLSX() {
	suite.mockService.On("ExportDashboardXLSX", mock.Anything, domain.Scope("ACME")).Return([]byte("PK\x03\x04"), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/finance/dashboard/export.xlsx?scope=ACME", nil, suite.authHeaders())

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "spreadsheetml")
	suite.Contains(w.Header().Get("Content-Disposition"), "dashboard-ACME.xlsx")
	suite.Equal("PK\x03\x04", w.Body.String())
}

func (suite *DashboardHandlerTestSuite) TestExportTransactionsCSV() {
	csvBody := "id,date,description,type,amount,direction,owner\n"
	suite.mockService.On("ExportTransactionsCSV", mock.Anything, domain.AllScopes, mock.Anything).Return(nil, csvBody).Once()

	w := suite.do(http.MethodGet, "/api/v1/finance/transactions/export.csv", nil, suite.authHeaders())

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "text/csv")
	suite.Equal(csvBody, w.Body.String())
}

func (suite *DashboardHandlerTestSuite) TestExportTransactionsCSV_AllSourcesFailed() {
	suite.mockService.On("ExportTransactionsCSV", mock.Anything, domain.AllScopes, mock.Anything).
		Return(apperrors.ErrAllSourcesFailed, "").Once()

	w := suite.do(http.MethodGet, "/api/v1/finance/transactions/export.csv", nil, suite.authHeaders())

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "application/json")
}

func (suite *DashboardHandlerTestSuite) TestInvalidateCache() {
	suite.mockService.On("InvalidateScope", mock.Anything, domain.Scope("ACME")).Return(nil).Once()

	w := suite.do(http.MethodPost, "/internal/v1/finance/cache/invalidate", []byte(`{"scope":"ACME"}`),
		map[string]string{middleware.ServiceTokenHeader: suite.serviceToken, "Content-Type": "application/json"})

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestInvalidateCache_Auth() {
	testCases := []struct {
		name       string
		headers    map[string]string
		wantStatus int
	}{
		{name: "missing token", headers: nil, wantStatus: http.StatusUnauthorized},
		{name: "wrong token", headers: map[string]string{middleware.ServiceTokenHeader: "nope"}, wantStatus: http.StatusUnauthorized},
		{name: "user jwt is not enough", headers: suite.authHeaders(), wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			w := suite.do(http.MethodPost, "/internal/v1/finance/cache/invalidate", []byte(`{"scope":"ACME"}`), tc.headers)
			suite.Equal(tc.wantStatus, w.Code)
		})
	}
	suite.mockService.AssertNotCalled(suite.T(), "InvalidateScope", mock.Anything, mock.Anything)
}

func (suite *DashboardHandlerTestSuite) TestInvalidateCache_DisabledWithoutHash() {
	router := gin.New()
	handlers.RegisterInternalRoutes(router.Group("/internal/v1", middleware.ServiceTokenAuth("")), suite.mockService)

	req, _ := http.NewRequest(http.MethodPost, "/internal/v1/finance/cache/invalidate", bytes.NewReader([]byte(`{}`)))
	req.Header.Set(middleware.ServiceTokenHeader, suite.serviceToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *DashboardHandlerTestSuite) TestInvalidateCache_BadBody() {
	w := suite.do(http.MethodPost, "/internal/v1/finance/cache/invalidate", []byte(`{"scope":`),
		map[string]string{middleware.ServiceTokenHeader: suite.serviceToken})

	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Run Test Suite ---
func TestDashboardHandler(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
