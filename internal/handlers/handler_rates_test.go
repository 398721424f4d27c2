package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pennypilot-app/pennypilot_backend/internal/apperrors"
	"github.com/pennypilot-app/pennypilot_backend/internal/core/domain"
	"github.com/pennypilot-app/pennypilot_backend/internal/handlers"
	"github.com/pennypilot-app/pennypilot_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) FetchRates(ctx context.Context) (*domain.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

type RateHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockRateService
}

func (suite *RateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockRateService)

	verifier := &stubVerifier{
		goodToken: "good-token",
		user:      domain.AuthenticatedUser{Subject: "google-sub-12345"},
	}

	suite.router = gin.New()
	api := suite.router.Group("/api", middleware.AuthMiddleware(verifier))
	handlers.RegisterRateRoutes(api, suite.mockService)
}

func (suite *RateHandlerTestSuite) get() *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/api/rates", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RateHandlerTestSuite) TestGetRates_Success() {
	table := &domain.RateTable{
		Base: "USD",
		Rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromInt(1),
			"EUR": decimal.RequireFromString("0.92"),
		},
	}
	suite.mockService.On("FetchRates", mock.Anything).Return(table, nil).Once()

	w := suite.get()

	suite.Equal(http.StatusOK, w.Code)
	var body struct {
		Base  string            `json:"base"`
		Rates map[string]string `json:"rates"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("USD", body.Base)
	suite.Equal("0.92", body.Rates["EUR"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *RateHandlerTestSuite) TestGetRates_UpstreamFailure() {
	suite.mockService.On("FetchRates", mock.Anything).Return(nil, apperrors.ErrUpstream).Once()

	w := suite.get()

	suite.Equal(http.StatusBadGateway, w.Code)
	suite.Contains(w.Body.String(), "unavailable")
}

func (suite *RateHandlerTestSuite) TestGetRates_RequiresAuth() {
	req, _ := http.NewRequest(http.MethodGet, "/api/rates", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "FetchRates")
}

func TestRateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RateHandlerTestSuite))
}
