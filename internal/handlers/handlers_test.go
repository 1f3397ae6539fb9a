package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/fx_dashboard/internal/apperrors"
	"github.com/SscSPs/fx_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/fx_dashboard/internal/core/ports/services"
	"github.com/SscSPs/fx_dashboard/internal/dto"
	"github.com/SscSPs/fx_dashboard/internal/handlers"
	"github.com/SscSPs/fx_dashboard/internal/middleware"
	"github.com/SscSPs/fx_dashboard/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetRates(ctx context.Context, query domain.RateQuery) ([]domain.RateRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateRecord), args.Error(1)
}

func (m *MockExchangeRateService) RefreshPreviousMonth(ctx context.Context, now time.Time) ([]domain.RateRecord, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateRecord), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) SetParams(ctx context.Context, req dto.DashboardParamsRequest) (dto.FetchStateResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.FetchStateResponse), args.Error(1)
}

func (m *MockDashboardService) Snapshot(ctx context.Context, selected []domain.PairKey) (*dto.DashboardResponse, error) {
	args := m.Called(ctx, selected)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DashboardResponse), args.Error(1)
}

func (m *MockDashboardService) Close() {
	m.Called()
}

var _ portssvc.DashboardSvcFacade = (*MockDashboardService)(nil)

// --- Suite ---
type HandlersTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCurrency  *MockCurrencyService
	mockRates     *MockExchangeRateService
	mockDashboard *MockDashboardService
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(discardLogger()))

	suite.mockCurrency = new(MockCurrencyService)
	suite.mockRates = new(MockExchangeRateService)
	suite.mockDashboard = new(MockDashboardService)

	cfg := &config.Config{
		IsProduction:   true,
		RateLimit:      "1000-M",
		DefaultBase:    "EUR",
		DefaultSymbols: []string{"USD", "CAD"},
	}
	err := handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Currency:     suite.mockCurrency,
		ExchangeRate: suite.mockRates,
		Dashboard:    suite.mockDashboard,
	})
	suite.Require().NoError(err)
}

func (suite *HandlersTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func twoDays() []domain.RateRecord {
	return []domain.RateRecord{
		{Date: "2024-01-02", Base: "EUR", Rates: map[string]float64{"USD": 1.0956, "CAD": 1.4567}},
		{Date: "2024-01-03", Base: "EUR", Rates: map[string]float64{"USD": 1.0978}},
	}
}

func januaryQuery(symbols ...string) domain.RateQuery {
	return domain.RateQuery{
		Base:      "EUR",
		Symbols:   symbols,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestListCurrencies_ReturnsNameMap() {
	suite.mockCurrency.On("ListCurrencies", mock.Anything).Return([]domain.Currency{
		{CurrencyCode: "EUR", Symbol: "€", Name: "Euro"},
		{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar"},
		{CurrencyCode: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/currencies", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"EUR":"Euro","USD":"US Dollar","CAD":"Canadian Dollar"}`, w.Body.String())
	suite.mockCurrency.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestGetCurrency_NotFound() {
	suite.mockCurrency.On("GetCurrencyByCode", mock.Anything, "JPY").
		Return(nil, apperrors.NewNotFoundError("currency JPY")).Once()

	w := suite.do(http.MethodGet, "/api/currencies/JPY", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestGetRates_MissingStartDate() {
	w := suite.do(http.MethodGet, "/api/rates?end_date=2024-01-31", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("start_date is required", suite.errorBody(w))
	suite.mockRates.AssertNotCalled(suite.T(), "GetRates", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestGetRates_MalformedDate() {
	w := suite.do(http.MethodGet, "/api/rates?start_date=01/01/2024&end_date=2024-01-31", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("start_date must be a YYYY-MM-DD date", suite.errorBody(w))
}

func (suite *HandlersTestSuite) TestGetRates_BadSymbols() {
	w := suite.do(http.MethodGet, "/api/rates?symbols=US,CAD&start_date=2024-01-01&end_date=2024-01-31", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w), "symbols")
}

func (suite *HandlersTestSuite) TestGetRates_AppliesDefaults() {
	suite.mockRates.On("GetRates", mock.Anything, januaryQuery("USD", "CAD")).Return(twoDays(), nil).Once()

	w := suite.do(http.MethodGet, "/api/rates?start_date=2024-01-01&end_date=2024-01-31", "")

	suite.Equal(http.StatusOK, w.Code)
	var records []domain.RateRecord
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &records))
	suite.Equal(twoDays(), records)
	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestGetRates_RangeTooLong() {
	suite.mockRates.On("GetRates", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("date range cannot exceed 2 years")).Once()

	w := suite.do(http.MethodGet, "/api/rates?start_date=2020-01-01&end_date=2024-01-31", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("date range cannot exceed 2 years", suite.errorBody(w))
}

func (suite *HandlersTestSuite) TestGetRates_UpstreamFailure() {
	suite.mockRates.On("GetRates", mock.Anything, mock.Anything).
		Return(nil, &apperrors.TransportError{Message: "Could not connect to Frankfurter API"}).Once()

	w := suite.do(http.MethodGet, "/api/rates?start_date=2024-01-01&end_date=2024-01-31", "")

	suite.Equal(http.StatusBadGateway, w.Code)
	suite.Equal("Could not connect to Frankfurter API", suite.errorBody(w))
}

func (suite *HandlersTestSuite) TestGetRates_UnexpectedError() {
	suite.mockRates.On("GetRates", mock.Anything, mock.Anything).
		Return(nil, context.DeadlineExceeded).Once()

	w := suite.do(http.MethodGet, "/api/rates?start_date=2024-01-01&end_date=2024-01-31", "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal(apperrors.FallbackFetchMessage, suite.errorBody(w))
}

func (suite *HandlersTestSuite) TestGetChart() {
	suite.mockRates.On("GetRates", mock.Anything, januaryQuery("USD", "CAD")).Return(twoDays(), nil).Once()

	w := suite.do(http.MethodGet, "/api/rates/chart?symbols=USD,CAD&start_date=2024-01-01&end_date=2024-01-31&quotes=cad", "")

	suite.Equal(http.StatusOK, w.Code)
	var chart struct {
		Labels   []string `json:"labels"`
		Datasets []struct {
			Label string     `json:"label"`
			Data  []*float64 `json:"data"`
		} `json:"datasets"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &chart))
	suite.Equal([]string{"2024-01-02", "2024-01-03"}, chart.Labels)
	suite.Require().Len(chart.Datasets, 2)
	suite.Equal("EUR/CAD", chart.Datasets[0].Label)
	suite.Equal("CAD/EUR", chart.Datasets[1].Label)
	suite.Require().NotNil(chart.Datasets[0].Data[0])
	suite.Equal(1.4567, *chart.Datasets[0].Data[0])
	suite.Nil(chart.Datasets[0].Data[1])
}

func (suite *HandlersTestSuite) TestGetTable_FiltersPairs() {
	suite.mockRates.On("GetRates", mock.Anything, januaryQuery("USD", "CAD")).Return(twoDays(), nil).Once()

	w := suite.do(http.MethodGet, "/api/rates/table?start_date=2024-01-01&end_date=2024-01-31&pairs=usd_eur", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[{"date":"2024-01-02","USD_EUR":0.912742},{"date":"2024-01-03","USD_EUR":0.910913}]`, w.Body.String())
}

func (suite *HandlersTestSuite) TestGetTable_InvalidPairs() {
	w := suite.do(http.MethodGet, "/api/rates/table?start_date=2024-01-01&end_date=2024-01-31&pairs=EURUSD", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w), "pairs")
}

func (suite *HandlersTestSuite) TestSetDashboardParams() {
	req := dto.DashboardParamsRequest{Range: domain.Range6Months, Symbols: []string{"USD"}}
	state := dto.FetchStateResponse{Status: domain.FetchLoading, Loading: true, Generation: 2}
	suite.mockDashboard.On("SetParams", mock.Anything, req).Return(state, nil).Once()

	w := suite.do(http.MethodPut, "/api/dashboard/params", `{"range":"6m","symbols":["USD"]}`)

	suite.Equal(http.StatusAccepted, w.Code)
	var got dto.FetchStateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(state, got)
}

func (suite *HandlersTestSuite) TestSetDashboardParams_InvalidRange() {
	w := suite.do(http.MethodPut, "/api/dashboard/params", `{"range":"5y"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("range must be one of: 6m 1y 2y", suite.errorBody(w))
	suite.mockDashboard.AssertNotCalled(suite.T(), "SetParams", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestGetDashboard_PassesSelection() {
	selected := []domain.PairKey{{Base: "EUR", Quote: "USD"}, {Base: "USD", Quote: "EUR"}}
	snap := &dto.DashboardResponse{
		State:   dto.FetchStateResponse{Status: domain.FetchSuccess},
		Columns: []string{"date", "EUR_USD", "USD_EUR"},
	}
	suite.mockDashboard.On("Snapshot", mock.Anything, selected).Return(snap, nil).Once()

	w := suite.do(http.MethodGet, "/api/dashboard?pairs=EUR_USD,USD_EUR", "")

	suite.Equal(http.StatusOK, w.Code)
	var got map[string]json.RawMessage
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.JSONEq(`["date","EUR_USD","USD_EUR"]`, string(got["columns"]))
	suite.mockDashboard.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestRequestIDIsEchoed() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal("req-123", w.Header().Get(middleware.RequestIDHeader))
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
