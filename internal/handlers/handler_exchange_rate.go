package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/fx_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/fx_dashboard/internal/core/ports/services"
	"github.com/SscSPs/fx_dashboard/internal/core/projection"
	"github.com/SscSPs/fx_dashboard/internal/dto"
	"github.com/SscSPs/fx_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler serves stored rates and their projections.
type exchangeRateHandler struct {
	rateService    portssvc.ExchangeRateReaderSvc
	defaultBase    string
	defaultSymbols []string
}

func newExchangeRateHandler(rs portssvc.ExchangeRateReaderSvc, defaultBase string, defaultSymbols []string) *exchangeRateHandler {
	return &exchangeRateHandler{
		rateService:    rs,
		defaultBase:    defaultBase,
		defaultSymbols: defaultSymbols,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, rs portssvc.ExchangeRateReaderSvc, defaultBase string, defaultSymbols []string) {
	h := newExchangeRateHandler(rs, defaultBase, defaultSymbols)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getRates)
		rates.GET("/chart", h.getChart)
		rates.GET("/table", h.getTable)
	}
}

// loadRates binds and validates the query, then reads the records. It writes
// the error response itself and reports whether the caller may continue.
func (h *exchangeRateHandler) loadRates(c *gin.Context, req dto.RatesQueryRequest) (domain.RateQuery, []domain.RateRecord, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	query, err := req.ToRateQuery(h.defaultBase, h.defaultSymbols)
	if err != nil {
		logger.Warn("Invalid rate query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return domain.RateQuery{}, nil, false
	}

	records, err := h.rateService.GetRates(c.Request.Context(), query)
	if err != nil {
		respondError(c, logger, err, "Failed to fetch exchange rates")
		return domain.RateQuery{}, nil, false
	}
	return query, records, true
}

func bindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind rate query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return false
	}
	return true
}

// getRates godoc
// @Summary List exchange rates
// @Description Returns one record per published date for the base and symbols, reading through the rate store
// @Tags rates
// @Produce  json
// @Param   base query string false "Base currency (default EUR)"
// @Param   symbols query string false "Comma-separated quote currencies (default USD,CAD)"
// @Param   start_date query string true "Start date (YYYY-MM-DD)"
// @Param   end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} domain.RateRecord
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 502 {object} map[string]string "Upstream rate source failed"
// @Failure 500 {object} map[string]string "Failed to fetch exchange rates"
// @Router /rates [get]
func (h *exchangeRateHandler) getRates(c *gin.Context) {
	var req dto.RatesQueryRequest
	if !bindQuery(c, &req) {
		return
	}
	if _, records, ok := h.loadRates(c, req); ok {
		c.JSON(http.StatusOK, records)
	}
}

// getChart godoc
// @Summary Chart series for exchange rates
// @Description Returns labels plus a direct and an inverse dataset per quote currency. Missing values are null.
// @Tags rates
// @Produce  json
// @Param   base query string false "Base currency (default EUR)"
// @Param   symbols query string false "Comma-separated quote currencies (default USD,CAD)"
// @Param   start_date query string true "Start date (YYYY-MM-DD)"
// @Param   end_date query string true "End date (YYYY-MM-DD)"
// @Param   quotes query string false "Dataset order (defaults to symbols)"
// @Success 200 {object} domain.ChartSeries
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 502 {object} map[string]string "Upstream rate source failed"
// @Router /rates/chart [get]
func (h *exchangeRateHandler) getChart(c *gin.Context) {
	var req dto.ChartQueryRequest
	if !bindQuery(c, &req) {
		return
	}
	query, records, ok := h.loadRates(c, req.RatesQueryRequest)
	if !ok {
		return
	}
	quotes := dto.SplitCodes(req.Quotes)
	if len(quotes) == 0 {
		quotes = query.Symbols
	}
	c.JSON(http.StatusOK, projection.Chart(records, quotes))
}

// getTable godoc
// @Summary Table rows for exchange rates
// @Description Returns one row per date with direct and inverse columns rounded to 6 places
// @Tags rates
// @Produce  json
// @Param   base query string false "Base currency (default EUR)"
// @Param   symbols query string false "Comma-separated quote currencies (default USD,CAD)"
// @Param   start_date query string true "Start date (YYYY-MM-DD)"
// @Param   end_date query string true "End date (YYYY-MM-DD)"
// @Param   pairs query string false "Comma-separated pair columns to keep, e.g. EUR_USD,USD_EUR"
// @Success 200 {array} domain.TableRow
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 502 {object} map[string]string "Upstream rate source failed"
// @Router /rates/table [get]
func (h *exchangeRateHandler) getTable(c *gin.Context) {
	var req dto.TableQueryRequest
	if !bindQuery(c, &req) {
		return
	}
	selected, err := dto.ParsePairList(req.Pairs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, records, ok := h.loadRates(c, req.RatesQueryRequest)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, domain.FilterTablePairs(projection.Table(records), selected))
}
