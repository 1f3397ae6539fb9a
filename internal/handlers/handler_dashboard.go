package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fx_dashboard/internal/core/ports/services"
	"github.com/SscSPs/fx_dashboard/internal/dto"
	"github.com/SscSPs/fx_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

func registerDashboardRoutes(rg *gin.RouterGroup, ds portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(ds)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("", h.getSnapshot)
		dashboard.PUT("/params", h.setParams)
	}
}

// setParams godoc
// @Summary Change the dashboard's range and currencies
// @Description Starts a new fetch generation. Any fetch still in flight for older params is discarded.
// @Tags dashboard
// @Accept  json
// @Produce  json
// @Param   params body dto.DashboardParamsRequest true "Range code (6m, 1y, 2y) and quote currencies"
// @Success 202 {object} dto.FetchStateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /dashboard/params [put]
func (h *dashboardHandler) setParams(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DashboardParamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetParams", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
		return
	}

	state, err := h.dashboardService.SetParams(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update dashboard")
		return
	}

	c.JSON(http.StatusAccepted, state)
}

// getSnapshot godoc
// @Summary Current dashboard state with chart and table
// @Description Chart datasets are limited to the selected pairs; the table always carries every pair.
// @Tags dashboard
// @Produce  json
// @Param   pairs query string false "Comma-separated pair keys, e.g. EUR_USD,USD_EUR"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]string "Invalid pairs"
// @Router /dashboard [get]
func (h *dashboardHandler) getSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	selected, err := dto.ParsePairList(c.Query("pairs"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := h.dashboardService.Snapshot(c.Request.Context(), selected)
	if err != nil {
		respondError(c, logger, err, "Failed to read dashboard")
		return
	}
	c.JSON(http.StatusOK, snap)
}
