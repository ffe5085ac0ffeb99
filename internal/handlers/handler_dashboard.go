package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	csvContentType  = "text/csv; charset=utf-8"
)

// dashboardHandler handles HTTP requests for the consolidated finance dashboard.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
}

func newDashboardHandler(ds portssvc.DashboardSvc) *dashboardHandler {
	return &dashboardHandler{
		dashboardService: ds,
	}
}

// RegisterDashboardRoutes registers the dashboard read, refresh and export routes.
// refreshMiddleware runs in front of the refresh route only (rate limiting).
func RegisterDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc, refreshMiddleware ...gin.HandlerFunc) {
	h := newDashboardHandler(dashboardService)

	finance := rg.Group("/finance")
	{
		finance.GET("/dashboard", h.getDashboard)
		finance.POST("/dashboard/refresh", append(refreshMiddleware, h.refreshDashboard)...)
		finance.GET("/dashboard/export.xlsx", h.exportDashboardXLSX)
		finance.GET("/transactions/export.csv", h.exportTransactionsCSV)
	}
}

// RegisterInternalRoutes registers routes called by other services after they change finance records.
func RegisterInternalRoutes(rg *gin.RouterGroup, invalidator portssvc.DashboardInvalidatorSvc) {
	h := &cacheHandler{invalidator: invalidator}

	finance := rg.Group("/finance")
	{
		finance.POST("/cache/invalidate", h.invalidateCache)
	}
}

func scopeFromQuery(c *gin.Context) domain.Scope {
	return domain.ParseScope(c.Query("scope"))
}

// respondDashboardError maps service errors to status codes.
// Source failures are checked first: their causes may carry upstream auth errors.
func respondDashboardError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrAllSourcesFailed):
		logger.Error("All finance record sources unavailable", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Finance data is temporarily unavailable", "retryable": true})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Invalid dashboard request", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrSuperseded):
		logger.Info("Dashboard refresh superseded by a newer one", slog.String("action", action))
		c.JSON(http.StatusConflict, gin.H{"error": "Superseded by a newer refresh of the same scope"})
	case errors.Is(err, context.Canceled):
		logger.Info("Client went away before the dashboard was ready", slog.String("action", action))
		c.Status(499)
	default:
		logger.Error("Failed to serve dashboard request", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to %s", action)})
	}
}

// getDashboard godoc
// @Summary Get the consolidated finance dashboard
// @Description Returns KPIs, 12-month series, revenue breakdown, alerts, activity and receivables views for a scope.
// @Description Views are served from a short-lived cache. degradedSources lists record sets that could not be read.
// @Tags finance
// @Produce json
// @Param scope query string false "Owning entity, 'all' or empty for every entity"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]string "Invalid scope"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]interface{} "All record sources unavailable"
// @Failure 500 {object} map[string]string "Failed to load dashboard"
// @Security BearerAuth
// @Router /api/v1/finance/dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	scope := scopeFromQuery(c)
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("scope", scope.String()))

	views, err := h.dashboardService.GetDashboard(c.Request.Context(), scope)
	if err != nil {
		respondDashboardError(c, logger, err, "load dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(views))
}

// refreshDashboard godoc
// @Summary Recompute the finance dashboard
// @Description Drops the cached views of a scope and recomputes them. A newer refresh of the same scope cancels this one.
// @Tags finance
// @Produce json
// @Param scope query string false "Owning entity, 'all' or empty for every entity"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]string "Invalid scope"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Superseded by a newer refresh"
// @Failure 429 {object} map[string]string "Too many refreshes"
// @Failure 503 {object} map[string]interface{} "All record sources unavailable"
// @Failure 500 {object} map[string]string "Failed to refresh dashboard"
// @Security BearerAuth
// @Router /api/v1/finance/dashboard/refresh [post]
func (h *dashboardHandler) refreshDashboard(c *gin.Context) {
	scope := scopeFromQuery(c)
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("scope", scope.String()))
	logger.Info("Received request to refresh dashboard")

	views, err := h.dashboardService.RefreshDashboard(c.Request.Context(), scope)
	if err != nil {
		respondDashboardError(c, logger, err, "refresh dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(views))
}

// exportDashboardXLSX godoc
// @Summary Export the dashboard as a spreadsheet
// @Description Renders KPIs, series, breakdown, alerts and aging into an XLSX workbook.
// @Tags finance
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param scope query string false "Owning entity, 'all' or empty for every entity"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid scope"
// @Failure 503 {object} map[string]interface{} "All record sources unavailable"
// @Failure 500 {object} map[string]string "Failed to export dashboard"
// @Security BearerAuth
// @Router /api/v1/finance/dashboard/export.xlsx [get]
func (h *dashboardHandler) exportDashboardXLSX(c *gin.Context) {
	scope := scopeFromQuery(c)
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("scope", scope.String()))

	raw, err := h.dashboardService.ExportDashboardXLSX(c.Request.Context(), scope)
	if err != nil {
		respondDashboardError(c, logger, err, "export dashboard")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="dashboard-%s.xlsx"`, scope.String()))
	c.Data(http.StatusOK, xlsxContentType, raw)
}

// exportTransactionsCSV godoc
// @Summary Export ledger transactions as CSV
// @Description Writes the ledger transactions behind the current dashboard of a scope.
// @Tags finance
// @Produce text/csv
// @Param scope query string false "Owning entity, 'all' or empty for every entity"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid scope"
// @Failure 503 {object} map[string]interface{} "All record sources unavailable"
// @Failure 500 {object} map[string]string "Failed to export transactions"
// @Security BearerAuth
// @Router /api/v1/finance/transactions/export.csv [get]
func (h *dashboardHandler) exportTransactionsCSV(c *gin.Context) {
	scope := scopeFromQuery(c)
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("scope", scope.String()))

	// buffered so a failure can still be reported with a proper status
	var buf bytes.Buffer
	if err := h.dashboardService.ExportTransactionsCSV(c.Request.Context(), scope, &buf); err != nil {
		respondDashboardError(c, logger, err, "export transactions")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="transactions-%s.csv"`, scope.String()))
	c.Data(http.StatusOK, csvContentType, buf.Bytes())
}

// cacheHandler serves internal cache maintenance calls.
type cacheHandler struct {
	invalidator portssvc.DashboardInvalidatorSvc
}

// invalidateCache godoc
// @Summary Invalidate cached dashboards
// @Description Called after finance records of a scope change. The unfiltered dashboard is always dropped as well.
// @Tags internal
// @Accept json
// @Param request body dto.InvalidateCacheRequest true "Scope whose records changed"
// @Success 204 "Invalidated"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Missing or invalid service token"
// @Failure 403 {object} map[string]string "Internal endpoints disabled"
// @Security ServiceToken
// @Router /internal/v1/finance/cache/invalidate [post]
func (h *cacheHandler) invalidateCache(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.InvalidateCacheRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for InvalidateCache", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	scope := domain.ParseScope(req.Scope)
	if err := h.invalidator.InvalidateScope(c.Request.Context(), scope); err != nil {
		respondDashboardError(c, logger.With(slog.String("scope", scope.String())), err, "invalidate cache")
		return
	}

	c.Status(http.StatusNoContent)
}
