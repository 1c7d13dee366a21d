package http

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	apperrors "networth-tracker/internal/common/errors"
	"networth-tracker/internal/common/middleware"
	"networth-tracker/internal/features/dashboard/models"
	"networth-tracker/internal/features/dashboard/service"
)

type DashboardHandler struct {
	service service.DashboardService
	session middleware.SessionReader
	log     zerolog.Logger
}

func NewDashboardHandler(service service.DashboardService, session middleware.SessionReader, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, session: session, log: log}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	dashboard.Use(middleware.RequireOnboarded(h.session))
	{
		dashboard.GET("", h.getOverview)
		dashboard.GET("/chart", h.getChart)
		dashboard.GET("/items", h.listItems)
		dashboard.POST("/items", h.addItem)
		dashboard.PUT("/items/:id", h.updateItem)
		dashboard.DELETE("/items/:id", h.deleteItem)
		dashboard.POST("/snapshot", h.recordSnapshot)
		dashboard.POST("/reset", h.reset)
	}
}

// @Summary Get dashboard
// @Description Summary statistics, trend chart and breakdown in the user's currency
// @Tags dashboard
// @Produce json
// @Param range query string false "Chart range" Enums(monthly, quarterly, yearly)
// @Success 200 {object} models.Overview
// @Failure 400 {object} middleware.ErrorResponse "Invalid range"
// @Failure 401 {object} middleware.ErrorResponse "Not onboarded"
// @Router /dashboard [get]
func (h *DashboardHandler) getOverview(c *gin.Context) {
	r, ok := h.parseRange(c)
	if !ok {
		return
	}

	overview, err := h.service.Overview(c.Request.Context(), r, userCurrency(c))
	if err != nil {
		_ = c.Error(toAppError(c, err))
		return
	}
	c.JSON(http.StatusOK, overview)
}

// @Summary Get chart data
// @Tags dashboard
// @Produce json
// @Param range query string false "Chart range" Enums(monthly, quarterly, yearly)
// @Success 200 {object} models.ChartData
// @Failure 400 {object} middleware.ErrorResponse "Invalid range"
// @Failure 401 {object} middleware.ErrorResponse "Not onboarded"
// @Router /dashboard/chart [get]
func (h *DashboardHandler) getChart(c *gin.Context) {
	r, ok := h.parseRange(c)
	if !ok {
		return
	}

	chart, err := h.service.Chart(c.Request.Context(), r, userCurrency(c))
	if err != nil {
		_ = c.Error(toAppError(c, err))
		return
	}
	c.JSON(http.StatusOK, chart)
}

// @Summary List items
// @Description Assets and liabilities grouped by category with totals
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.Breakdown
// @Failure 401 {object} middleware.ErrorResponse "Not onboarded"
// @Router /dashboard/items [get]
func (h *DashboardHandler) listItems(c *gin.Context) {
	b, err := h.service.Breakdown(c.Request.Context())
	if err != nil {
		_ = c.Error(toAppError(c, err))
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary Add item
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body models.ItemInput true "Item"
// @Success 201 {object} models.Item
// @Failure 400 {object} middleware.ValidationErrorResponse "Invalid fields"
// @Failure 401 {object} middleware.ErrorResponse "Not onboarded"
// @Router /dashboard/items [post]
func (h *DashboardHandler) addItem(c *gin.Context) {
	var in models.ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("Invalid request body").WithDetail("reason", err.Error()))
		return
	}

	item, err := h.service.AddItem(c.Request.Context(), in)
	if h.handleErr(c, err) {
		return
	}
	c.JSON(http.StatusCreated, item)
}

// @Summary Update item
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body models.ItemInput true "Item"
// @Success 200 {object} models.Item
// @Failure 400 {object} middleware.ValidationErrorResponse "Invalid fields"
// @Failure 404 {object} middleware.ErrorResponse "Item not found"
// @Router /dashboard/items/{id} [put]
func (h *DashboardHandler) updateItem(c *gin.Context) {
	var in models.ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("Invalid request body").WithDetail("reason", err.Error()))
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), c.Param("id"), in)
	if h.handleErr(c, err) {
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary Delete item
// @Tags dashboard
// @Param id path string true "Item ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse "Item not found"
// @Router /dashboard/items/{id} [delete]
func (h *DashboardHandler) deleteItem(c *gin.Context) {
	if err := h.service.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(toAppError(c, err))
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Record net worth snapshot
// @Description Stores the current net worth as this month's history point
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.History
// @Router /dashboard/snapshot [post]
func (h *DashboardHandler) recordSnapshot(c *gin.Context) {
	hist, err := h.service.RecordSnapshot(c.Request.Context())
	if err != nil {
		_ = c.Error(toAppError(c, err))
		return
	}
	c.JSON(http.StatusOK, hist)
}

// @Summary Reset dashboard
// @Description Drops all items and history and starts over from the demo portfolio
// @Tags dashboard
// @Success 204
// @Router /dashboard/reset [post]
func (h *DashboardHandler) reset(c *gin.Context) {
	if err := h.service.Reset(c.Request.Context()); err != nil {
		_ = c.Error(toAppError(c, err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DashboardHandler) parseRange(c *gin.Context) (models.Range, bool) {
	r, err := models.ParseRange(c.Query("range"))
	if err != nil {
		_ = c.Error(apperrors.NewValidationError("range", "range must be monthly, quarterly or yearly"))
		return "", false
	}
	return r, true
}

// handleErr reports err and tells whether the handler must stop.
func (h *DashboardHandler) handleErr(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var verr *models.ItemValidationError
	if errors.As(err, &verr) {
		fields := make([]string, 0, len(verr.Fields))
		for f := range verr.Fields {
			fields = append(fields, f)
		}
		sort.Strings(fields)

		out := make([]apperrors.AppError, 0, len(fields))
		for _, f := range fields {
			out = append(out, *apperrors.NewValidationError(f, verr.Fields[f]))
		}
		middleware.SendValidationErrors(c, out, h.log)
		return true
	}

	_ = c.Error(toAppError(c, err))
	return true
}

func userCurrency(c *gin.Context) string {
	if user, ok := middleware.CurrentUser(c); ok {
		return user.Currency
	}
	return ""
}

func toAppError(c *gin.Context, err error) *apperrors.AppError {
	switch {
	case errors.Is(err, models.ErrItemNotFound):
		return apperrors.Wrapf(err, apperrors.ErrCodeNotFound, "Item %s not found", c.Param("id"))
	case errors.Is(err, models.ErrInvalidRange):
		return apperrors.NewValidationError("range", "range must be monthly, quarterly or yearly")
	default:
		return apperrors.NewCacheError("dashboard", err)
	}
}
