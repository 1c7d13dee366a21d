package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "networth-tracker/internal/common/errors"
	"networth-tracker/internal/features/currency"
)

type CurrencyHandler struct{}

func NewCurrencyHandler() *CurrencyHandler {
	return &CurrencyHandler{}
}

func (h *CurrencyHandler) RegisterRoutes(router *gin.RouterGroup) {
	currencies := router.Group("/currencies")
	{
		currencies.GET("", h.list)
		currencies.GET("/:code", h.get)
	}
}

// @Summary List currencies
// @Description Supported currencies with their display names and symbols
// @Tags currencies
// @Produce json
// @Success 200 {array} currency.Entry
// @Router /currencies [get]
func (h *CurrencyHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, currency.All())
}

// @Summary Get currency
// @Tags currencies
// @Produce json
// @Param code path string true "ISO code" example(EUR)
// @Success 200 {object} currency.Entry
// @Failure 404 {object} middleware.ErrorResponse "Unsupported currency"
// @Router /currencies/{code} [get]
func (h *CurrencyHandler) get(c *gin.Context) {
	code := strings.ToUpper(c.Param("code"))
	entry, ok := currency.Lookup(code)
	if !ok {
		_ = c.Error(apperrors.NewNotFoundError("currency", code))
		return
	}
	c.JSON(http.StatusOK, entry)
}
