package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pennypilot-app/pennypilot_backend/internal/apperrors"
	portssvc "github.com/pennypilot-app/pennypilot_backend/internal/core/ports/services"
	"github.com/pennypilot-app/pennypilot_backend/internal/dto"
	"github.com/pennypilot-app/pennypilot_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests for the exchange-rate table.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{rateService: rs}
}

// RegisterRateRoutes registers the exchange-rate routes.
func RegisterRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)
	rg.GET("/rates", h.getRates)
}

// getRates godoc
// @Summary Get the current exchange-rate table
// @Description Fetches the base-USD rate table from the external feed and returns it unchanged
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RatesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Rate feed unavailable"
// @Security BearerAuth
// @Router /rates [get]
func (h *rateHandler) getRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	table, err := h.rateService.FetchRates(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrUpstream) {
			logger.Warn("Rate feed unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Exchange rates are currently unavailable"})
		} else {
			logger.Error("Failed to fetch rates", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch exchange rates"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRatesResponse(table))
}
