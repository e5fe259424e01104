package api

import (
	"net/http"

	"github.com/cockroachdb/errors"

	reqdto "studio-booking/internal/handler/dto/request"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	pricingQueries queries.PricingQueries
	adminCommands  commands.AdminCommands
}

func NewPricingHandler(pricingQueries queries.PricingQueries, adminCommands commands.AdminCommands) *PricingHandler {
	return &PricingHandler{
		pricingQueries: pricingQueries,
		adminCommands:  adminCommands,
	}
}

// @Summary Price quote
// @Description Price preview for a booking selection
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} queries.QuoteView
// @Failure 400 {object} httperr.Response
// @Router /api/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	quote, err := h.pricingQueries.Quote(c.Request.Context(), queries.QuoteParams{
		Space:   req.Space,
		Slots:   req.Slots,
		People:  req.People,
		Options: req.Options,
	})
	if err != nil {
		if errors.Is(err, errs.ErrValidationFailed) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid quote request", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// @Summary Current price settings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.PriceSettingsView
// @Router /api/admin/pricing [get]
func (h *PricingHandler) GetSettings(c *gin.Context) {
	settings, err := h.pricingQueries.CurrentSettings(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// @Summary Save price settings
// @Description Appends a new settings version; history is preserved
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PriceSettingsRequest true "Settings"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /api/admin/pricing [put]
func (h *PricingHandler) UpdateSettings(c *gin.Context) {
	var req reqdto.PriceSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	err := h.adminCommands.UpdatePriceSettings(c.Request.Context(), settingsViewFromRequest(req))
	if err != nil {
		if errors.Is(err, errs.ErrInvalidPriceSettings) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid price settings", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Simulate price settings
// @Description Prices a selection against unsaved settings edits
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SimulatePriceRequest true "Simulation request"
// @Success 200 {object} queries.QuoteView
// @Failure 400 {object} httperr.Response
// @Router /api/admin/pricing/simulate [post]
func (h *PricingHandler) Simulate(c *gin.Context) {
	var req reqdto.SimulatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	quote, err := h.pricingQueries.Simulate(c.Request.Context(), settingsViewFromRequest(req.Settings), queries.QuoteParams{
		Space:   req.Space,
		Slots:   req.Slots,
		People:  req.People,
		Options: req.Options,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidPriceSettings):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid price settings", nil)
		case errors.Is(err, errs.ErrValidationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid simulation request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, quote)
}

func settingsViewFromRequest(req reqdto.PriceSettingsRequest) queries.PriceSettingsView {
	return queries.PriceSettingsView{
		BasePrices:     req.BasePrices,
		BasePeople:     req.BasePeople,
		PeopleExtraFee: req.PeopleExtraFee,
		OptionPrices:   req.OptionPrices,
	}
}
