package api

import (
	"net/http"

	"github.com/cockroachdb/errors"

	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityQueries: availabilityQueries}
}

// @Summary Catalog
// @Description Fixed catalogs of spaces, options and hourly slots
// @Tags availability
// @Produce json
// @Success 200 {object} queries.CatalogView
// @Router /api/catalog [get]
func (h *AvailabilityHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.availabilityQueries.Catalog())
}

// @Summary Available times
// @Description Hourly slots of the date still free for the space
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param space query string true "Space identifier"
// @Success 200 {array} string
// @Failure 400 {object} httperr.Response
// @Router /api/availability [get]
func (h *AvailabilityHandler) GetAvailableTimes(c *gin.Context) {
	date := c.Query("date")
	space := c.Query("space")

	slots, err := h.availabilityQueries.AvailableTimes(c.Request.Context(), date, space)
	if err != nil {
		if errors.Is(err, errs.ErrValidationFailed) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date or space", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, slots)
}

// @Summary Day occupancy
// @Description Taken (time, space) pairs of a date for calendar badges
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} queries.SlotOccupancy
// @Failure 400 {object} httperr.Response
// @Router /api/availability/day [get]
func (h *AvailabilityHandler) GetDayOccupancy(c *gin.Context) {
	date := c.Query("date")

	occupancy, err := h.availabilityQueries.DayOccupancy(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, errs.ErrValidationFailed) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, occupancy)
}
