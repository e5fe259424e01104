package api

import (
	"net/http"

	"github.com/cockroachdb/errors"

	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminCommands commands.AdminCommands
	adminQueries  queries.AdminQueries
}

func NewAdminHandler(adminCommands commands.AdminCommands, adminQueries queries.AdminQueries) *AdminHandler {
	return &AdminHandler{
		adminCommands: adminCommands,
		adminQueries:  adminQueries,
	}
}

// @Summary List reservations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ReservationView
// @Router /api/admin/reservations [get]
func (h *AdminHandler) ListReservations(c *gin.Context) {
	reservations, err := h.adminQueries.ListReservations(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if reservations == nil {
		reservations = []*queries.ReservationView{}
	}
	c.JSON(http.StatusOK, reservations)
}

// @Summary Export reservations
// @Description Verbatim CSV dump of all reservations, UTF-8 with BOM
// @Tags admin
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string
// @Router /api/admin/reservations/export [get]
func (h *AdminHandler) ExportReservations(c *gin.Context) {
	data, err := h.adminQueries.ExportReservationsCSV(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+queries.ExportFilename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// @Summary List blocked times
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.BlockedTimeView
// @Router /api/admin/blocked-times [get]
func (h *AdminHandler) ListBlockedTimes(c *gin.Context) {
	blocked, err := h.adminQueries.ListBlockedTimes(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if blocked == nil {
		blocked = []*queries.BlockedTimeView{}
	}
	c.JSON(http.StatusOK, blocked)
}

// @Summary Block time slots
// @Description Blocks the selected slots for every date in the range
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BlockSlotsRequest true "Block request"
// @Success 201 {object} resdto.BlockSlotsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/blocked-times [post]
func (h *AdminHandler) BlockSlots(c *gin.Context) {
	var req reqdto.BlockSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.adminCommands.BlockSlots(c.Request.Context(), commands.BlockSlotsParams{
		From:   req.From,
		To:     req.To,
		Space:  req.Space,
		Slots:  req.Slots,
		Reason: req.Reason,
	})
	if err != nil {
		if errors.Is(err, errs.ErrValidationFailed) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid block request", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.BlockSlotsResponse{Blocked: result.Blocked})
}

// @Summary Reservation statistics
// @Description Count, revenue and averages over an inclusive date range
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} queries.StatisticsView
// @Failure 400 {object} httperr.Response
// @Router /api/admin/stats [get]
func (h *AdminHandler) Statistics(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")

	stats, err := h.adminQueries.Statistics(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, errs.ErrValidationFailed) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, stats)
}
