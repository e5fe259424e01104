package api

import (
	"net/http"

	"github.com/cockroachdb/errors"

	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{bookingCommands: bookingCommands}
}

// @Summary Create reservation
// @Description Book one or more hourly slots of a space for one date
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations [post]
func (h *BookingHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.bookingCommands.CreateReservation(c.Request.Context(), commands.CreateReservationParams{
		Date:    req.Date,
		Space:   req.Space,
		Slots:   req.Slots,
		People:  req.People,
		Options: req.Options,
		Name:    req.Name,
		Contact: req.Contact,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrValidationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation request", nil)
		case errors.Is(err, errs.ErrSlotConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot is no longer available", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateReservationResult(result))
}
