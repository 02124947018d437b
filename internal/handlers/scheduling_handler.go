package handlers

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-schedule/internal/httperr"
	"github.com/BruksfildServices01/barber-schedule/internal/httpresp"
	"github.com/BruksfildServices01/barber-schedule/internal/middleware"
	ucScheduling "github.com/BruksfildServices01/barber-schedule/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

type SchedulingHandler struct {
	confirm *ucScheduling.ConfirmBooking
	execute *ucScheduling.ExecuteBooking
	byDate  *ucScheduling.ListSchedulingsByDate
	byMonth *ucScheduling.ListSchedulingsByMonth
	loc     *time.Location
	log     *slog.Logger
}

func NewSchedulingHandler(
	confirm *ucScheduling.ConfirmBooking,
	execute *ucScheduling.ExecuteBooking,
	byDate *ucScheduling.ListSchedulingsByDate,
	byMonth *ucScheduling.ListSchedulingsByMonth,
	loc *time.Location,
	log *slog.Logger,
) *SchedulingHandler {
	return &SchedulingHandler{
		confirm: confirm,
		execute: execute,
		byDate:  byDate,
		byMonth: byMonth,
		loc:     loc,
		log:     log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ConfirmBookingRequest struct {
	DateTime    string `json:"date_time" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
}

// ======================================================
// CONFIRM
// ======================================================

func (h *SchedulingHandler) Confirm(c *gin.Context) {
	var req ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	s, err := h.confirm.Execute(c.Request.Context(), ucScheduling.ConfirmBookingInput{
		BarberID:    middleware.BarberID(c),
		DateTime:    req.DateTime,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, s)
}

// ======================================================
// EXECUTE
// ======================================================

func (h *SchedulingHandler) Execute(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	s, err := h.execute.Execute(c.Request.Context(), middleware.BarberID(c), uint(id))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, s)
}

// ======================================================
// LIST
// ======================================================

func (h *SchedulingHandler) ListByDate(c *gin.Context) {
	date, err := parseDate(h.loc, c.Query("date"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	list, err := h.byDate.Execute(c.Request.Context(), middleware.BarberID(c), date)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, list)
}

func (h *SchedulingHandler) ListByMonth(c *gin.Context) {
	year, month, err := parseYearMonth(c.Query("year"), c.Query("month"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	list, err := h.byMonth.Execute(c.Request.Context(), middleware.BarberID(c), year, month)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, list)
}
