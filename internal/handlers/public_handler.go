package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-schedule/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-schedule/internal/dto"
	"github.com/BruksfildServices01/barber-schedule/internal/httperr"
	"github.com/BruksfildServices01/barber-schedule/internal/httpresp"
	"github.com/BruksfildServices01/barber-schedule/internal/timezone"
	ucScheduling "github.com/BruksfildServices01/barber-schedule/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	availability *ucScheduling.GetAvailability
	submit       *ucScheduling.SubmitBooking
	loc          *time.Location
	log          *slog.Logger
}

func NewPublicHandler(
	availability *ucScheduling.GetAvailability,
	submit *ucScheduling.SubmitBooking,
	loc *time.Location,
	log *slog.Logger,
) *PublicHandler {
	return &PublicHandler{
		availability: availability,
		submit:       submit,
		loc:          loc,
		log:          log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SubmitBookingRequest struct {
	Provider    string `json:"provider" binding:"required"`
	DateTime    string `json:"date_time" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	WorkType    string `json:"work_type"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	date, err := parseDate(h.loc, c.Param("date"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	provider := c.Query("provider")
	if provider == "" {
		httperr.BadRequest(c, "missing_provider", "Barbeiro obrigatório.")
		return
	}

	plan, err := h.availability.Execute(c.Request.Context(), provider, date)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	slots := make([]string, 0, len(plan.Slots))
	for _, s := range plan.Slots {
		slots = append(slots, timezone.Clock(s))
	}

	httpresp.OK(c, dto.AvailabilityDTO{
		Date:   timezone.Day(plan.Date),
		Status: string(plan.Status),
		Slots:  slots,
	})
}

// ======================================================
// SUBMIT
// ======================================================

func (h *PublicHandler) SubmitBooking(c *gin.Context) {
	var req SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	s, err := h.submit.Execute(c.Request.Context(), ucScheduling.SubmitBookingInput{
		Provider:    req.Provider,
		DateTime:    req.DateTime,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		WorkType:    req.WorkType,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":           s.ID,
		"provider":     req.Provider,
		"date_time":    s.DateTime.In(h.loc),
		"client_name":  s.ClientName,
		"client_phone": s.ClientPhone,
		"work_type":    domain.WorkTypeLabel(s.WorkType),
		"state":        s.State,
	})
}

// ======================================================
// READ-ONLY TABLES
// ======================================================

func (h *PublicHandler) WorkTypes(c *gin.Context) {
	httpresp.List(c, domain.WorkTypes())
}

type businessHoursDTO struct {
	Weekday    int    `json:"weekday"`
	Name       string `json:"name"`
	Closed     bool   `json:"closed"`
	Open       string `json:"open,omitempty"`
	LunchStart string `json:"lunch_start,omitempty"`
	LunchEnd   string `json:"lunch_end,omitempty"`
	Close      string `json:"close,omitempty"`
}

func (h *PublicHandler) BusinessHours(c *gin.Context) {
	hm := func(d time.Duration) string {
		return timezone.Clock(time.Time{}.Add(d))
	}

	out := make([]businessHoursDTO, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		row := businessHoursDTO{Weekday: int(wd), Name: wd.String()}

		hours, open := domain.HoursFor(wd)
		if !open {
			row.Closed = true
			out = append(out, row)
			continue
		}

		row.Open = hm(hours.Open)
		row.Close = hm(hours.Close)
		if hours.HasLunch() {
			row.LunchStart = hm(hours.LunchStart)
			row.LunchEnd = hm(hours.LunchEnd)
		}
		out = append(out, row)
	}

	httpresp.List(c, out)
}
