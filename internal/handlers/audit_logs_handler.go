package handlers

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-schedule/internal/audit"
	"github.com/BruksfildServices01/barber-schedule/internal/middleware"
)

type AuditLogsHandler struct {
	logs *audit.Logger
	loc  *time.Location
	log  *slog.Logger
}

func NewAuditLogsHandler(logs *audit.Logger, loc *time.Location, log *slog.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc, log: log}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	// invalid dates are ignored
	if from, err := parseDate(h.loc, c.Query("from")); err == nil {
		f.From = from
	}
	if to, err := parseDate(h.loc, c.Query("to")); err == nil {
		f.To = to.AddDate(0, 0, 1)
	}

	logs, total, err := h.logs.List(c.Request.Context(), middleware.BarberID(c), f)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
