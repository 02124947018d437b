package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-schedule/internal/httperr"
)

var statusByCode = map[string]int{
	"provider_not_found":            http.StatusNotFound,
	"confirmation_target_not_found": http.StatusNotFound,
	"scheduling_not_found":          http.StatusNotFound,

	"slot_taken":         http.StatusConflict,
	"duplicate_booking":  http.StatusConflict,
	"invalid_state":      http.StatusConflict,
	"username_taken":     http.StatusConflict,
	"display_name_taken": http.StatusConflict,

	"appointment_not_started": http.StatusConflict,

	"invalid_credentials": http.StatusUnauthorized,
}

// writeError renders business errors with their mapped status (400 when
// unmapped) and everything else as a logged 500.
func writeError(c *gin.Context, log *slog.Logger, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		status, mapped := statusByCode[be.Code]
		if !mapped {
			status = http.StatusBadRequest
		}
		httperr.Write(c, status, be.Code, be.Message)
		return
	}

	log.Error("request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"err", err,
	)
	httperr.Internal(c, "internal_error", "Erro interno.")
}
