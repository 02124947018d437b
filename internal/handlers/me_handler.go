package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-schedule/internal/audit"
	"github.com/BruksfildServices01/barber-schedule/internal/domain/barber"
	"github.com/BruksfildServices01/barber-schedule/internal/httperr"
	"github.com/BruksfildServices01/barber-schedule/internal/httpresp"
	infraRepo "github.com/BruksfildServices01/barber-schedule/internal/infra/repository"
	"github.com/BruksfildServices01/barber-schedule/internal/middleware"
	ucScheduling "github.com/BruksfildServices01/barber-schedule/internal/usecase/scheduling"
)

type MeHandler struct {
	accounts *infraRepo.AccountGormRepository
	clients  *ucScheduling.ListClients
	audit    *audit.Dispatcher
	log      *slog.Logger
}

func NewMeHandler(
	accounts *infraRepo.AccountGormRepository,
	clients *ucScheduling.ListClients,
	audit *audit.Dispatcher,
	log *slog.Logger,
) *MeHandler {
	return &MeHandler{accounts: accounts, clients: clients, audit: audit, log: log}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	b, err := h.accounts.GetBarber(c.Request.Context(), middleware.BarberID(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"barber": barberView(b)})
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	var req barber.PatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	patches, err := req.Patches()
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	ctx := c.Request.Context()

	b, err := h.accounts.GetBarber(ctx, middleware.BarberID(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	if err := barber.ApplyAll(b, patches); err != nil {
		writeError(c, h.log, err)
		return
	}

	if err := h.accounts.SaveProfile(ctx, b); err != nil {
		writeError(c, h.log, err)
		return
	}

	kinds := make([]string, 0, len(patches))
	for _, p := range patches {
		kinds = append(kinds, p.Kind())
	}
	h.audit.Dispatch(audit.Event{
		BarberID: &b.ID,
		Action:   audit.ActionProfileUpdated,
		Entity:   audit.EntityBarber,
		Metadata: map[string]any{"patches": kinds},
	})

	httpresp.OK(c, gin.H{"barber": barberView(b)})
}

func (h *MeHandler) ListClients(c *gin.Context) {
	clients, err := h.clients.Execute(c.Request.Context(), middleware.BarberID(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, clients)
}
