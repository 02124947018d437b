package routes

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-schedule/internal/audit"
	"github.com/BruksfildServices01/barber-schedule/internal/config"
	domain "github.com/BruksfildServices01/barber-schedule/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-schedule/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-schedule/internal/infra/repository"
	"github.com/BruksfildServices01/barber-schedule/internal/middleware"
	"github.com/BruksfildServices01/barber-schedule/internal/timezone"
	ucScheduling "github.com/BruksfildServices01/barber-schedule/internal/usecase/scheduling"
)

// Deps are the process-wide collaborators built in main.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Holidays domain.HolidayChecker
	Audit    *audit.Dispatcher
	Log      *slog.Logger

	// Now overrides the booking clock; nil means time.Now.
	Now func() time.Time
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(d.Config.Timezone)

	schedulingRepo := infraRepo.NewSchedulingGormRepository(d.DB)
	accountRepo := infraRepo.NewAccountGormRepository(d.DB)
	auditLogger := audit.New(d.DB)

	validator := domain.NewValidator(d.Config.PhonePrefix)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucScheduling.NewGetAvailability(schedulingRepo, d.Holidays, loc)
	submitUC := ucScheduling.NewSubmitBooking(schedulingRepo, d.Holidays, validator, d.Audit, loc)
	confirmUC := ucScheduling.NewConfirmBooking(schedulingRepo, d.Audit, loc)
	executeUC := ucScheduling.NewExecuteBooking(schedulingRepo, d.Audit, loc)
	byDateUC := ucScheduling.NewListSchedulingsByDate(schedulingRepo, loc)
	byMonthUC := ucScheduling.NewListSchedulingsByMonth(schedulingRepo, loc)
	clientsUC := ucScheduling.NewListClients(schedulingRepo)

	if d.Now != nil {
		submitUC.SetClock(d.Now)
		confirmUC.SetClock(d.Now)
		executeUC.SetClock(d.Now)
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(availabilityUC, submitUC, loc, d.Log)
	authHandler := handlers.NewAuthHandler(accountRepo, d.Audit, d.Config, d.Log)
	meHandler := handlers.NewMeHandler(accountRepo, clientsUC, d.Audit, d.Log)
	schedulingHandler := handlers.NewSchedulingHandler(confirmUC, executeUC, byDateUC, byMonthUC, loc, d.Log)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, loc, d.Log)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api/v1")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/schedule-list/:date", publicHandler.Availability)
		api.POST("/schedule-time", publicHandler.SubmitBooking)
		api.GET("/work-types", publicHandler.WorkTypes)
		api.GET("/business-hours", publicHandler.BusinessHours)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// BARBER
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.GET("/barbers/ref", authHandler.ProviderRef)

			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.GET("/me/clients", meHandler.ListClients)

			secured.GET("/me/schedulings", schedulingHandler.ListByDate)
			secured.GET("/me/schedulings/month", schedulingHandler.ListByMonth)
			secured.PUT("/me/schedulings/confirm", schedulingHandler.Confirm)
			secured.PATCH("/me/schedulings/:id/execute", schedulingHandler.Execute)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
