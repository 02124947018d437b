package main

import (
	"log"
	"log/slog"
	"net/http"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-schedule/internal/audit"
	"github.com/BruksfildServices01/barber-schedule/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-schedule/internal/db"
	"github.com/BruksfildServices01/barber-schedule/internal/holiday"
	"github.com/BruksfildServices01/barber-schedule/internal/logger"
	"github.com/BruksfildServices01/barber-schedule/internal/middleware"
	"github.com/BruksfildServices01/barber-schedule/internal/routes"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logger.New(cfg.LogLevel)
	db := dbpkg.NewDB(cfg)

	dispatcher := audit.NewDispatcher(audit.New(db), logg)
	defer dispatcher.Close()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Holidays: holiday.NewCalendar(holidaySource(cfg, logg), logg),
		Audit:    dispatcher,
		Log:      logg,
	})

	logg.Info("server starting", "addr", cfg.Addr(), "timezone", cfg.Timezone)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func holidaySource(cfg *config.Config, logg *slog.Logger) holiday.Source {
	if cfg.HolidayAPIURL == "" {
		logg.Warn("HOLIDAY_API_URL empty, no holidays will be known")
		return holiday.Static{}
	}

	var src holiday.Source = holiday.NewBrasilAPI(cfg.HolidayAPIURL, cfg.HolidayTimeout)

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		src = holiday.NewRedisSource(redis.NewClient(opts), src, cfg.HolidayCacheTTL, logg)
		logg.Info("holiday cache enabled (redis)", "addr", opts.Addr)
	}

	return src
}
