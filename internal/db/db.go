package db

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// pure-Go "sqlite" driver used by the gorm sqlite dialector below
	_ "modernc.org/sqlite"

	"github.com/BruksfildServices01/barber-schedule/internal/config"
	"github.com/BruksfildServices01/barber-schedule/internal/models"
)

const (
	ConfirmedSlotIndex = "ux_schedulings_confirmed_slot"
	ClientDayIndex     = "ux_schedulings_client_day"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := Connect(cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Connect opens Postgres for postgres:// URLs and SQLite for anything else
// (local runs and tests).
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return connectPostgres(dsn)
	}
	return connectSQLite(dsn)
}

func connectPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

func connectSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	// One connection: SQLite writers serialise here, and an in-memory
	// database lives exactly as long as its connection.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Barber{},
		&models.Scheduling{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS ` + ConfirmedSlotIndex + `
		 ON schedulings (provider_id, day, slot) WHERE state = 'CONF'`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ` + ClientDayIndex + `
		 ON schedulings (provider_id, day, client_phone)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create booking index: %w", err)
		}
	}

	return nil
}
