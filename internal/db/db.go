package db

import (
	"log"
	"time"

	"github.com/NomadRelief/stall-scheduler/internal/config"
	"github.com/NomadRelief/stall-scheduler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Company{},
		&models.User{},
		&models.Trailer{},
		&models.Stall{},
		&models.Appointment{},
		&models.HistoricalAppointment{},
		&models.Notification{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Backstop for the booking race: two live appointments can never hold
	// overlapping intervals on one stall, even if both writers pass the
	// row-lock check.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
        ALTER TABLE appointments
        ADD CONSTRAINT appointments_no_stall_overlap
        EXCLUDE USING gist (
            stall_id WITH =,
            tstzrange(start_time, end_time) WITH &&
        )
        WHERE (status IN ('scheduled', 'in_progress'))
    `)

	return db
}
