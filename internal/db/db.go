package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/naimkchao/barbershop-backend/internal/config"
	"github.com/naimkchao/barbershop-backend/internal/models"
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
		&models.User{},
		&models.Media{},
		&models.Barber{},
		&models.Service{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// The last-resort guard against concurrent double-booking. Partial
	// so cancelled/completed/no_show rows release the start instant.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uq_bookings_barber_start
        ON bookings (barber_id, start_time)
        WHERE status IN ('pending', 'confirmed')
    `)

	return db
}
