package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/barberiapro/booking-api/internal/config"
	"github.com/barberiapro/booking-api/internal/models"
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
		&models.Barber{},
		&models.Service{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// AutoMigrate cannot express a partial index. Without it, two inserts
	// racing on a free slot both pass the repository's locking count
	// (there is no row to lock yet) and both commit.
	slotIndex := fmt.Sprintf(
		"CREATE UNIQUE INDEX IF NOT EXISTS %s ON appointments (barber_id, date, time) WHERE status <> 'cancelled'",
		models.UniqueActiveSlotIndex,
	)
	if err := db.Exec(slotIndex).Error; err != nil {
		log.Fatalf("failed to create slot index: %v", err)
	}

	if err := Seed(db); err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}

	return db
}
