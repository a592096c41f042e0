package main

import (
	"log"

	"scholarship-fund-be/internal/config"
	"scholarship-fund-be/internal/model"
	"scholarship-fund-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	log.Println("Running migrations...")
	err = db.AutoMigrate(
		&model.User{},
		&model.Client{},
		&model.TreatmentCenter{},
		&model.Donation{},
		&model.Scholarship{},
		&model.ScholarshipApproval{},
		&model.AuditEvent{},
	)
	if err != nil {
		log.Panicf("Migration failed: %v", err)
	}

	log.Println("✅ Migrations complete")
}
