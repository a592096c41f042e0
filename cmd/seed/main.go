package main

import (
	"log"
	"os"
	"time"

	"scholarship-fund-be/internal/config"
	"scholarship-fund-be/internal/model"
	"scholarship-fund-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeds the treatment center directory and, when BOOTSTRAP_ADMIN_EMAIL
// and BOOTSTRAP_ADMIN_PASSWORD are set, a first super admin so the
// dashboard can be reached on a fresh database.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	seedTreatmentCenters(db)
	seedBootstrapAdmin(db)

	color.Green("✅ Seeding complete")
}

func seedTreatmentCenters(db *gorm.DB) {
	centers := []model.TreatmentCenter{
		{Name: "Harbor Recovery Center", City: "Portland", State: "OR"},
		{Name: "Lakeside Treatment Partners", City: "Minneapolis", State: "MN"},
		{Name: "New Dawn Residential", City: "Austin", State: "TX"},
		{Name: "Summit View Recovery", City: "Denver", State: "CO"},
		{Name: "Riverbend Wellness Institute", City: "Nashville", State: "TN"},
	}

	for _, c := range centers {
		c.Id = uuid.New()
		c.IsActive = true
		c.CreatedAt = time.Now()

		res := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&c)
		if res.Error != nil {
			color.Red("Failed to seed center %s: %v", c.Name, res.Error)
			continue
		}
		if res.RowsAffected > 0 {
			color.Cyan("Seeded treatment center: %s (%s, %s)", c.Name, c.City, c.State)
		}
	}
}

func seedBootstrapAdmin(db *gorm.DB) {
	email := os.Getenv("BOOTSTRAP_ADMIN_EMAIL")
	password := os.Getenv("BOOTSTRAP_ADMIN_PASSWORD")
	if email == "" || password == "" {
		color.Yellow("Skipping bootstrap admin (BOOTSTRAP_ADMIN_EMAIL / BOOTSTRAP_ADMIN_PASSWORD not set)")
		return
	}

	var count int64
	db.Model(&model.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		color.Yellow("Bootstrap admin %s already exists, skipping", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Failed to hash bootstrap password: %v", err)
		return
	}
	hashStr := string(hash)

	admin := model.User{
		Id:           uuid.New(),
		Email:        email,
		FullName:     "Bootstrap Admin",
		PasswordHash: &hashStr,
		Role:         "super_admin",
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := db.Create(&admin).Error; err != nil {
		color.Red("Failed to seed bootstrap admin: %v", err)
		return
	}
	color.Cyan("Seeded bootstrap super admin: %s", email)
}
