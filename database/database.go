package database

import (
	"os"

	"scriptpilot/internal/domain/ideas"
	"scriptpilot/internal/domain/profiles"
	"scriptpilot/internal/domain/reviews"
	"scriptpilot/internal/domain/scripts"
	"scriptpilot/internal/domain/settings"
	"scriptpilot/internal/domain/subscriptions"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal().Msg("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to connect to database")
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal().Err(err).Msg("❌ AutoMigrate error")
	}

	log.Info().Msg("✅ Connected and migrated successfully")
}

// Migrate runs AutoMigrate for every domain model. Split out from InitDB so
// tests can run it against their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// identity + billing mirrors
		&profiles.UserProfile{},
		&subscriptions.Subscription{},

		// content production
		&ideas.Idea{},
		&scripts.Script{},
		&reviews.Review{},
		&settings.UserSettings{},
	)
}
