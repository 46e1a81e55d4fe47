// Package sqlite provides SQLite database setup and configuration
package sqlite

import (
	"fmt"
	"time"

	"github.com/alchemorsel/pantry/internal/domain/pantry"
	gormModels "github.com/alchemorsel/pantry/internal/infrastructure/persistence/gorm"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DemoUserID owns the seeded demo pantry
var DemoUserID = uuid.MustParse("f3b1c1de-0000-4000-8000-000000000001")

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&gormModels.LotModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedDatabase populates the database with a demo pantry
func SeedDatabase(db *gorm.DB) error {
	var count int64
	db.Model(&gormModels.LotModel{}).Count(&count)
	if count > 0 {
		return nil // Already seeded
	}

	day := 24 * time.Hour
	demoLots := []struct {
		name      string
		quantity  float64
		unit      string
		expiresIn time.Duration // zero means no expiration
	}{
		{"egg", 12, "each", 14 * day},
		{"milk", 1000, "ml", 5 * day},
		{"flour", 2000, "g", 0},
		{"olive oil", 500, "ml", 0},
		{"butter", 250, "g", 30 * day},
		{"tomato", 6, "each", 4 * day},
		{"parmesan cheese", 200, "g", 21 * day},
	}

	for _, seed := range demoLots {
		var expiresAt *time.Time
		if seed.expiresIn > 0 {
			t := time.Now().Add(seed.expiresIn)
			expiresAt = &t
		}

		lot, err := pantry.NewLot(DemoUserID, seed.name, seed.quantity, seed.unit, expiresAt)
		if err != nil {
			return fmt.Errorf("failed to build seed lot %q: %w", seed.name, err)
		}
		if err := db.Create(gormModels.LotToModel(lot)).Error; err != nil {
			return fmt.Errorf("failed to seed lot %q: %w", seed.name, err)
		}
	}

	return nil
}
