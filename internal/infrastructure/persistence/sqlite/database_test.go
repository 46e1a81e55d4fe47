package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	gormRepo "github.com/alchemorsel/pantry/internal/infrastructure/persistence/gorm"
)

func TestSetupDatabase(t *testing.T) {
	db, err := SetupDatabase("", logger.Silent)
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable(&gormRepo.LotModel{}))
}

func TestSeedDatabase(t *testing.T) {
	db, err := SetupDatabase("", logger.Silent)
	require.NoError(t, err)

	require.NoError(t, SeedDatabase(db))

	repo := gormRepo.NewPantryRepository(db)
	lots, err := repo.FindStockedByUser(context.Background(), DemoUserID)
	require.NoError(t, err)
	assert.Len(t, lots, 7)

	// Seeding again must not duplicate the demo pantry.
	require.NoError(t, SeedDatabase(db))
	lots, err = repo.FindStockedByUser(context.Background(), DemoUserID)
	require.NoError(t, err)
	assert.Len(t, lots, 7)
}
