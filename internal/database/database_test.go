package database

import (
	"context"
	"testing"

	"nutriplan/internal/config"
	"nutriplan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectUsesInMemorySQLiteInTests(t *testing.T) {
	cfg := &config.Config{Env: "test"}

	db, err := Connect(cfg)
	require.NoError(t, err)
	require.NotNil(t, db)

	// AutoMigrate ran; both tables exist and accept rows.
	user := &models.User{Username: "conncheck", Email: "conn@example.com", Password: "hash"}
	require.NoError(t, db.Create(user).Error)

	profile := &models.HealthProfile{
		UserID:     user.ID,
		Age:        40,
		Gender:     "Male",
		HeightFeet: 6,
		WeightKg:   85,
	}
	require.NoError(t, db.Create(profile).Error)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.PingContext(context.Background()))
}

func TestRegisteredMigrationsAreOrderedAndPaired(t *testing.T) {
	registered := GetMigrations()
	require.NotEmpty(t, registered)

	last := 0
	for _, m := range registered {
		assert.Greater(t, m.Version, last, "versions must be strictly increasing")
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.UpScript)
		assert.NotEmpty(t, m.DownScript)
		last = m.Version
	}

	assert.NotNil(t, GetMigrationByVersion(registered[0].Version))
	assert.Nil(t, GetMigrationByVersion(999999))
}
