package repository

import (
	"context"
	"testing"

	"nutriplan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func baseProfile(userID uint) *models.HealthProfile {
	bmi := 23.13
	return &models.HealthProfile{
		UserID:     userID,
		Age:        30,
		Gender:     "Female",
		HeightFeet: 5.5,
		WeightKg:   65,
		BMI:        &bmi,
	}
}

func TestHealthProfileUpsertCreatesThenUpdates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHealthProfileRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "ana", "ana@example.com")

	created, err := repo.Upsert(ctx, baseProfile(user.ID))
	require.NoError(t, err)
	assert.True(t, created)

	second := baseProfile(user.ID)
	second.WeightKg = 70
	second.DietaryHabits = strPtr("Keto")
	created, err = repo.Upsert(ctx, second)
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	require.NoError(t, db.Model(&models.HealthProfile{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count, "resubmission must overwrite, never duplicate")

	stored, err := repo.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, float64(70), stored.WeightKg)
	require.NotNil(t, stored.DietaryHabits)
	assert.Equal(t, "Keto", *stored.DietaryHabits)
}

func TestHealthProfileUpsertClearsOmittedOptionalFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHealthProfileRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "ben", "ben@example.com")

	first := baseProfile(user.ID)
	first.Allergies = strPtr("Peanuts")
	first.BloodSugarLevel = f64Ptr(95)
	_, err := repo.Upsert(ctx, first)
	require.NoError(t, err)

	// A full resubmission without the optional fields replaces the row
	// wholesale; stale values must not survive.
	_, err = repo.Upsert(ctx, baseProfile(user.ID))
	require.NoError(t, err)

	stored, err := repo.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Nil(t, stored.Allergies)
	assert.Nil(t, stored.BloodSugarLevel)
}

func TestHealthProfileUpsertReturnsCanonicalRowOnUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHealthProfileRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "cleo", "cleo@example.com")

	first := baseProfile(user.ID)
	_, err := repo.Upsert(ctx, first)
	require.NoError(t, err)

	second := baseProfile(user.ID)
	second.Age = 31
	_, err = repo.Upsert(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "update must surface the existing row's ID")
	assert.Equal(t, 31, second.Age)
}

func TestHealthProfileUpsertIsolatedPerUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHealthProfileRepository(db)
	ctx := context.Background()
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	_, err := repo.Upsert(ctx, baseProfile(alice.ID))
	require.NoError(t, err)

	bobProfile := baseProfile(bob.ID)
	bobProfile.WeightKg = 90
	_, err = repo.Upsert(ctx, bobProfile)
	require.NoError(t, err)

	aliceStored, err := repo.FindByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, aliceStored)
	assert.Equal(t, float64(65), aliceStored.WeightKg)
}

func TestHealthProfileFindByUserMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHealthProfileRepository(db)

	profile, err := repo.FindByUser(context.Background(), 9999)
	assert.NoError(t, err)
	assert.Nil(t, profile, "missing profile is not an error")
}
