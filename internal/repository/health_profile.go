package repository

import (
	"context"
	"errors"

	"nutriplan/internal/models"
	"nutriplan/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HealthProfileRepository persists the one-per-user health profile.
type HealthProfileRepository interface {
	// Upsert writes the profile for profile.UserID, creating it on first
	// submission and overwriting it in place afterwards. Returns true when
	// a new row was created.
	Upsert(ctx context.Context, profile *models.HealthProfile) (bool, error)
	// FindByUser returns the profile for userID, or (nil, nil) when the
	// user has not submitted one.
	FindByUser(ctx context.Context, userID uint) (*models.HealthProfile, error)
}

type healthProfileRepository struct {
	db *gorm.DB
}

// NewHealthProfileRepository creates a new health profile repository
func NewHealthProfileRepository(db *gorm.DB) HealthProfileRepository {
	return &healthProfileRepository{db: db}
}

// profileUpdateColumns are the columns rewritten on conflict. The unique
// index on user_id makes concurrent same-user submissions resolve
// last-write-wins inside the database rather than in application code.
var profileUpdateColumns = []string{
	"age", "gender", "height", "weight", "bmi",
	"chronic_disease", "blood_pressure_systolic", "blood_pressure_diastolic",
	"cholesterol_level", "blood_sugar_level", "genetic_risk_factor",
	"allergies", "food_aversion",
	"daily_steps", "exercise_frequency", "sleep_hours",
	"alcohol_consumption", "smoking_habit", "dietary_habits",
	"preferred_cuisine", "updated_at",
}

func (r *healthProfileRepository) Upsert(ctx context.Context, profile *models.HealthProfile) (bool, error) {
	defer observability.TrackQuery("upsert", "health_profiles")()

	existing, err := r.FindByUser(ctx, profile.UserID)
	if err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(profileUpdateColumns),
	}).Create(profile)
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}

	created := existing == nil
	if created {
		observability.ProfileWritesTotal.WithLabelValues("created").Inc()
	} else {
		observability.ProfileWritesTotal.WithLabelValues("updated").Inc()
		// The insert path lost the race or hit the existing row; reload so
		// the caller sees the canonical row ID and timestamps.
		stored, err := r.FindByUser(ctx, profile.UserID)
		if err != nil {
			return false, err
		}
		if stored != nil {
			*profile = *stored
		}
	}
	return created, nil
}

func (r *healthProfileRepository) FindByUser(ctx context.Context, userID uint) (*models.HealthProfile, error) {
	defer observability.TrackQuery("find_by_user", "health_profiles")()

	var profile models.HealthProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}
