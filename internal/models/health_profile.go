package models

import (
	"time"
)

// HealthProfile is the per-user health and lifestyle record used to build
// diet recommendations. Each user owns at most one profile; the unique
// index on UserID enforces that at the storage layer.
//
// Height is stored in feet, exactly as entered. Consumers that need
// centimeters or meters convert through the normalize package.
type HealthProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Physical. BMI is derived and recomputed on every write where
	// height or weight change; nil when inputs were non-positive.
	Age        int      `gorm:"not null" json:"age"`
	Gender     string   `gorm:"not null" json:"gender"`
	HeightFeet float64  `gorm:"column:height;not null" json:"height"`
	WeightKg   float64  `gorm:"column:weight;not null" json:"weight"`
	BMI        *float64 `gorm:"column:bmi" json:"bmi"`

	// Clinical, all optional.
	ChronicDisease        *string  `json:"chronic_disease"`
	BloodPressureSystolic *float64 `json:"blood_pressure_systolic"`
	BloodPressureDiastol  *float64 `gorm:"column:blood_pressure_diastolic" json:"blood_pressure_diastolic"`
	CholesterolLevel      *float64 `json:"cholesterol_level"`
	BloodSugarLevel       *float64 `json:"blood_sugar_level"`
	GeneticRiskFactor     *string  `json:"genetic_risk_factor"`
	Allergies             *string  `json:"allergies"`
	FoodAversion          *string  `json:"food_aversion"`

	// Lifestyle, all optional.
	DailySteps         *int     `json:"daily_steps"`
	ExerciseFrequency  *string  `json:"exercise_frequency"`
	SleepHours         *float64 `json:"sleep_hours"`
	AlcoholConsumption *string  `json:"alcohol_consumption"`
	SmokingHabit       *string  `json:"smoking_habit"`
	DietaryHabits      *string  `json:"dietary_habits"`
	PreferredCuisine   *string  `json:"preferred_cuisine"`
}
