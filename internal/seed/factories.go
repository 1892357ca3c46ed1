package seed

import (
	"fmt"
	"strings"
	"time"

	"nutriplan/internal/models"
	"nutriplan/internal/normalize"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedPassword is the password every seeded user gets, so seeded
// accounts can be logged into during development.
const SeedPassword = "pw123456"

// Form vocabularies. These match what the web form offers, including
// the "Non-smoker" style synonyms the normalizer maps before prediction.
var (
	genders         = []string{"Male", "Female"}
	chronicDiseases = []string{"No Disease", "Diabetes", "Hypertension", "Heart Disease", "Obesity"}
	yesNo           = []string{"Yes", "No"}
	allergens       = []string{"No", "Peanuts", "Shellfish", "Dairy", "Gluten", "Eggs"}
	aversions       = []string{"No", "Broccoli", "Mushrooms", "Fish", "Spicy Food"}
	exerciseFreqs   = []string{"Never", "Rarely", "Sometimes", "Regular", "Daily"}
	alcoholLevels   = []string{"No", "Occasionally", "Regularly"}
	smokingHabits   = []string{"Non-smoker", "No", "Occasional", "Regular"}
	dietaryHabits   = []string{"Balanced", "Vegetarian", "Vegan", "Keto", "Low Carb", "High Protein"}
	cuisines        = []string{"Indian", "Italian", "Mexican", "Chinese", "Japanese", "Mediterranean", "Thai"}
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db           *gorm.DB
	passwordHash string
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())

	// One bcrypt run for the whole batch; hashing per user dominates
	// seeding time otherwise.
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("seed: hashing password: %v", err))
	}

	return &Factory{db: db, passwordHash: string(hash)}
}

// CreateUser persists a user with a fake identity and the shared seed
// password.
func (f *Factory) CreateUser() (*models.User, error) {
	username := strings.ToLower(gofakeit.Username())
	if len(username) < 3 {
		username = username + gofakeit.DigitN(3)
	}

	user := &models.User{
		Username: fmt.Sprintf("%s%d", username, gofakeit.Number(1, 9999)),
		Email:    strings.ToLower(gofakeit.Email()),
		Password: f.passwordHash,
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateHealthProfile persists a plausible health profile for the user.
// Optional fields are present most of the time but sometimes missing,
// like real form submissions.
func (f *Factory) CreateHealthProfile(user *models.User) (*models.HealthProfile, error) {
	heightFeet := normalize.Round2(gofakeit.Float64Range(4.8, 6.8))
	weightKg := normalize.Round2(gofakeit.Float64Range(45, 130))

	profile := &models.HealthProfile{
		UserID:     user.ID,
		Age:        gofakeit.Number(18, 80),
		Gender:     pick(genders),
		HeightFeet: heightFeet,
		WeightKg:   weightKg,
		BMI:        normalize.ComputeBMI(heightFeet, weightKg),

		ChronicDisease:        maybeStr(pick(chronicDiseases)),
		BloodPressureSystolic: maybeFloat(gofakeit.Float64Range(95, 165)),
		BloodPressureDiastol:  maybeFloat(gofakeit.Float64Range(60, 105)),
		CholesterolLevel:      maybeFloat(gofakeit.Float64Range(130, 280)),
		BloodSugarLevel:       maybeFloat(gofakeit.Float64Range(70, 180)),
		GeneticRiskFactor:     maybeStr(pick(yesNo)),
		Allergies:             maybeStr(pick(allergens)),
		FoodAversion:          maybeStr(pick(aversions)),

		DailySteps:         maybeInt(gofakeit.Number(500, 18000)),
		ExerciseFrequency:  maybeStr(pick(exerciseFreqs)),
		SleepHours:         maybeFloat(normalize.Round2(gofakeit.Float64Range(4, 10))),
		AlcoholConsumption: maybeStr(pick(alcoholLevels)),
		SmokingHabit:       maybeStr(pick(smokingHabits)),
		DietaryHabits:      maybeStr(pick(dietaryHabits)),
		PreferredCuisine:   maybeStr(pick(cuisines)),
	}

	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func pick(options []string) string {
	return options[gofakeit.Number(0, len(options)-1)]
}

// maybeStr returns the value ~85% of the time, nil otherwise.
func maybeStr(s string) *string {
	if gofakeit.Number(1, 100) > 85 {
		return nil
	}
	return &s
}

func maybeFloat(v float64) *float64 {
	if gofakeit.Number(1, 100) > 85 {
		return nil
	}
	v = normalize.Round2(v)
	return &v
}

func maybeInt(v int) *int {
	if gofakeit.Number(1, 100) > 85 {
		return nil
	}
	return &v
}
