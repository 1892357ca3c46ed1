package server

import (
	"strings"

	"nutriplan/internal/models"
	"nutriplan/internal/normalize"

	"github.com/gofiber/fiber/v2"
)

// profileRequest is the health form body. Numeric fields are declared as
// `any` because the form submits them as either JSON numbers or strings;
// the normalize package coerces them totally, so a stray "" never panics
// the handler.
type profileRequest struct {
	Age    any    `json:"age"`
	Gender string `json:"gender"`
	Height any    `json:"height"` // feet, possibly fractional
	Weight any    `json:"weight"` // kilograms

	ChronicDisease         string `json:"chronic_disease"`
	BloodPressureSystolic  any    `json:"blood_pressure_systolic"`
	BloodPressureDiastolic any    `json:"blood_pressure_diastolic"`
	CholesterolLevel       any    `json:"cholesterol_level"`
	BloodSugarLevel        any    `json:"blood_sugar_level"`
	GeneticRiskFactor      string `json:"genetic_risk_factor"`
	Allergies              string `json:"allergies"`
	FoodAversion           string `json:"food_aversion"`

	DailySteps         any    `json:"daily_steps"`
	ExerciseFrequency  string `json:"exercise_frequency"`
	SleepHours         any    `json:"sleep_hours"`
	AlcoholConsumption string `json:"alcohol_consumption"`
	SmokingHabit       string `json:"smoking_habit"`
	DietaryHabits      string `json:"dietary_habits"`
	PreferredCuisine   string `json:"preferred_cuisine"`
}

// UpsertHealthProfile handles POST /api/health/profile. Validation lives
// here, at write time; downstream consumers (the prediction request
// builder) trust the stored record.
func (s *Server) UpsertHealthProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	age := normalize.NumberPtr(req.Age)
	height := normalize.NumberPtr(req.Height)
	weight := normalize.NumberPtr(req.Weight)
	gender := strings.TrimSpace(req.Gender)

	switch {
	case age == nil || *age <= 0 || *age != float64(int(*age)):
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("age must be a positive whole number"))
	case gender == "":
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("gender is required"))
	case height == nil || *height <= 0:
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("height must be a positive number of feet"))
	case weight == nil || *weight <= 0:
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("weight must be a positive number of kilograms"))
	}

	sleepHours := normalize.NumberPtr(req.SleepHours)
	if sleepHours != nil && (*sleepHours < 0 || *sleepHours > 24) {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("sleep_hours must be between 0 and 24"))
	}

	optional := map[string]*float64{
		"blood_pressure_systolic":  normalize.NumberPtr(req.BloodPressureSystolic),
		"blood_pressure_diastolic": normalize.NumberPtr(req.BloodPressureDiastolic),
		"cholesterol_level":        normalize.NumberPtr(req.CholesterolLevel),
		"blood_sugar_level":        normalize.NumberPtr(req.BloodSugarLevel),
		"daily_steps":              normalize.NumberPtr(req.DailySteps),
	}
	for field, v := range optional {
		if v != nil && *v < 0 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(field+" must not be negative"))
		}
	}

	profile := &models.HealthProfile{
		UserID:     userID,
		Age:        int(*age),
		Gender:     gender,
		HeightFeet: *height,
		WeightKg:   *weight,
		// Derived; recomputed on every write where height/weight change.
		BMI: normalize.ComputeBMI(*height, *weight),

		ChronicDisease:        optionalString(req.ChronicDisease),
		BloodPressureSystolic: optional["blood_pressure_systolic"],
		BloodPressureDiastol:  optional["blood_pressure_diastolic"],
		CholesterolLevel:      optional["cholesterol_level"],
		BloodSugarLevel:       optional["blood_sugar_level"],
		GeneticRiskFactor:     optionalString(req.GeneticRiskFactor),
		Allergies:             optionalString(req.Allergies),
		FoodAversion:          optionalString(req.FoodAversion),

		DailySteps:         optionalSteps(optional["daily_steps"]),
		ExerciseFrequency:  optionalString(req.ExerciseFrequency),
		SleepHours:         sleepHours,
		AlcoholConsumption: optionalString(req.AlcoholConsumption),
		SmokingHabit:       optionalString(req.SmokingHabit),
		DietaryHabits:      optionalString(req.DietaryHabits),
		PreferredCuisine:   optionalString(req.PreferredCuisine),
	}

	created, err := s.profileRepo.Upsert(c.UserContext(), profile)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	status := fiber.StatusOK
	message := "Health data updated"
	if created {
		status = fiber.StatusCreated
		message = "Health data saved"
	}

	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"profile": profile,
	})
}

// GetHealthProfile handles GET /api/health/profile
func (s *Server) GetHealthProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	profile, err := s.profileRepo.FindByUser(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if profile == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewProfileNotFoundError())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"profile": profile,
	})
}

// optionalString stores NULL for absent categorical input; the raw token
// is kept at rest and normalized only when the prediction payload is built.
func optionalString(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func optionalSteps(v *float64) *int {
	if v == nil {
		return nil
	}
	steps := int(*v)
	return &steps
}
