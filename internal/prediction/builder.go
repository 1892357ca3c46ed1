package prediction

import (
	"strconv"

	"nutriplan/internal/models"
	"nutriplan/internal/normalize"
)

// BuildRequest maps a stored health profile onto the upstream payload
// schema. Every field passes through the normalize package; nothing is
// forwarded raw. The result depends only on the profile, so building
// twice from the same record yields byte-identical JSON.
//
// The profile was validated at write time; the builder does not
// re-reject stored records.
func BuildRequest(profile *models.HealthProfile) *Request {
	return &Request{
		Age:    normalize.Number(profile.Age, 0),
		Gender: normalize.Field(normalize.FieldGender, profile.Gender),

		// Stored in feet, sent in centimeters. One rule, one place.
		Height: normalize.FeetToCm(profile.HeightFeet),
		Weight: normalize.Number(profile.WeightKg, 0),
		BMI:    normalize.Number(profile.BMI, 0),

		BloodPressureSystolic:  normalize.Number(profile.BloodPressureSystolic, 0),
		BloodPressureDiastolic: normalize.Number(profile.BloodPressureDiastol, 0),
		CholesterolLevel:       normalize.Number(profile.CholesterolLevel, 0),
		BloodSugarLevel:        normalize.Number(profile.BloodSugarLevel, 0),

		ChronicDisease:    normalize.Field(normalize.FieldChronicDisease, deref(profile.ChronicDisease)),
		GeneticRiskFactor: normalize.Field(normalize.FieldGeneticRiskFactor, deref(profile.GeneticRiskFactor)),
		Allergies:         normalize.Field(normalize.FieldAllergies, deref(profile.Allergies)),
		FoodAversions:     normalize.Field(normalize.FieldFoodAversion, deref(profile.FoodAversion)),

		DailySteps:         stepsValue(profile.DailySteps),
		ExerciseFrequency:  normalize.Field(normalize.FieldExerciseFrequency, deref(profile.ExerciseFrequency)),
		SleepHours:         normalize.Number(profile.SleepHours, 6),
		AlcoholConsumption: normalize.Field(normalize.FieldAlcoholConsumption, deref(profile.AlcoholConsumption)),
		SmokingHabit:       normalize.Field(normalize.FieldSmokingHabit, deref(profile.SmokingHabit)),
		DietaryHabits:      normalize.Field(normalize.FieldDietaryHabits, deref(profile.DietaryHabits)),
		PreferredCuisine:   normalize.Field(normalize.FieldPreferredCuisine, deref(profile.PreferredCuisine)),

		UserID: strconv.FormatUint(uint64(profile.UserID), 10),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func stepsValue(steps *int) float64 {
	if steps == nil {
		return 0
	}
	return float64(*steps)
}
