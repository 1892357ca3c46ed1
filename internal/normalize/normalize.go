// Package normalize converts raw health-profile input into the canonical
// units and categorical tokens the recommendation pipeline works with.
// Every function here is pure and total: bad input degrades to a fallback
// or nil, never to an error.
package normalize

import (
	"math"
	"strconv"
	"strings"
)

// One foot is exactly 0.3048 meters. Heights are stored in feet at rest;
// this is the single conversion rule for every consumer.
const (
	feetToMeters = 0.3048
	feetToCm     = 30.48
)

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FeetToCm converts a height in feet to centimeters using pure linear
// scaling. A value like 5.5 means five and a half feet, not 5 ft 5 in.
func FeetToCm(feet float64) float64 {
	return Round2(feet * feetToCm)
}

// ComputeBMI returns weight/height_m^2 rounded to two decimals, or nil
// when either input is non-positive. Height is in feet, weight in kg.
func ComputeBMI(heightFeet, weightKg float64) *float64 {
	if heightFeet <= 0 || weightKg <= 0 {
		return nil
	}
	heightM := heightFeet * feetToMeters
	bmi := Round2(weightKg / (heightM * heightM))
	return &bmi
}

// Number coerces v to a float64. Nil, empty strings, and unparseable
// values all yield fallback.
func Number(v any, fallback float64) float64 {
	if p := NumberPtr(v); p != nil {
		return *p
	}
	return fallback
}

// NumberPtr coerces v to a float64 pointer, or nil when v is absent,
// empty, or not numeric.
func NumberPtr(v any) *float64 {
	switch n := v.(type) {
	case nil:
		return nil
	case float64:
		return &n
	case float32:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	case uint:
		f := float64(n)
		return &f
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &f
	case *float64:
		return n
	default:
		return nil
	}
}

// yesNo maps tokens the form vocabulary uses onto the yes/no vocabulary
// the prediction service was trained on.
var yesNo = map[string]string{
	"Non-smoker": "No",
	"Never":      "No",
}

// Category trims value and substitutes fallback for empty input. Tokens
// with a recognized yes/no synonym collapse to the canonical form;
// anything else passes through unchanged.
func Category(value, fallback string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return fallback
	}
	if canonical, ok := yesNo[s]; ok {
		return canonical
	}
	return s
}

// Categorical profile field names, matching the stored column names.
const (
	FieldGender             = "gender"
	FieldChronicDisease     = "chronic_disease"
	FieldGeneticRiskFactor  = "genetic_risk_factor"
	FieldAllergies          = "allergies"
	FieldFoodAversion       = "food_aversion"
	FieldExerciseFrequency  = "exercise_frequency"
	FieldAlcoholConsumption = "alcohol_consumption"
	FieldSmokingHabit       = "smoking_habit"
	FieldDietaryHabits      = "dietary_habits"
	FieldPreferredCuisine   = "preferred_cuisine"
)

type categoryRule struct {
	fallback string
	synonyms map[string]string
}

// categoryRules is the single defaulting table for categorical fields.
// Fallbacks match the fill values used when the upstream model was
// trained. Fields without a synonyms map keep their own vocabulary
// (e.g. exercise_frequency's "Never" is a real class, not a yes/no).
var categoryRules = map[string]categoryRule{
	FieldGender:             {fallback: "Male"},
	FieldChronicDisease:     {fallback: "No Disease", synonyms: yesNo},
	FieldGeneticRiskFactor:  {fallback: "No", synonyms: yesNo},
	FieldAllergies:          {fallback: "No", synonyms: yesNo},
	FieldFoodAversion:       {fallback: "No", synonyms: yesNo},
	FieldExerciseFrequency:  {fallback: "Never"},
	FieldAlcoholConsumption: {fallback: "No", synonyms: yesNo},
	FieldSmokingHabit:       {fallback: "No", synonyms: yesNo},
	FieldDietaryHabits:      {fallback: "Balanced"},
	FieldPreferredCuisine:   {fallback: "Indian"},
}

// Field normalizes a categorical value according to the defaulting table.
// Unknown field names fall back to the generic Category behavior with an
// empty-input default of "No".
func Field(name, value string) string {
	rule, ok := categoryRules[name]
	if !ok {
		return Category(value, "No")
	}
	s := strings.TrimSpace(value)
	if s == "" {
		return rule.fallback
	}
	if rule.synonyms != nil {
		if canonical, ok := rule.synonyms[s]; ok {
			return canonical
		}
	}
	return s
}

// FieldDefault returns the table default for a categorical field.
func FieldDefault(name string) string {
	if rule, ok := categoryRules[name]; ok {
		return rule.fallback
	}
	return "No"
}
