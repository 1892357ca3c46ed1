// Package prediction builds and sends requests to the external diet
// recommendation service.
package prediction

import (
	"fmt"
)

// Request is the exact payload contract of the external prediction
// service. Field names match the upstream model's schema (capitalized
// snake case, with userId as the one lower-case exception); this struct
// is the single definition of that contract.
//
// Height is in centimeters here; profiles store feet and the builder
// converts through the normalize package.
type Request struct {
	Age                    float64 `json:"Age"`
	Gender                 string  `json:"Gender"`
	Height                 float64 `json:"Height"`
	Weight                 float64 `json:"Weight"`
	BMI                    float64 `json:"BMI"`
	BloodPressureSystolic  float64 `json:"Blood_Pressure_Systolic"`
	BloodPressureDiastolic float64 `json:"Blood_Pressure_Diastolic"`
	CholesterolLevel       float64 `json:"Cholesterol_Level"`
	BloodSugarLevel        float64 `json:"Blood_Sugar_Level"`
	ChronicDisease         string  `json:"Chronic_Disease"`
	GeneticRiskFactor      string  `json:"Genetic_Risk_Factor"`
	Allergies              string  `json:"Allergies"`
	FoodAversions          string  `json:"Food_Aversions"`
	DailySteps             float64 `json:"Daily_Steps"`
	ExerciseFrequency      string  `json:"Exercise_Frequency"`
	SleepHours             float64 `json:"Sleep_Hours"`
	AlcoholConsumption     string  `json:"Alcohol_Consumption"`
	SmokingHabit           string  `json:"Smoking_Habit"`
	DietaryHabits          string  `json:"Dietary_Habits"`
	PreferredCuisine       string  `json:"Preferred_Cuisine"`
	UserID                 string  `json:"userId"`
}

// Validate checks the payload against the upstream contract before it is
// sent. A failure here means the builder produced a malformed request,
// which is a bug, not user error.
func (r *Request) Validate() error {
	if r.Age <= 0 {
		return fmt.Errorf("prediction request: Age must be positive, got %v", r.Age)
	}
	if r.Height <= 0 {
		return fmt.Errorf("prediction request: Height must be positive, got %v", r.Height)
	}
	if r.Weight <= 0 {
		return fmt.Errorf("prediction request: Weight must be positive, got %v", r.Weight)
	}
	for name, v := range map[string]string{
		"Gender":              r.Gender,
		"Chronic_Disease":     r.ChronicDisease,
		"Genetic_Risk_Factor": r.GeneticRiskFactor,
		"Allergies":           r.Allergies,
		"Food_Aversions":      r.FoodAversions,
		"Exercise_Frequency":  r.ExerciseFrequency,
		"Alcohol_Consumption": r.AlcoholConsumption,
		"Smoking_Habit":       r.SmokingHabit,
		"Dietary_Habits":      r.DietaryHabits,
		"Preferred_Cuisine":   r.PreferredCuisine,
		"userId":              r.UserID,
	} {
		if v == "" {
			return fmt.Errorf("prediction request: %s must not be empty", name)
		}
	}
	return nil
}

// Recommendation mirrors the documented upstream response fields. The API
// relays the raw body verbatim; this type exists for tests and for
// consumers that want a typed view.
type Recommendation struct {
	RecommendedMealPlan string  `json:"Recommended_Meal_Plan"`
	RecommendedCalories float64 `json:"Recommended_Calories"`
	RecommendedProtein  float64 `json:"Recommended_Protein"`
	RecommendedCarbs    float64 `json:"Recommended_Carbs"`
	RecommendedFats     float64 `json:"Recommended_Fats"`
}
