package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"nutriplan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stubRecommendation = json.RawMessage(`{"Recommended_Meal_Plan":"Balanced","Recommended_Calories":2000,"Recommended_Protein":100,"Recommended_Carbs":250,"Recommended_Fats":70}`)

func TestPredictRecommendationSuccess(t *testing.T) {
	predictor := &stubPredictor{response: stubRecommendation}
	_, app := newTestServer(t, predictor)
	token := registerUser(t, app, "predictor", "predict@example.com", "pw123456")

	body := validProfileBody()
	body["smoking_habit"] = "Non-smoker"
	resp, _ := doJSON(t, app, http.MethodPost, "/api/health/profile", token, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, decoded := doJSON(t, app, http.MethodPost, "/api/predict/recommendation", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decoded["success"])

	rec, ok := decoded["prediction"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Balanced", rec["Recommended_Meal_Plan"])
	assert.Equal(t, float64(2000), rec["Recommended_Calories"])

	// The handler builds the payload from the stored profile, with
	// normalization applied and the caller's identity attached.
	require.NotNil(t, predictor.lastRequest)
	assert.Equal(t, float64(30), predictor.lastRequest.Age)
	assert.Equal(t, 167.64, predictor.lastRequest.Height)
	assert.Equal(t, "No", predictor.lastRequest.SmokingHabit)
	assert.NotEmpty(t, predictor.lastRequest.UserID)
}

func TestPredictRecommendationWithoutProfile(t *testing.T) {
	predictor := &stubPredictor{response: stubRecommendation}
	_, app := newTestServer(t, predictor)
	token := registerUser(t, app, "noprofile", "noprofile@example.com", "pw123456")

	resp, body := doJSON(t, app, http.MethodPost, "/api/predict/recommendation", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "No health data found", body["error"])
	assert.Nil(t, predictor.lastRequest, "no upstream call without a stored profile")
}

func TestPredictRecommendationUpstreamFailure(t *testing.T) {
	predictor := &stubPredictor{err: models.NewUpstreamError("Prediction service unreachable", assert.AnError)}
	_, app := newTestServer(t, predictor)
	token := registerUser(t, app, "failing", "failing@example.com", "pw123456")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/health/profile", token, validProfileBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/predict/recommendation", token, nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Prediction service unreachable", body["error"])

	// The stored profile is untouched by the failed call.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/health/profile", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPredictRecommendationRequiresAuth(t *testing.T) {
	_, app := newTestServer(t, &stubPredictor{})

	resp, body := doJSON(t, app, http.MethodPost, "/api/predict/recommendation", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Authorization required", body["error"])
}
