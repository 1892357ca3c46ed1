package server

import (
	"encoding/json"

	"nutriplan/internal/cache"
	"nutriplan/internal/models"
	"nutriplan/internal/observability"
	"nutriplan/internal/prediction"

	"github.com/gofiber/fiber/v2"
)

// PredictRecommendation handles POST /api/predict/recommendation. It
// loads the caller's stored profile, builds the normalized upstream
// payload, and relays the prediction service's response verbatim. A
// failed upstream call never touches stored state.
func (s *Server) PredictRecommendation(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	ctx := c.UserContext()

	profile, err := s.profileRepo.FindByUser(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if profile == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewProfileNotFoundError())
	}

	cacheKey := cache.PredictionKey(userID, profile.UpdatedAt.UnixNano())
	var cached json.RawMessage
	if found, _ := cache.GetJSON(ctx, cacheKey, &cached); found {
		observability.PredictionCacheEvents.WithLabelValues("hit").Inc()
		return c.JSON(fiber.Map{
			"success":    true,
			"prediction": cached,
		})
	}
	observability.PredictionCacheEvents.WithLabelValues("miss").Inc()

	req := prediction.BuildRequest(profile)
	result, err := s.predictor.Recommend(ctx, req)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	// Best-effort; a cache write failure never fails the request.
	_ = cache.SetJSON(ctx, cacheKey, result, cache.PredictionTTL)

	return c.JSON(fiber.Map{
		"success":    true,
		"prediction": result,
	})
}
