package cache

import (
	"fmt"
	"time"
)

const predictionKeyPrefix = "prediction:%d:%d"

// PredictionTTL bounds how long a recommendation is reused; the key
// carries the profile version, so a resubmitted form always misses.
const PredictionTTL = time.Hour

// PredictionKey identifies a cached recommendation for one user at one
// profile version. profileVersion is the profile's update timestamp in
// nanoseconds.
func PredictionKey(userID uint, profileVersion int64) string {
	return fmt.Sprintf(predictionKeyPrefix, userID, profileVersion)
}
