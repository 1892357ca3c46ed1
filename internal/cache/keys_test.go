package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredictionKeyVersioning(t *testing.T) {
	assert.Equal(t, "prediction:7:1700000000000000000", PredictionKey(7, 1700000000000000000))

	// A profile update produces a different key; stale entries are
	// simply never read again.
	assert.NotEqual(t, PredictionKey(7, 1), PredictionKey(7, 2))
	assert.NotEqual(t, PredictionKey(7, 1), PredictionKey(8, 1))
}
