package database

import (
	"testing"

	"nutriplan/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPersistentModels_IncludesHealthProfile(t *testing.T) {
	found := false
	for _, model := range PersistentModels() {
		if _, ok := model.(*models.HealthProfile); ok {
			found = true
			break
		}
	}
	require.True(t, found, "PersistentModels should include HealthProfile")
}
