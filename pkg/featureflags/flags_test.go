package featureflags

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvManager_DisabledByDefault(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")

	assert.False(t, manager.IsEnabled(ThumbnailEnrichment))
	assert.False(t, manager.IsEnabled(StrictHostMatch))
}

func TestEnvManager_EnabledWhenFlagSet(t *testing.T) {
	t.Setenv("TEST_FEATURE_STRICT_HOST_MATCH", "true")

	manager := NewEnvManager("TEST_FEATURE_")

	assert.True(t, manager.IsEnabled(StrictHostMatch))
	assert.False(t, manager.IsEnabled(ThumbnailEnrichment))
}

func TestEnvManager_DefaultPrefix(t *testing.T) {
	t.Setenv("FEATURE_THUMBNAIL_ENRICHMENT", "1")

	assert.True(t, NewEnvManager("").IsEnabled(ThumbnailEnrichment))
}

func TestEnvManager_MultipleValues(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"true lowercase", "true", true},
		{"TRUE uppercase", "TRUE", true},
		{"1 numeric", "1", true},
		{"enabled", "enabled", true},
		{"ENABLED", "ENABLED", true},
		{"padded", " true ", true},
		{"false", "false", false},
		{"0", "0", false},
		{"empty", "", false},
		{"other", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_FLAG", tt.value)

			manager := NewEnvManager("TEST_")

			assert.Equal(t, tt.expected, manager.IsEnabled("FLAG"))
		})
	}
}

func TestEnvManager_OverrideTakesPrecedence(t *testing.T) {
	t.Setenv("TEST_FEATURE_THUMBNAIL_ENRICHMENT", "true")

	manager := NewEnvManager("TEST_FEATURE_")
	assert.True(t, manager.IsEnabled(ThumbnailEnrichment))

	manager.SetEnabled(ThumbnailEnrichment, false)
	assert.False(t, manager.IsEnabled(ThumbnailEnrichment))
}

func TestEnvManager_GetAllFlags(t *testing.T) {
	t.Setenv("TEST_FEATURE_STRICT_HOST_MATCH", "enabled")

	manager := NewEnvManager("TEST_FEATURE_")

	assert.Equal(t, map[FeatureFlag]bool{
		ThumbnailEnrichment: false,
		StrictHostMatch:     true,
	}, manager.GetAllFlags())
}

func TestStaticManager(t *testing.T) {
	initial := map[FeatureFlag]bool{ThumbnailEnrichment: true}
	manager := NewStaticManager(initial)

	assert.True(t, manager.IsEnabled(ThumbnailEnrichment))
	assert.False(t, manager.IsEnabled(StrictHostMatch))

	// The manager keeps its own copy
	initial[StrictHostMatch] = true
	assert.False(t, manager.IsEnabled(StrictHostMatch))

	manager.SetEnabled(StrictHostMatch, true)
	assert.Equal(t, map[FeatureFlag]bool{
		ThumbnailEnrichment: true,
		StrictHostMatch:     true,
	}, manager.GetAllFlags())
}

func TestConcurrentAccess(t *testing.T) {
	manager := NewStaticManager(nil)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				manager.SetEnabled(StrictHostMatch, j%2 == 0)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = manager.IsEnabled(StrictHostMatch)
			}
		}()
	}

	wg.Wait()
}

func TestFeatureFlagNames(t *testing.T) {
	assert.Equal(t, FeatureFlag("thumbnail_enrichment"), ThumbnailEnrichment)
	assert.Equal(t, FeatureFlag("strict_host_match"), StrictHostMatch)
}
