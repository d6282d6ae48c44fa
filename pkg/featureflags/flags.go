// ABOUTME: Feature flag management for optional search behaviour
// ABOUTME: Flags are read from FEATURE_* environment variables or fixed at construction

package featureflags

import (
	"os"
	"strings"
	"sync"
)

// FeatureFlag represents a single feature flag
type FeatureFlag string

// Defined feature flags
const (
	// ThumbnailEnrichment fills missing result images from the product page's og:image
	ThumbnailEnrichment FeatureFlag = "thumbnail_enrichment"

	// StrictHostMatch matches shopping domains against the link hostname
	// instead of anywhere in the link
	StrictHostMatch FeatureFlag = "strict_host_match"
)

// Known lists every defined flag
var Known = []FeatureFlag{ThumbnailEnrichment, StrictHostMatch}

// Manager defines the interface for feature flag management
type Manager interface {
	// IsEnabled checks if a feature flag is enabled
	IsEnabled(flag FeatureFlag) bool

	// SetEnabled sets a feature flag's state (for testing)
	SetEnabled(flag FeatureFlag, enabled bool)

	// GetAllFlags returns the state of all known flags
	GetAllFlags() map[FeatureFlag]bool
}

// EnvManager implements Manager using environment variables
type EnvManager struct {
	mu        sync.RWMutex
	overrides map[FeatureFlag]bool
	prefix    string
}

// NewEnvManager creates a new environment-based feature flag manager
func NewEnvManager(prefix string) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	return &EnvManager{
		overrides: make(map[FeatureFlag]bool),
		prefix:    prefix,
	}
}

// IsEnabled checks if a feature flag is enabled. Overrides win over the environment.
func (m *EnvManager) IsEnabled(flag FeatureFlag) bool {
	m.mu.RLock()
	enabled, ok := m.overrides[flag]
	m.mu.RUnlock()
	if ok {
		return enabled
	}

	value := strings.ToLower(strings.TrimSpace(os.Getenv(m.prefix + strings.ToUpper(string(flag)))))
	return value == "true" || value == "1" || value == "enabled"
}

// SetEnabled sets a feature flag's state
func (m *EnvManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides[flag] = enabled
}

// GetAllFlags returns the state of all known flags
func (m *EnvManager) GetAllFlags() map[FeatureFlag]bool {
	flags := make(map[FeatureFlag]bool, len(Known))
	for _, f := range Known {
		flags[f] = m.IsEnabled(f)
	}
	return flags
}

// StaticManager implements Manager with static configuration
type StaticManager struct {
	flags map[FeatureFlag]bool
	mu    sync.RWMutex
}

// NewStaticManager creates a manager with predefined flag states
func NewStaticManager(flags map[FeatureFlag]bool) *StaticManager {
	copied := make(map[FeatureFlag]bool, len(flags))
	for k, v := range flags {
		copied[k] = v
	}
	return &StaticManager{flags: copied}
}

// IsEnabled checks if a feature flag is enabled
func (m *StaticManager) IsEnabled(flag FeatureFlag) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags[flag]
}

// SetEnabled sets a feature flag's state
func (m *StaticManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[flag] = enabled
}

// GetAllFlags returns the state of all known flags
func (m *StaticManager) GetAllFlags() map[FeatureFlag]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[FeatureFlag]bool, len(Known))
	for _, f := range Known {
		result[f] = m.flags[f]
	}
	return result
}
