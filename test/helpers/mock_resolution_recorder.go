package helpers

import (
	"sync"
	"time"

	"github.com/andrescamacho/craftchain-go/internal/domain/crafting"
)

// RecordedResolution is one call captured by MockResolutionRecorder
type RecordedResolution struct {
	Group           string
	TotalCrafts     int
	SkipCalculation bool
}

// MockResolutionRecorder captures resolutions for assertions
type MockResolutionRecorder struct {
	mu          sync.Mutex
	Resolutions []RecordedResolution
	Failures    map[string]string
}

// NewMockResolutionRecorder creates an empty recorder
func NewMockResolutionRecorder() *MockResolutionRecorder {
	return &MockResolutionRecorder{
		Failures: make(map[string]string),
	}
}

// RecordResolution captures a finished resolution
func (m *MockResolutionRecorder) RecordResolution(group string, duration time.Duration, resolution *crafting.Resolution, skipCalculation bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Resolutions = append(m.Resolutions, RecordedResolution{
		Group:           group,
		TotalCrafts:     resolution.TotalCrafts(),
		SkipCalculation: skipCalculation,
	})
}

// RecordFailure captures a failed resolution
func (m *MockResolutionRecorder) RecordFailure(group string, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Failures[group] = reason
}
