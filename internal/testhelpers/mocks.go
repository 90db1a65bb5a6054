package testhelpers

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockRecorder is a mock implementation of metrics.Recorder
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordProviderCall(provider, outcome string, duration time.Duration) {
	m.Called(provider, outcome, duration)
}

func (m *MockRecorder) RecordBookmarkToggle(kind, action string) {
	m.Called(kind, action)
}
