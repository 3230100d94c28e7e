package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface. It can
// return a fixed result for every frame or play back a scripted sequence of
// per-frame results.
type MockDetector struct {
	hands    []HandLandmarks
	sequence [][]HandLandmarks
	cursor   int
	err      error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands returned by every subsequent Detect call.
// Clears any scripted sequence.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
	m.sequence = nil
	m.cursor = 0
}

// SetSequence sets a scripted sequence of per-frame detection results.
// Each Detect call consumes one entry; after the sequence is exhausted,
// Detect reports no hands.
func (m *MockDetector) SetSequence(frames [][]HandLandmarks) {
	m.sequence = frames
	m.cursor = 0
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands, the next scripted frame, or the
// configured error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.sequence != nil {
		if m.cursor >= len(m.sequence) {
			return nil, nil
		}
		hands := m.sequence[m.cursor]
		m.cursor++
		return hands, nil
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}
