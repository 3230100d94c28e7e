package detector

import "gocv.io/x/gocv"

// Detector defines the interface for hand landmark providers.
type Detector interface {
	// Detect analyzes a video frame and returns detected hand landmarks.
	// Returns an empty slice if no hands are detected.
	Detect(frame *gocv.Mat) ([]HandLandmarks, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds immutable configuration for hand detection. Pass it at
// construction; implementations must not mutate it afterwards.
type Config struct {
	// StaticImageMode disables landmark tracking between frames when true.
	StaticImageMode bool

	// MaxHands is the maximum number of hands to detect.
	MaxHands int

	// ModelComplexity selects the landmark model (0 or 1, higher is slower
	// but more accurate).
	ModelComplexity int

	// MinDetectionConf is the minimum detection confidence threshold (0.0-1.0).
	MinDetectionConf float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns the configuration used for serial control runs:
// a single tracked hand with high-confidence thresholds.
func DefaultConfig() Config {
	return Config{
		StaticImageMode:  false,
		MaxHands:         1,
		ModelComplexity:  1,
		MinDetectionConf: 0.9,
		MinTrackingConf:  0.9,
	}
}
