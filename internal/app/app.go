// Package app wires the capture, detection, gesture and serial link stages
// into the per-frame control loop.
package app

import (
	"github.com/helixo/pinchlink/internal/capture"
	"github.com/helixo/pinchlink/internal/detector"
	"github.com/helixo/pinchlink/internal/gesture"
)

// Sender is the transmission surface the loop needs from the serial link.
// The implementation decides whether a level actually reaches the wire.
type Sender interface {
	Send(level gesture.Level) (wrote bool, err error)
}

// Config holds the collaborators and tuning for a control loop run.
type Config struct {
	Camera   capture.Camera
	Detector detector.Detector
	Link     Sender
	Display  Display

	// FingerA and FingerB are the tracked fingertip pair.
	FingerA gesture.Finger
	FingerB gesture.Finger

	// MinDistance and MaxDistance bound the pixel distance mapped onto the
	// level scale. Zero values select the package defaults.
	MinDistance float64
	MaxDistance float64

	// FPS is the target iteration rate. Zero selects capture.DefaultFPS.
	FPS int
}

// App runs the frame-to-serial control loop.
type App struct {
	config Config
}

// New creates an App, filling unset configuration with defaults: thumb/index
// tracking, the 15-200 pixel distance window, 24 iterations per second, and a
// no-op display.
func New(config Config) *App {
	if config.FingerA == config.FingerB {
		config.FingerA = gesture.Thumb
		config.FingerB = gesture.Index
	}
	if config.MinDistance <= 0 {
		config.MinDistance = gesture.DefaultMinDistance
	}
	if config.MaxDistance <= config.MinDistance {
		config.MaxDistance = gesture.DefaultMaxDistance
	}
	if config.FPS <= 0 {
		config.FPS = capture.DefaultFPS
	}
	if config.Display == nil {
		config.Display = NopDisplay{}
	}

	return &App{config: config}
}
