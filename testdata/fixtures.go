// Package testdata provides synthetic hand observations shared by
// integration and end-to-end tests.
package testdata

import (
	"github.com/helixo/pinchlink/internal/detector"
)

// PinchHand returns a single-hand observation whose thumb and index
// fingertips sit gapPx pixels apart horizontally when resolved against a
// width x height frame. The remaining landmarks form a loose palm cluster.
func PinchHand(gapPx, width, height int) detector.HandLandmarks {
	hand := detector.HandLandmarks{
		Handedness: "Right",
		Score:      0.97,
	}

	// Palm cluster so every finger resolves to sane positions.
	for i := 0; i < detector.NumLandmarks; i++ {
		hand.Points[i] = detector.Point3D{
			X: 0.30 + 0.005*float64(i),
			Y: 0.60,
		}
	}

	// Place the tracked fingertips at pixel-exact positions.
	hand.Points[detector.ThumbTip] = detector.Point3D{
		X: 100.0 / float64(width),
		Y: 200.0 / float64(height),
	}
	hand.Points[detector.IndexTip] = detector.Point3D{
		X: float64(100+gapPx) / float64(width),
		Y: 200.0 / float64(height),
	}

	return hand
}
