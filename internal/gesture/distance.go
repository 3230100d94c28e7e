package gesture

import (
	"image"
	"math"

	"github.com/helixo/pinchlink/internal/detector"
)

// TipDistance computes the planar Euclidean distance in pixels between the
// fingertips of a and b. The second return value is false when no hand was
// observed or either finger is unavailable.
func TipDistance(hand *detector.HandLandmarks, width, height int, a, b Finger) (float64, bool) {
	posA, okA := FingerPositions(hand, width, height, a)
	posB, okB := FingerPositions(hand, width, height, b)
	if !okA || !okB {
		return 0, false
	}

	return pointDistance(posA.Tip(), posB.Tip()), true
}

// TipLine returns both fingertip positions for drawing an overlay between
// them. The second return value follows the same availability contract as
// TipDistance.
func TipLine(hand *detector.HandLandmarks, width, height int, a, b Finger) ([2]image.Point, bool) {
	posA, okA := FingerPositions(hand, width, height, a)
	posB, okB := FingerPositions(hand, width, height, b)
	if !okA || !okB {
		return [2]image.Point{}, false
	}

	return [2]image.Point{posA.Tip(), posB.Tip()}, true
}

func pointDistance(a, b image.Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}
