// Package gesture provides the finger geometry pipeline: named finger landmark
// subsets, pixel-space positions, extension counting, and the mapping from
// inter-finger distance to the discrete control scale.
package gesture

import (
	"fmt"
	"image"
	"math"

	"github.com/helixo/pinchlink/internal/detector"
)

// Finger identifies one of the five fingers of a hand.
type Finger int

const (
	Thumb Finger = iota
	Index
	Middle
	Ring
	Pinky

	// NumFingers is the number of fingers on a hand.
	NumFingers = 5
)

var fingerNames = [NumFingers]string{"thumb", "index", "middle", "ring", "pinky"}

// fingerLandmarks maps each finger to its fixed, non-overlapping landmark
// index subset, in anatomical order so the last index is always the fingertip.
var fingerLandmarks = [NumFingers][]int{
	Thumb:  {detector.ThumbMCP, detector.ThumbIP, detector.ThumbTip},
	Index:  {detector.IndexMCP, detector.IndexPIP, detector.IndexDIP, detector.IndexTip},
	Middle: {detector.MiddleMCP, detector.MiddlePIP, detector.MiddleDIP, detector.MiddleTip},
	Ring:   {detector.RingMCP, detector.RingPIP, detector.RingDIP, detector.RingTip},
	Pinky:  {detector.PinkyMCP, detector.PinkyPIP, detector.PinkyDIP, detector.PinkyTip},
}

// Valid reports whether f names one of the five fingers.
func (f Finger) Valid() bool {
	return f >= Thumb && f <= Pinky
}

// String returns the lowercase finger name, or "invalid" for out-of-range
// values.
func (f Finger) String() string {
	if !f.Valid() {
		return "invalid"
	}
	return fingerNames[f]
}

// LandmarkIndices returns a copy of the finger's landmark index subset.
// Returns nil for an invalid finger.
func (f Finger) LandmarkIndices() []int {
	if !f.Valid() {
		return nil
	}
	indices := make([]int, len(fingerLandmarks[f]))
	copy(indices, fingerLandmarks[f])
	return indices
}

// ParseFinger converts a finger name such as "thumb" or "index" to a Finger.
func ParseFinger(s string) (Finger, error) {
	for i, name := range fingerNames {
		if s == name {
			return Finger(i), nil
		}
	}
	return 0, fmt.Errorf("unknown finger %q", s)
}

// Positions is the ordered sequence of absolute pixel coordinates for one
// finger's landmarks. The last element is the fingertip.
type Positions []image.Point

// Tip returns the fingertip position (the last element).
func (p Positions) Tip() image.Point {
	return p[len(p)-1]
}

// FingerPositions resolves the absolute pixel positions of one finger's
// landmarks against the given frame dimensions. The second return value is
// false when no hand was observed or the finger is invalid; partial results
// are never produced.
func FingerPositions(hand *detector.HandLandmarks, width, height int, f Finger) (Positions, bool) {
	if hand == nil || !f.Valid() {
		return nil, false
	}

	indices := fingerLandmarks[f]
	positions := make(Positions, len(indices))
	for i, idx := range indices {
		positions[i] = toPixel(hand.Points[idx], width, height)
	}
	return positions, true
}

// AllPositions resolves every finger in fixed order thumb, index, middle,
// ring, pinky. An unavailable finger yields a nil element, never a failure.
func AllPositions(hand *detector.HandLandmarks, width, height int) [NumFingers]Positions {
	var all [NumFingers]Positions
	for f := Thumb; f <= Pinky; f++ {
		if positions, ok := FingerPositions(hand, width, height, f); ok {
			all[f] = positions
		}
	}
	return all
}

// toPixel converts a normalized landmark to absolute pixel coordinates using
// the actual frame dimensions. Frame size may vary between frames, so the
// dimensions are never cached.
func toPixel(pt detector.Point3D, width, height int) image.Point {
	return image.Point{
		X: int(math.Round(pt.X * float64(width))),
		Y: int(math.Round(pt.Y * float64(height))),
	}
}
