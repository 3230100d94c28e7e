package gesture

import "github.com/helixo/pinchlink/internal/detector"

// ExtendedCount counts fingers whose tip x-coordinate exceeds the
// x-coordinate of the landmark immediately before it. The thumb uses the same
// x-axis rule as the other fingers. The second return value is false when no
// hand was observed, so a count of zero always means "hand visible, no finger
// extended".
func ExtendedCount(hand *detector.HandLandmarks, width, height int) (int, bool) {
	if hand == nil {
		return 0, false
	}

	count := 0
	for _, positions := range AllPositions(hand, width, height) {
		if positions == nil {
			continue
		}
		n := len(positions)
		if positions[n-1].X > positions[n-2].X {
			count++
		}
	}
	return count, true
}
