package gesture

import (
	"testing"

	"github.com/helixo/pinchlink/internal/detector"
)

// curledHand returns a hand where no finger satisfies the extension rule:
// within each finger, landmark x decreases toward the tip.
func curledHand() *detector.HandLandmarks {
	hand := &detector.HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}
	for f := Thumb; f <= Pinky; f++ {
		for i, idx := range f.LandmarkIndices() {
			hand.Points[idx] = detector.Point3D{
				X: 0.5 - 0.02*float64(i),
				Y: 0.5,
			}
		}
	}
	return hand
}

// extend modifies the hand so the given fingers satisfy the extension rule
// by moving each tip past the landmark before it.
func extend(hand *detector.HandLandmarks, fingers ...Finger) {
	for _, f := range fingers {
		indices := f.LandmarkIndices()
		tip := indices[len(indices)-1]
		prev := indices[len(indices)-2]
		hand.Points[tip].X = hand.Points[prev].X + 0.05
	}
}

func TestExtendedCount(t *testing.T) {
	t.Run("no hand is distinct from zero extended", func(t *testing.T) {
		count, ok := ExtendedCount(nil, 640, 480)
		if ok {
			t.Error("expected ok=false for nil hand")
		}
		if count != 0 {
			t.Errorf("count = %d, want 0", count)
		}
	})

	t.Run("curled hand counts zero", func(t *testing.T) {
		count, ok := ExtendedCount(curledHand(), 640, 480)
		if !ok {
			t.Fatal("expected ok=true for visible hand")
		}
		if count != 0 {
			t.Errorf("count = %d, want 0", count)
		}
	})

	t.Run("index and middle extended counts two", func(t *testing.T) {
		hand := curledHand()
		extend(hand, Index, Middle)

		count, ok := ExtendedCount(hand, 640, 480)
		if !ok {
			t.Fatal("expected ok=true")
		}
		if count != 2 {
			t.Errorf("count = %d, want 2", count)
		}
	})

	t.Run("thumb uses the same x rule", func(t *testing.T) {
		hand := curledHand()
		extend(hand, Thumb)

		count, ok := ExtendedCount(hand, 640, 480)
		if !ok {
			t.Fatal("expected ok=true")
		}
		if count != 1 {
			t.Errorf("count = %d, want 1", count)
		}
	})

	t.Run("all five extended counts five", func(t *testing.T) {
		hand := curledHand()
		extend(hand, Thumb, Index, Middle, Ring, Pinky)

		count, ok := ExtendedCount(hand, 640, 480)
		if !ok {
			t.Fatal("expected ok=true")
		}
		if count != 5 {
			t.Errorf("count = %d, want 5", count)
		}
	})

	t.Run("tip equal to previous landmark does not count", func(t *testing.T) {
		hand := curledHand()
		indices := Index.LandmarkIndices()
		tip := indices[len(indices)-1]
		prev := indices[len(indices)-2]
		hand.Points[tip].X = hand.Points[prev].X

		count, _ := ExtendedCount(hand, 640, 480)
		if count != 0 {
			t.Errorf("count = %d, want 0 for tip.x == previous.x", count)
		}
	})
}
