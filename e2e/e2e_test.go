package e2e

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gocv.io/x/gocv"

	"github.com/helixo/pinchlink/internal/app"
	"github.com/helixo/pinchlink/internal/capture"
	"github.com/helixo/pinchlink/internal/detector"
	"github.com/helixo/pinchlink/internal/link"
	"github.com/helixo/pinchlink/internal/store"
	"github.com/helixo/pinchlink/testdata"
)

func runPipeline(t *testing.T, frames int, script [][]detector.HandLandmarks) *link.MockPort {
	t.Helper()

	mat := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	t.Cleanup(func() { mat.Close() })
	cam := capture.NewMockCamera([]*gocv.Mat{&mat}, true)

	det := detector.NewMockDetector()
	det.SetSequence(script)

	port := link.NewMockPort()
	serialLink := link.NewLink(port)
	t.Cleanup(func() { serialLink.Close() })

	application := app.New(app.Config{
		Camera:   cam,
		Detector: det,
		Link:     serialLink,
		Display:  app.NewMockDisplay(frames),
		FPS:      200,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	return port
}

func TestE2E_DistanceSequenceToSerial(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	// Fingertip gaps of 10, 60 and 205 pixels quantize to levels 0, 1 and 5.
	port := runPipeline(t, 4, [][]detector.HandLandmarks{
		{testdata.PinchHand(10, 640, 480)},
		{testdata.PinchHand(60, 640, 480)},
		{testdata.PinchHand(205, 640, 480)},
		{}, // hand leaves the frame
	})

	writes := port.Writes()
	want := []string{"0\n", "1\n", "5\n"}
	if len(writes) != len(want) {
		t.Fatalf("wire writes = %d, want exactly %d", len(writes), len(want))
	}
	for i := range want {
		if string(writes[i]) != want[i] {
			t.Errorf("write %d = %q, want %q", i, writes[i], want[i])
		}
	}
}

func TestE2E_UnchangedLevelIsTransmittedOnce(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	steady := testdata.PinchHand(100, 640, 480)
	port := runPipeline(t, 5, [][]detector.HandLandmarks{
		{steady}, {steady}, {steady}, {steady}, {steady},
	})

	if got := len(port.Writes()); got != 1 {
		t.Errorf("wire writes = %d, want 1 for a steady gesture", got)
	}
}

func TestE2E_SettingsSurviveRestart(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	dbPath := filepath.Join(t.TempDir(), "pinchlink.db")

	s, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	s.Settings().SetLastPort("COM7")
	s.Settings().SetFingerPair("thumb", "middle")
	s.Close()

	s, err = store.New(dbPath)
	if err != nil {
		t.Fatalf("store.New() reopen error = %v", err)
	}
	defer s.Close()

	port, err := s.Settings().LastPort()
	if err != nil {
		t.Fatalf("LastPort() error = %v", err)
	}
	if port != "COM7" {
		t.Errorf("LastPort() = %q, want COM7", port)
	}

	a, b, err := s.Settings().FingerPair()
	if err != nil {
		t.Fatalf("FingerPair() error = %v", err)
	}
	if a != "thumb" || b != "middle" {
		t.Errorf("FingerPair() = %q,%q, want thumb,middle", a, b)
	}
}
