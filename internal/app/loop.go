package app

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/helixo/pinchlink/internal/detector"
	"github.com/helixo/pinchlink/internal/gesture"
)

// Overlay style for the fingertip line.
var lineColor = color.RGBA{G: 255}

const lineThickness = 5

// noCount marks the "no hand observed" state for extension logging, distinct
// from a visible hand with zero fingers extended.
const noCount = -1

// Run executes the control loop until the quit key is pressed, the context is
// cancelled, a frame read fails, or the link reports a write failure. The
// camera is opened on entry and closed on every exit path; the link and
// display are owned by the caller.
func (a *App) Run(ctx context.Context) error {
	if err := a.config.Camera.Open(); err != nil {
		return fmt.Errorf("open camera: %w", err)
	}
	defer a.config.Camera.Close()

	interval := time.Second / time.Duration(a.config.FPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastCount := noCount

	for {
		select {
		case <-ctx.Done():
			log.Println("Interrupted, shutting down")
			return nil
		case <-ticker.C:
			quit, err := a.step(&lastCount)
			if err != nil {
				return err
			}
			if quit {
				log.Println("Quit requested")
				return nil
			}
		}
	}
}

// step processes one frame: detect, measure, transmit on change, display.
// A frame with no hand or no resolvable distance transmits nothing.
func (a *App) step(lastCount *int) (bool, error) {
	frame, err := a.config.Camera.ReadFrame()
	if err != nil {
		return false, fmt.Errorf("read frame: %w", err)
	}
	defer frame.Close()

	hands, err := a.config.Detector.Detect(frame)
	if err != nil {
		log.Printf("Detection error: %v", err)
		return a.config.Display.Show(frame)
	}

	// First detected hand only.
	var hand *detector.HandLandmarks
	if len(hands) > 0 {
		hand = &hands[0]
	}

	width, height := frame.Cols(), frame.Rows()

	if count, ok := gesture.ExtendedCount(hand, width, height); ok {
		if count != *lastCount {
			log.Printf("Fingers extended: %d", count)
			*lastCount = count
		}
	} else {
		*lastCount = noCount
	}

	if dist, ok := gesture.TipDistance(hand, width, height, a.config.FingerA, a.config.FingerB); ok {
		level := gesture.LevelForDistance(dist, a.config.MinDistance, a.config.MaxDistance)

		wrote, err := a.config.Link.Send(level)
		if err != nil {
			return false, fmt.Errorf("send level: %w", err)
		}
		if wrote {
			log.Printf("Sent: %d (%s)", level, level)
		}

		if line, ok := gesture.TipLine(hand, width, height, a.config.FingerA, a.config.FingerB); ok {
			gocv.Line(frame, line[0], line[1], lineColor, lineThickness)
		}
	}

	return a.config.Display.Show(frame)
}
