package app

import "gocv.io/x/gocv"

// QuitKey is the key that requests loop termination from the display window.
const QuitKey = 'q'

// Display shows processed frames to the operator and reports quit requests.
type Display interface {
	// Show renders one frame. quit is true when the operator pressed the
	// quit key since the last call.
	Show(frame *gocv.Mat) (quit bool, err error)

	Close() error
}

// Window is a Display backed by a gocv highgui window.
type Window struct {
	win *gocv.Window
}

// NewWindow creates a named display window.
func NewWindow(title string) *Window {
	return &Window{win: gocv.NewWindow(title)}
}

// Show renders the frame and polls for a key press for one millisecond.
func (w *Window) Show(frame *gocv.Mat) (bool, error) {
	w.win.IMShow(*frame)
	key := w.win.WaitKey(1)
	return key == QuitKey, nil
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.win.Close()
}

// NopDisplay discards frames and never requests quit. Used for headless runs
// and tests.
type NopDisplay struct{}

func (NopDisplay) Show(frame *gocv.Mat) (bool, error) { return false, nil }
func (NopDisplay) Close() error                       { return nil }
