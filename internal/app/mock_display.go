package app

import "gocv.io/x/gocv"

// MockDisplay counts shown frames and can simulate a quit key press after a
// fixed number of frames.
type MockDisplay struct {
	shown     int
	quitAfter int // 0 means never quit
	err       error
}

// NewMockDisplay creates a MockDisplay that requests quit after quitAfter
// frames, or never when quitAfter is zero.
func NewMockDisplay(quitAfter int) *MockDisplay {
	return &MockDisplay{quitAfter: quitAfter}
}

// SetError makes subsequent Show calls fail with err.
func (d *MockDisplay) SetError(err error) {
	d.err = err
}

func (d *MockDisplay) Show(frame *gocv.Mat) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	d.shown++
	return d.quitAfter > 0 && d.shown >= d.quitAfter, nil
}

func (d *MockDisplay) Close() error {
	return nil
}

// Shown returns how many frames were displayed.
func (d *MockDisplay) Shown() int {
	return d.shown
}
