// Package link owns the serial side of the system: port discovery, selection
// from operator input, the 9600 baud connection, and the debounced level
// transmission protocol.
package link

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"go.bug.st/serial"

	"github.com/helixo/pinchlink/internal/gesture"
)

// DefaultBaudRate is the wire speed of the target device (8N1 implied).
const DefaultBaudRate = 9600

var (
	// ErrPortNotFound is returned when operator input matches no enumerated port.
	ErrPortNotFound = errors.New("serial port not found")

	// ErrClosed is returned when sending on a closed link.
	ErrClosed = errors.New("serial link is closed")
)

// Port is the minimal serial device surface the link needs. A serial.Port
// satisfies it; tests substitute an in-memory implementation.
type Port interface {
	io.Writer
	io.Closer
}

// Link manages one open serial connection and suppresses retransmission of
// unchanged levels. A level reaches the wire if and only if it differs from
// the last level successfully written.
type Link struct {
	mu       sync.Mutex
	port     Port
	lastSent gesture.Level
	hasSent  bool
	closed   bool
}

// Open opens the named port at the given baud rate and returns a streaming
// link. A baud of zero or less selects DefaultBaudRate.
func Open(name string, baud int) (*Link, error) {
	if baud <= 0 {
		baud = DefaultBaudRate
	}

	port, err := serial.Open(name, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	return NewLink(port), nil
}

// NewLink wraps an already-open port.
func NewLink(port Port) *Link {
	return &Link{port: port}
}

// Send transmits the level as its ASCII decimal digit followed by a newline.
// A repeat of the last transmitted level is suppressed without touching the
// wire. The bool result reports whether a write actually happened. A write
// failure leaves the link unusable; the device needs operator intervention,
// so there is no retry.
func (l *Link) Send(level gesture.Level) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || l.port == nil {
		return false, ErrClosed
	}

	if l.hasSent && level == l.lastSent {
		return false, nil
	}

	if _, err := l.port.Write([]byte{level.Digit(), '\n'}); err != nil {
		return false, fmt.Errorf("write level %s: %w", level, err)
	}

	l.lastSent = level
	l.hasSent = true
	return true, nil
}

// Close releases the port. It is idempotent and safe on a link that was
// never opened.
func (l *Link) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || l.port == nil {
		l.closed = true
		return nil
	}

	l.closed = true
	return l.port.Close()
}
