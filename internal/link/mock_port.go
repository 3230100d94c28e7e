package link

import "sync"

// MockPort is an in-memory Port implementation for tests. It records every
// write and can be told to fail.
type MockPort struct {
	mu       sync.Mutex
	writes   [][]byte
	writeErr error
	closes   int
}

// NewMockPort creates a new MockPort.
func NewMockPort() *MockPort {
	return &MockPort{}
}

// SetWriteError makes subsequent writes fail with err.
func (p *MockPort) SetWriteError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writeErr = err
}

// Write records the payload unless an error is configured.
func (p *MockPort) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writeErr != nil {
		return 0, p.writeErr
	}

	buf := make([]byte, len(b))
	copy(buf, b)
	p.writes = append(p.writes, buf)
	return len(b), nil
}

// Close counts invocations so tests can assert idempotency.
func (p *MockPort) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closes++
	return nil
}

// Writes returns the recorded payloads in write order.
func (p *MockPort) Writes() [][]byte {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([][]byte, len(p.writes))
	copy(out, p.writes)
	return out
}

// CloseCount returns how many times Close was called.
func (p *MockPort) CloseCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closes
}
