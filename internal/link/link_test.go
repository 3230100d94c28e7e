package link

import (
	"errors"
	"testing"

	"github.com/helixo/pinchlink/internal/gesture"
)

func TestLink_Send(t *testing.T) {
	t.Run("writes digit and newline", func(t *testing.T) {
		port := NewMockPort()
		l := NewLink(port)

		wrote, err := l.Send(gesture.Level(3))
		if err != nil {
			t.Fatalf("Send() error = %v", err)
		}
		if !wrote {
			t.Error("expected first send to reach the wire")
		}

		writes := port.Writes()
		if len(writes) != 1 {
			t.Fatalf("writes = %d, want 1", len(writes))
		}
		if string(writes[0]) != "3\n" {
			t.Errorf("payload = %q, want %q", writes[0], "3\n")
		}
	})

	t.Run("repeated level is debounced", func(t *testing.T) {
		port := NewMockPort()
		l := NewLink(port)

		l.Send(gesture.Level(3))
		wrote, err := l.Send(gesture.Level(3))
		if err != nil {
			t.Fatalf("Send() error = %v", err)
		}
		if wrote {
			t.Error("repeat of the same level should not write")
		}

		if got := len(port.Writes()); got != 1 {
			t.Errorf("writes = %d, want 1", got)
		}
	})

	t.Run("changed level writes again", func(t *testing.T) {
		port := NewMockPort()
		l := NewLink(port)

		l.Send(gesture.Level(3))
		wrote, err := l.Send(gesture.Level(4))
		if err != nil {
			t.Fatalf("Send() error = %v", err)
		}
		if !wrote {
			t.Error("changed level should reach the wire")
		}

		writes := port.Writes()
		if len(writes) != 2 {
			t.Fatalf("writes = %d, want 2", len(writes))
		}
		if string(writes[1]) != "4\n" {
			t.Errorf("second payload = %q, want %q", writes[1], "4\n")
		}
	})

	t.Run("level is not recorded on write failure", func(t *testing.T) {
		port := NewMockPort()
		l := NewLink(port)

		wireErr := errors.New("device unplugged")
		port.SetWriteError(wireErr)

		if _, err := l.Send(gesture.Level(2)); !errors.Is(err, wireErr) {
			t.Fatalf("Send() error = %v, want wrapped %v", err, wireErr)
		}

		// After the fault clears, the same level must still go out.
		port.SetWriteError(nil)
		wrote, err := l.Send(gesture.Level(2))
		if err != nil {
			t.Fatalf("Send() error = %v", err)
		}
		if !wrote {
			t.Error("level that never reached the wire should not be debounced")
		}
	})

	t.Run("send on closed link fails", func(t *testing.T) {
		port := NewMockPort()
		l := NewLink(port)
		l.Close()

		if _, err := l.Send(gesture.Level(1)); !errors.Is(err, ErrClosed) {
			t.Errorf("Send() error = %v, want ErrClosed", err)
		}
	})
}

func TestLink_Close(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		port := NewMockPort()
		l := NewLink(port)

		if err := l.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if err := l.Close(); err != nil {
			t.Fatalf("second Close() error = %v", err)
		}

		if got := port.CloseCount(); got != 1 {
			t.Errorf("port closed %d times, want 1", got)
		}
	})

	t.Run("safe when never opened", func(t *testing.T) {
		l := &Link{}
		if err := l.Close(); err != nil {
			t.Errorf("Close() on zero link error = %v", err)
		}
	})
}

func TestSelectPort(t *testing.T) {
	ports := []PortInfo{
		{Name: "COM2", Product: "USB Serial"},
		{Name: "COM10", Product: "Arduino Uno"},
	}

	t.Run("resolves by suffix", func(t *testing.T) {
		name, err := selectPort("2", ports, "COM")
		if err != nil {
			t.Fatalf("selectPort() error = %v", err)
		}
		if name != "COM2" {
			t.Errorf("name = %q, want COM2", name)
		}
	})

	t.Run("no match is ErrPortNotFound", func(t *testing.T) {
		if _, err := selectPort("9", ports, "COM"); !errors.Is(err, ErrPortNotFound) {
			t.Errorf("error = %v, want ErrPortNotFound", err)
		}
	})

	t.Run("multi digit suffix", func(t *testing.T) {
		name, err := selectPort("10", ports, "COM")
		if err != nil {
			t.Fatalf("selectPort() error = %v", err)
		}
		if name != "COM10" {
			t.Errorf("name = %q, want COM10", name)
		}
	})

	t.Run("empty port list", func(t *testing.T) {
		if _, err := selectPort("2", nil, "COM"); !errors.Is(err, ErrPortNotFound) {
			t.Errorf("error = %v, want ErrPortNotFound", err)
		}
	})

	t.Run("unix style prefix", func(t *testing.T) {
		unixPorts := []PortInfo{{Name: "/dev/ttyUSB0", Product: "CP2102"}}
		name, err := selectPort("USB0", unixPorts, "/dev/tty")
		if err != nil {
			t.Fatalf("selectPort() error = %v", err)
		}
		if name != "/dev/ttyUSB0" {
			t.Errorf("name = %q, want /dev/ttyUSB0", name)
		}
	})
}

func TestPortInfo_String(t *testing.T) {
	tests := []struct {
		info PortInfo
		want string
	}{
		{PortInfo{Name: "COM3", Product: "USB Serial Device"}, "COM3 - USB Serial Device"},
		{PortInfo{Name: "/dev/ttyS0"}, "/dev/ttyS0"},
	}

	for _, tt := range tests {
		if got := tt.info.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
