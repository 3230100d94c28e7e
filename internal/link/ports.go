package link

import (
	"fmt"
	"runtime"
	"strings"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// PortInfo describes one enumerated serial port.
type PortInfo struct {
	Name    string
	Product string // USB product string, empty when unknown
}

// String renders the descriptor the way it is shown to the operator,
// e.g. "COM3 - USB Serial Device".
func (p PortInfo) String() string {
	if p.Product == "" {
		return p.Name
	}
	return p.Name + " - " + p.Product
}

// ListPorts enumerates the serial ports present on the system, with USB
// product detail where the platform provides it. Enumeration has no side
// effects on the ports themselves.
func ListPorts() ([]PortInfo, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err == nil {
		ports := make([]PortInfo, len(details))
		for i, d := range details {
			ports[i] = PortInfo{Name: d.Name}
			if d.IsUSB {
				ports[i].Product = d.Product
			}
		}
		return ports, nil
	}

	// Some platforms lack detailed enumeration; fall back to bare names.
	names, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}

	ports := make([]PortInfo, len(names))
	for i, name := range names {
		ports[i] = PortInfo{Name: name}
	}
	return ports, nil
}

// SelectPort resolves operator input to a port name. The input is a suffix of
// the platform port-naming convention: "3" selects COM3 on Windows, "USB0"
// selects /dev/ttyUSB0 elsewhere. A descriptor matches when its string form
// starts with the assembled name. Returns ErrPortNotFound when nothing
// matches; the caller treats that as fatal for the run.
func SelectPort(userInput string, ports []PortInfo) (string, error) {
	return selectPort(userInput, ports, portPrefix())
}

func selectPort(userInput string, ports []PortInfo, prefix string) (string, error) {
	name := prefix + userInput
	for _, p := range ports {
		if strings.HasPrefix(p.String(), name) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrPortNotFound, name)
}

func portPrefix() string {
	if runtime.GOOS == "windows" {
		return "COM"
	}
	return "/dev/tty"
}
