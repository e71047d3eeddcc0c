package transport

import (
	"fmt"

	"go.bug.st/serial"
)

// Defaults for the headless target. The UART runs at 115200 8N1.
const (
	DefaultSerialPort = "/dev/ttyAMA0"
	DefaultBaudRate   = 115200
)

// Serial is the headless variant: an exclusively-owned UART handle.
// Reads block until at least one byte arrives, with no inter-byte
// timeout, which keeps the one-byte-at-a-time reading in internal/input
// exact. The remote terminal shows nothing it is not sent, so
// LocalEcho is false and the shell echoes keystrokes itself.
type Serial struct {
	port serial.Port
	name string
}

var _ Duplex = (*Serial)(nil)

// OpenSerial opens and configures the serial device. Failures from the
// serial package (bad device, invalid mode, port gone) are wrapped here
// so callers only ever handle plain errors, never transport-specific
// types.
func OpenSerial(name string, baud int) (*Serial, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	// Block until at least one byte is available instead of returning
	// short reads on a timer.
	if err := port.SetReadTimeout(serial.NoTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("configuring %s: %w", name, err)
	}
	return &Serial{port: port, name: name}, nil
}

func (s *Serial) Read(p []byte) (int, error) {
	n, err := s.port.Read(p)
	if err != nil {
		return n, fmt.Errorf("reading %s: %w", s.name, err)
	}
	return n, nil
}

func (s *Serial) Write(p []byte) (int, error) {
	n, err := s.port.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing %s: %w", s.name, err)
	}
	return n, nil
}

// Flush waits until the output queue has actually been transmitted.
func (s *Serial) Flush() error {
	if err := s.port.Drain(); err != nil {
		return fmt.Errorf("draining %s: %w", s.name, err)
	}
	return nil
}

func (s *Serial) WriteLine(buf []byte) (int, error) {
	return writeLine(s, buf)
}

func (s *Serial) LocalEcho() bool { return false }

func (s *Serial) Close() error { return s.port.Close() }
