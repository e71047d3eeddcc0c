// Package transport provides the byte channel the shell talks through:
// either the local terminal streams or a hardware serial link. Exactly
// one variant is constructed per process, at startup.
package transport

import "io"

// Duplex is the bidirectional byte channel for one shell session. All
// session I/O goes through a single Duplex; there is never a concurrent
// reader or writer.
type Duplex interface {
	io.Reader
	io.Writer

	// Flush pushes any buffered output out to the device.
	Flush() error

	// WriteLine writes buf followed by exactly one newline.
	WriteLine(buf []byte) (int, error)

	// LocalEcho reports whether the peer terminal already shows typed
	// characters on its own. When false the shell echoes every
	// character back itself.
	LocalEcho() bool

	Close() error
}

// writeLine appends the newline before writing so the line goes out in
// one call to the underlying writer.
func writeLine(w io.Writer, buf []byte) (int, error) {
	line := make([]byte, 0, len(buf)+1)
	line = append(line, buf...)
	line = append(line, '\n')
	return w.Write(line)
}
