package input

import (
	"pieshell/internal/transport"
)

// Control characters the editor understands.
const (
	// EndOfTransmission (Ctrl-D) asks the shell to end the session. It
	// is exported because the parser has to recognize a line carrying
	// it.
	EndOfTransmission = '\x04'

	charInterrupt = '\x03' // Ctrl-C
	charBackspace = '\x7f'
)

// LineEditor collects decoded characters into one command line per
// call, applying the single-character editing the shell supports. The
// in-progress line is owned by the call and discarded when it returns;
// nothing carries over between prompt cycles.
type LineEditor struct {
	reader *RuneReader
	out    transport.Duplex
	echo   bool
}

func NewLineEditor(d transport.Duplex) *LineEditor {
	return &LineEditor{
		reader: NewRuneReader(d),
		out:    d,
		// Over serial the remote terminal shows nothing by itself.
		echo: !d.LocalEcho(),
	}
}

// ReadLine reads characters until the line is completed or cancelled.
//
//   - newline or carriage return (PuTTY sends \r for enter) completes
//     the line; the terminator is stripped.
//   - Ctrl-C discards everything collected and completes with an empty
//     line, as if enter had been pressed on a blank prompt.
//   - Ctrl-D returns a string holding just that control character so
//     the caller can end the session.
//   - backspace removes the last character, a no-op on an empty line.
//   - end of stream surfaces as io.EOF: the transport has closed.
func (e *LineEditor) ReadLine() (string, error) {
	var line []rune

	for {
		r, _, err := e.reader.ReadRune()
		if err != nil {
			return "", err
		}

		if e.echo {
			if err := e.echoRune(r); err != nil {
				return "", err
			}
		}

		switch r {
		case '\n', '\r':
			return string(line), nil
		case charInterrupt:
			return "", nil
		case EndOfTransmission:
			return string(rune(EndOfTransmission)), nil
		case charBackspace:
			if len(line) > 0 {
				line = line[:len(line)-1]
			}
		default:
			line = append(line, r)
		}
	}
}

// echoRune feeds the typed character back over the wire so the remote
// terminal shows what was typed. Control characters echo as something
// visible instead of raw bytes.
func (e *LineEditor) echoRune(r rune) error {
	var s string
	switch r {
	case charInterrupt:
		s = "^C\r"
	case EndOfTransmission:
		s = "exit\r\r"
	default:
		s = string(r)
	}
	_, err := e.out.Write([]byte(s))
	return err
}
