// Package input turns the transport's byte stream into decoded
// characters and completed command lines.
package input

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ErrInvalidUTF8 reports a byte sequence that is not a valid UTF-8
// encoding. Once the stream has produced one of these the rest of the
// input cannot be trusted.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 sequence")

// RuneReader decodes one Unicode scalar value at a time straight off
// the transport. It never reads past the character it is decoding: each
// call costs exactly as many transport reads as the character has
// bytes, so nothing is buffered and nothing is lost.
type RuneReader struct {
	r io.Reader
}

func NewRuneReader(r io.Reader) *RuneReader {
	return &RuneReader{r: r}
}

// ReadRune returns the next character and the number of bytes it
// occupied on the wire. A clean end of stream is io.EOF; a stream that
// ends in the middle of a character is ErrInvalidUTF8, not EOF.
func (rr *RuneReader) ReadRune() (rune, int, error) {
	var one [1]byte
	var seq [utf8.UTFMax]byte

	if err := rr.readByte(one[:]); err != nil {
		return 0, 0, err
	}

	// The lead byte's high bits give the encoded length.
	lead := one[0]
	var size int
	switch {
	case lead&0x80 == 0x00:
		size = 1
	case lead&0xE0 == 0xC0:
		size = 2
	case lead&0xF0 == 0xE0:
		size = 3
	case lead&0xF8 == 0xF0:
		size = 4
	default:
		return 0, 0, fmt.Errorf("%w: %#x is not a lead byte", ErrInvalidUTF8, lead)
	}

	seq[0] = lead
	for i := 1; i < size; i++ {
		if err := rr.readByte(one[:]); err != nil {
			if err == io.EOF {
				return 0, 0, fmt.Errorf("%w: stream ended after %d of %d bytes", ErrInvalidUTF8, i, size)
			}
			return 0, 0, err
		}
		seq[i] = one[0]
	}

	r, n := utf8.DecodeRune(seq[:size])
	if (r == utf8.RuneError && n <= 1) || n != size {
		return 0, 0, fmt.Errorf("%w: % x", ErrInvalidUTF8, seq[:size])
	}
	return r, size, nil
}

// readByte blocks until one byte is available. A zero-byte read with no
// error counts as end of stream, matching the transport contract.
func (rr *RuneReader) readByte(buf []byte) error {
	n, err := rr.r.Read(buf[:1])
	if n == 1 {
		return nil
	}
	if err == nil || err == io.EOF {
		return io.EOF
	}
	return err
}
