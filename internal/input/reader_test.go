package input

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuneReader_ValidSequences(t *testing.T) {
	inputs := []string{
		"a",
		"é",
		"€",
		"😀",
		"ls -la",
		"héllo wörld €42 😀",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			rr := NewRuneReader(strings.NewReader(in))

			for _, want := range in {
				got, size, err := rr.ReadRune()
				require.NoError(t, err)
				assert.Equal(t, want, got)
				assert.Equal(t, utf8.RuneLen(want), size)
			}

			_, _, err := rr.ReadRune()
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestRuneReader_InvalidSequences(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
	}{
		{name: "truncated two-byte character", bytes: []byte{0xC3}},
		{name: "truncated three-byte character", bytes: []byte{0xE2, 0x82}},
		{name: "truncated four-byte character", bytes: []byte{0xF0, 0x9F, 0x98}},
		{name: "0xFF is never a lead byte", bytes: []byte{0xFF}},
		{name: "continuation byte as lead", bytes: []byte{0x80}},
		{name: "invalid continuation byte", bytes: []byte{0xC3, 0x28}},
		{name: "overlong encoding", bytes: []byte{0xC0, 0xAF}},
		{name: "surrogate half", bytes: []byte{0xED, 0xA0, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := NewRuneReader(bytes.NewReader(tt.bytes))

			_, _, err := rr.ReadRune()
			assert.ErrorIs(t, err, ErrInvalidUTF8)
		})
	}
}

func TestRuneReader_TruncationAfterValidPrefix(t *testing.T) {
	// A clean character followed by a torn one: the first read
	// succeeds, the second is a decode failure, not EOF.
	rr := NewRuneReader(bytes.NewReader([]byte{'a', 0xE2}))

	r, size, err := rr.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 1, size)

	_, _, err = rr.ReadRune()
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.NotErrorIs(t, err, io.EOF)
}

func TestRuneReader_EmptyStreamIsEOF(t *testing.T) {
	rr := NewRuneReader(strings.NewReader(""))

	_, _, err := rr.ReadRune()
	assert.ErrorIs(t, err, io.EOF)
}
