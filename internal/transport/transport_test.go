package transport

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLine_AppendsSingleNewline(t *testing.T) {
	var buf bytes.Buffer

	n, err := writeLine(&buf, []byte("Welcome to the shell"))
	require.NoError(t, err)
	assert.Equal(t, len("Welcome to the shell")+1, n)
	assert.Equal(t, "Welcome to the shell\n", buf.String())
}

func TestWriteLine_EmptyPayload(t *testing.T) {
	var buf bytes.Buffer

	_, err := writeLine(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, "\n", buf.String())
}

type failingWriter struct{ err error }

func (w failingWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestWriteLine_PropagatesWriteError(t *testing.T) {
	wantErr := errors.New("port gone")

	_, err := writeLine(failingWriter{err: wantErr}, []byte("x"))
	assert.ErrorIs(t, err, wantErr)
}

func TestStdio_LocalEcho(t *testing.T) {
	assert.True(t, NewStdio().LocalEcho())
}
