package transport

import (
	"bufio"
	"os"
)

// Stdio is the local-terminal variant: the process's inherited standard
// streams. The OS line-buffers the input side, but callers still read
// one byte at a time so both variants behave alike.
type Stdio struct {
	in  *os.File
	out *bufio.Writer
}

var _ Duplex = (*Stdio)(nil)

func NewStdio() *Stdio {
	return &Stdio{
		in:  os.Stdin,
		out: bufio.NewWriter(os.Stdout),
	}
}

func (s *Stdio) Read(p []byte) (int, error)  { return s.in.Read(p) }
func (s *Stdio) Write(p []byte) (int, error) { return s.out.Write(p) }
func (s *Stdio) Flush() error                { return s.out.Flush() }

func (s *Stdio) WriteLine(buf []byte) (int, error) {
	return writeLine(s, buf)
}

// LocalEcho is true here: the terminal driver already shows what is
// typed, so the shell must not echo a second copy.
func (s *Stdio) LocalEcho() bool { return true }

func (s *Stdio) Close() error { return s.out.Flush() }
