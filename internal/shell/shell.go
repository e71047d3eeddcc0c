// Package shell ties the transport, the line editor and command
// execution together into the prompt loop.
package shell

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"pieshell/internal/input"
	"pieshell/internal/logging"
	"pieshell/internal/transport"
)

const shellName = "pieshell"

type Shell struct {
	duplex   transport.Duplex
	editor   *input.LineEditor
	session  Session
	executor Executor
	logger   *slog.Logger
}

func New(d transport.Duplex, session Session, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Shell{
		duplex:   d,
		editor:   input.NewLineEditor(d),
		session:  session,
		executor: execRunner{},
		logger:   logger,
	}
}

// Run is the prompt loop. It only returns with a reason to stop:
// ErrSessionEnded on Ctrl-D or a closed input stream, or the I/O or
// decode failure that made the input unusable. Resolution and spawn
// failures are rendered to the user and the loop carries on.
func (s *Shell) Run() error {
	s.writeBanner()

	for {
		s.writePrompt()

		line, err := s.editor.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.duplex.WriteLine([]byte("Exiting program"))
				s.duplex.Flush()
				return ErrSessionEnded
			}
			s.duplex.WriteLine([]byte(fmt.Sprintf("Error while getting input: %v", err)))
			s.duplex.Flush()
			s.logger.Error("input stream unusable", "err", err)
			return err
		}

		cmd, err := Parse(line)
		if err != nil {
			if errors.Is(err, ErrSessionEnded) {
				return err
			}
			s.writeResolveError(err)
			continue
		}
		if cmd == nil {
			continue
		}

		out, err := s.executor.Run(cmd)
		if err != nil {
			s.duplex.WriteLine([]byte(fmt.Sprintf("%s: %s: %v", shellName, cmd.Path, err)))
			s.duplex.Flush()
			continue
		}
		s.duplex.Write(out)
		s.duplex.Flush()
	}
}

func (s *Shell) writePrompt() {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "?"
	}
	s.duplex.Write([]byte(s.session.Prompt(cwd)))
	s.duplex.Flush()
}

func (s *Shell) writeResolveError(err error) {
	var resolveErr *ResolveError
	var line string
	switch {
	case errors.As(err, &resolveErr) && errors.Is(err, ErrNoSuchFile):
		line = fmt.Sprintf("%s: %s: No such file or directory", shellName, resolveErr.Name)
	case errors.As(err, &resolveErr) && errors.Is(err, ErrCommandNotFound):
		line = fmt.Sprintf("%s: command not found", resolveErr.Name)
	default:
		line = fmt.Sprintf("%s: %v", shellName, err)
	}
	s.duplex.WriteLine([]byte(line))
	s.duplex.Flush()
}
