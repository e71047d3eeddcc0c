package shell

import (
	"errors"
	"os/exec"
)

// Executor runs a resolved command and hands back its captured standard
// output.
type Executor interface {
	Run(cmd *Command) ([]byte, error)
}

// execRunner executes synchronously via os/exec, blocking until the
// child exits with its stdout fully captured. There is no timeout or
// cancellation; once launched the child runs to completion.
type execRunner struct{}

var _ Executor = execRunner{}

func (execRunner) Run(cmd *Command) ([]byte, error) {
	out, err := exec.Command(cmd.Path, cmd.Args...).Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// A non-zero exit still produced output worth showing; only a
		// failure to start the program is reported as an error.
		return out, nil
	}
	return out, err
}
