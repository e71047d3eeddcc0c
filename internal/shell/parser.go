package shell

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"pieshell/internal/input"
)

var (
	// ErrCommandNotFound: no directory on the search path holds the
	// program.
	ErrCommandNotFound = errors.New("command not found")

	// ErrNoSuchFile: an explicit path was given but no regular file is
	// there.
	ErrNoSuchFile = errors.New("no such file or directory")

	// ErrSessionEnded: the user sent end-of-transmission. Returned up
	// through Run so main owns the shutdown, instead of exiting from
	// deep inside the loop.
	ErrSessionEnded = errors.New("session ended")
)

// ResolveError says which program token failed resolution and how; the
// wrapped error is ErrCommandNotFound or ErrNoSuchFile.
type ResolveError struct {
	Name string
	Err  error
}

func (e *ResolveError) Error() string { return e.Name + ": " + e.Err.Error() }
func (e *ResolveError) Unwrap() error { return e.Err }

// Command is one resolved invocation: the executable on disk plus the
// arguments exactly as typed. Built once per completed line, consumed
// immediately, never kept.
type Command struct {
	Path string
	Args []string
}

// Split breaks a line on single spaces. There is no quoting, escaping
// or separator collapsing: consecutive spaces yield empty tokens on
// purpose (see DESIGN.md). A nil result with nil error means a blank
// line — nothing to run, prompt again.
func Split(line string) ([]string, error) {
	tokens := strings.Split(strings.TrimSpace(line), " ")
	if tokens[0] == "" {
		return nil, nil
	}
	if strings.HasPrefix(tokens[0], string(rune(input.EndOfTransmission))) {
		return nil, ErrSessionEnded
	}
	// TODO: dispatch to shell builtins here once any exist.
	return tokens, nil
}

// Resolve turns the program token into an executable path. A token
// containing a path separator is taken literally and must name a
// regular file. Anything else is searched for along the colon-separated
// PATH list, in order; the first directory entry that is a regular file
// with the exact name wins. Directories that cannot be listed are
// skipped, not fatal.
func Resolve(name string) (string, error) {
	if strings.Contains(name, "/") {
		info, err := os.Stat(name)
		if err != nil || !info.Mode().IsRegular() {
			return "", &ResolveError{Name: name, Err: ErrNoSuchFile}
		}
		return name, nil
	}

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.Name() != name {
				continue
			}
			if info, err := entry.Info(); err == nil && info.Mode().IsRegular() {
				return filepath.Join(dir, entry.Name()), nil
			}
		}
	}
	return "", &ResolveError{Name: name, Err: ErrCommandNotFound}
}

// Parse combines Split and Resolve into a ready-to-run Command. A nil
// Command with a nil error means a blank line.
func Parse(line string) (*Command, error) {
	tokens, err := Split(line)
	if err != nil || tokens == nil {
		return nil, err
	}
	path, err := Resolve(tokens[0])
	if err != nil {
		return nil, err
	}
	return &Command{Path: path, Args: tokens[1:]}, nil
}
