package shell

import (
	"os"
	"strings"
)

// The kernel reports the host name here on the embedded target.
const hostnamePath = "/proc/sys/kernel/hostname"

// Session holds the values the prompt is built from. They are read once
// at startup and never change for the life of the process.
type Session struct {
	User string
	Host string
	Home string
}

// NewSession reads the session values from the environment. Missing
// values degrade to empty strings rather than failing; the prompt just
// looks sparse.
func NewSession() Session {
	return Session{
		User: os.Getenv("USER"),
		Host: hostname(),
		Home: os.Getenv("HOME"),
	}
}

func hostname() string {
	if b, err := os.ReadFile(hostnamePath); err == nil {
		return strings.TrimSpace(string(b))
	}
	if name, err := os.Hostname(); err == nil {
		return name
	}
	return ""
}

// Prompt renders "user@host:cwd$ ", abbreviating the home directory to
// "~" when it is a prefix of the working directory.
func (s Session) Prompt(cwd string) string {
	return s.User + "@" + s.Host + ":" + s.collapseHome(cwd) + "$ "
}

// collapseHome substitutes only at a whole-component boundary:
// /home/alice/project becomes ~/project, /home/alice2/project stays as
// it is.
func (s Session) collapseHome(cwd string) string {
	if s.Home == "" {
		return cwd
	}
	if cwd == s.Home {
		return "~"
	}
	if strings.HasPrefix(cwd, s.Home+"/") {
		return "~" + cwd[len(s.Home):]
	}
	return cwd
}
