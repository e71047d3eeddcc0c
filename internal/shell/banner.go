package shell

import (
	"github.com/muesli/termenv"
)

const welcome = "Welcome to the shell"

// writeBanner prints the greeting once at startup. On the local
// terminal it picks up whatever color support termenv detects; over
// serial it stays plain ASCII.
func (s *Shell) writeBanner() {
	profile := termenv.Ascii
	if s.duplex.LocalEcho() {
		profile = termenv.ColorProfile()
	}
	styled := profile.String(welcome).Foreground(profile.Color("#5fd7af")).Bold()
	s.duplex.WriteLine([]byte(styled.String()))
	s.duplex.Flush()
}
