// Package iostreams bundles the standard streams with TTY detection, color
// support and quiet-mode filtering, after the gh-cli IOStreams pattern.
package iostreams

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

// IOStreams bundles the three standard streams together with display options.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	quiet        bool
	colorEnabled bool
	profile      termenv.Profile
}

// New returns IOStreams wired to the real stdin/stdout/stderr.
// Color is enabled when stdout is a TTY and NO_COLOR is not set.
func New() *IOStreams {
	return &IOStreams{
		In:           os.Stdin,
		Out:          os.Stdout,
		ErrOut:       os.Stderr,
		colorEnabled: fileIsTerminal(os.Stdout) && os.Getenv("NO_COLOR") == "",
		profile:      termenv.ColorProfile(),
	}
}

// Test returns IOStreams backed by buffers, with color disabled.
// The returned buffers receive Out and ErrOut.
func Test() (*IOStreams, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &IOStreams{
		In:      &bytes.Buffer{},
		Out:     out,
		ErrOut:  errOut,
		profile: termenv.Ascii,
	}, out, errOut
}

// SetQuiet enables or disables quiet mode. In quiet mode Printf is suppressed.
func (s *IOStreams) SetQuiet(q bool) {
	s.quiet = q
}

// IsQuiet reports whether quiet mode is active.
func (s *IOStreams) IsQuiet() bool {
	return s.quiet
}

// IsTerminal reports whether stdout is connected to a terminal.
func (s *IOStreams) IsTerminal() bool {
	if f, ok := s.Out.(*os.File); ok {
		return fileIsTerminal(f)
	}
	return false
}

// ColorEnabled reports whether colored output should be produced.
func (s *IOStreams) ColorEnabled() bool {
	return s.colorEnabled
}

// Printf writes formatted output to Out, suppressed in quiet mode.
func (s *IOStreams) Printf(format string, a ...any) {
	if s.quiet {
		return
	}
	fmt.Fprintf(s.Out, format, a...)
}

// Errorf writes formatted output to ErrOut. It is never suppressed.
func (s *IOStreams) Errorf(format string, a ...any) {
	fmt.Fprintf(s.ErrOut, format, a...)
}

// Success returns text styled green, prefixed with a check mark.
func (s *IOStreams) Success(text string) string {
	return s.styled("✓ "+text, func(t termenv.Style) termenv.Style {
		return t.Foreground(s.profile.Color("2"))
	})
}

// Failure returns text styled red.
func (s *IOStreams) Failure(text string) string {
	return s.styled(text, func(t termenv.Style) termenv.Style {
		return t.Foreground(s.profile.Color("1"))
	})
}

// Warning returns text styled yellow.
func (s *IOStreams) Warning(text string) string {
	return s.styled(text, func(t termenv.Style) termenv.Style {
		return t.Foreground(s.profile.Color("3"))
	})
}

// Muted returns text styled faint.
func (s *IOStreams) Muted(text string) string {
	return s.styled(text, termenv.Style.Faint)
}

// Bold returns text styled bold.
func (s *IOStreams) Bold(text string) string {
	return s.styled(text, termenv.Style.Bold)
}

func (s *IOStreams) styled(text string, style func(termenv.Style) termenv.Style) string {
	if !s.colorEnabled {
		return text
	}
	return style(termenv.String(text)).String()
}

// fileIsTerminal checks if f is a character device (terminal).
func fileIsTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
