// Package markup translates the inline <<tag>> tokens found in rendered help text.
//
// The help renderer only emits tokens; this package turns them into terminal styles, or
// strips them when the output is not a terminal. A token may carry several
// space-separated tags ("<<bold red>>"); styles accumulate until <<reset>>.
package markup

import (
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// Token vocabulary
const (
	Reset     = "<<reset>>"
	Bold      = "<<bold>>"
	Dim       = "<<dim>>"
	Underline = "<<ul>>"
	Blink     = "<<blink>>"
	Reverse   = "<<reverse>>"
)

const resetTag = "reset"

var tokenPattern = regexp.MustCompile(`<<\s*([a-z]+(?:\s+[a-z]+)*)\s*>>`)

var styles = map[string]pterm.Color{
	"bold":      pterm.Bold,
	"dim":       pterm.Fuzzy,
	"ul":        pterm.Underscore,
	"blink":     pterm.Blink,
	"reverse":   pterm.Reverse,
	"black":     pterm.FgBlack,
	"red":       pterm.FgRed,
	"green":     pterm.FgGreen,
	"yellow":    pterm.FgYellow,
	"blue":      pterm.FgBlue,
	"magenta":   pterm.FgMagenta,
	"cyan":      pterm.FgCyan,
	"white":     pterm.FgWhite,
	"blackbg":   pterm.BgBlack,
	"redbg":     pterm.BgRed,
	"greenbg":   pterm.BgGreen,
	"yellowbg":  pterm.BgYellow,
	"bluebg":    pterm.BgBlue,
	"magentabg": pterm.BgMagenta,
	"cyanbg":    pterm.BgCyan,
	"whitebg":   pterm.BgWhite,
}

// IsTag reports whether tag belongs to the token vocabulary
func IsTag(tag string) bool {
	if tag == resetTag {
		return true
	}
	_, ok := styles[tag]
	return ok
}

// Formatter replaces tokens with terminal styles, or removes them in plain mode
type Formatter struct {
	styled bool
}

// NewFormatter returns a Formatter which styles its output when styled is true and strips
// tokens otherwise
func NewFormatter(styled bool) *Formatter {
	return &Formatter{styled: styled}
}

// ForWriter returns a styling Formatter when w is a terminal and a stripping one otherwise
func ForWriter(w io.Writer) *Formatter {
	f, ok := w.(*os.File)
	return NewFormatter(ok && term.IsTerminal(int(f.Fd())))
}

// Styled reports whether the formatter emits terminal styles
func (f *Formatter) Styled() bool {
	return f.styled
}

// Format translates every known token in text. Unknown tags inside a token are ignored,
// the token itself is always removed.
func (f *Formatter) Format(text string) string {
	if !f.styled {
		return Strip(text)
	}

	var (
		sb     strings.Builder
		active []pterm.Color
		last   int
	)

	write := func(segment string) {
		if segment == "" {
			return
		}
		if len(active) == 0 {
			sb.WriteString(segment)
			return
		}
		sb.WriteString(pterm.NewStyle(active...).Sprint(segment))
	}

	for _, loc := range tokenPattern.FindAllStringSubmatchIndex(text, -1) {
		write(text[last:loc[0]])
		last = loc[1]

		for _, tag := range strings.Fields(text[loc[2]:loc[3]]) {
			if tag == resetTag {
				active = active[:0]
				continue
			}
			if color, ok := styles[tag]; ok {
				active = append(active, color)
			}
		}
	}
	write(text[last:])

	return sb.String()
}

// Strip removes every token from text
func Strip(text string) string {
	return tokenPattern.ReplaceAllString(text, "")
}

// Fprint formats text and writes it to w
func (f *Formatter) Fprint(w io.Writer, text string) error {
	_, err := io.WriteString(w, f.Format(text))
	return err
}
