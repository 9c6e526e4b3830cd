package formatter

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Palette maps kinds of text to colors.
type Palette map[Kind]*color.Color

// Console is a formatter for outputting lists to a console with
// a fixed width font. It uses colors to tell elements from delimiters.
type Console struct {
	colors Palette
}

// NewConsole creates a new console formatter.
//
// colors may contain just a subset of the kinds of text; text of
// other kinds will be output without colors. If colors is nil, a default palette
// is used.
func NewConsole(colors Palette) *Console {
	c := &Console{colors: colors}
	if colors == nil {
		c.colors = makeDefaultPalette()
	}
	return c
}

func makeDefaultPalette() Palette {
	return Palette{
		Element:  color.New(color.FgBlue),
		Capacity: color.New(color.FgHiBlack, color.Italic),
	}
}

// Print outputs a list to stdout.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties.
func (c *Console) Print(seq Sequence, config *Config) error {
	return Format(seq, os.Stdout, config, c)
}

// Fprint outputs a list to w.
func (c *Console) Fprint(w io.Writer, seq Sequence, config *Config) error {
	return Format(seq, w, config, c)
}

// StyledText outputs s in the color assigned to kind.
// (Part of interface Formatter)
func (c *Console) StyledText(s string, kind Kind, w io.Writer) {
	if col, ok := c.colors[kind]; ok && col != nil {
		col.Fprint(w, s)
		return
	}
	io.WriteString(w, s)
}

// Newline ends the current line.
// (Part of interface Formatter)
func (c *Console) Newline(w io.Writer) {
	io.WriteString(w, "\n")
}

func isTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func terminalWidth(fd int) (int, error) {
	w, _, err := term.GetSize(fd)
	return w, err
}
