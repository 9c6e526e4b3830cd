package formatter

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth    int            // target line length in “en”s; <= 0 means no wrapping
	Context      *uax11.Context // context for measuring character widths
	ShowCapacity bool           // append a marker “ ‹size/capacity›”
}

// Sequence is what a formatter needs to know about a list.
// It is implemented by *varray.List[T] for every T.
type Sequence interface {
	Elements() []string
	Size() int
	Capacity() int
}

// Kind classifies pieces of text handed to a Formatter.
type Kind int8

// Kinds of text
const (
	Delimiter Kind = iota // brackets and separators
	Element               // (part of) the text of an element
	Capacity              // capacity marker
)

func (k Kind) String() string {
	switch k {
	case Delimiter:
		return "delimiter"
	case Element:
		return "element"
	case Capacity:
		return "capacity"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Formatter is an interface for output devices, driven by Format.
type Formatter interface {
	StyledText(s string, kind Kind, w io.Writer) // output a piece of text
	Newline(w io.Writer)                         // end the current line
}

// Plain is a formatter which outputs text without any decoration.
type Plain struct{}

// StyledText outputs s unchanged. (Part of interface Formatter)
func (Plain) StyledText(s string, kind Kind, w io.Writer) {
	io.WriteString(w, s)
}

// Newline outputs a newline character. (Part of interface Formatter)
func (Plain) Newline(w io.Writer) {
	io.WriteString(w, "\n")
}

var setupGraphemes sync.Once

type piece struct {
	text string
	kind Kind
}

// Format outputs the rendering of seq to w, breaking lines first-fit at
// config.LineWidth. If config is nil, a configuration will be derived from the
// terminal. If f is nil, Plain is used.
//
// Every output ends with a newline.
func Format(seq Sequence, w io.Writer, config *Config, f Formatter) error {
	if seq == nil || w == nil {
		return fmt.Errorf("formatter: sequence and writer required")
	}
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	if f == nil {
		f = Plain{}
	}
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	col := 0
	for _, unit := range units(seq, config.ShowCapacity) {
		width := 0
		for _, p := range unit {
			width += textWidth(p.text, ctx)
		}
		if config.LineWidth > 0 && col > 0 && col+width > config.LineWidth {
			f.Newline(w)
			col = 0
		}
		for i, p := range unit {
			pw := textWidth(p.text, ctx)
			tail := 0 // width of the delimiters following p within the unit
			for _, q := range unit[i+1:] {
				tail += textWidth(q.text, ctx)
			}
			if config.LineWidth <= 0 || p.kind != Element || col+pw+tail <= config.LineWidth {
				f.StyledText(p.text, p.kind, w)
				col += pw
				continue
			}
			// element does not fit into a line by itself
			frags := breakOpportunities(p.text)
			for j, frag := range frags {
				fw := textWidth(frag, ctx)
				need := fw
				if j == len(frags)-1 {
					need += tail // keep the trailing delimiter on the same line
				}
				if col > 0 && col+need > config.LineWidth {
					f.Newline(w)
					col = 0
				}
				f.StyledText(frag, Element, w)
				col += fw
			}
		}
	}
	f.Newline(w)
	return nil
}

// Print outputs seq to stdout.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment.
func Print(seq Sequence, config *Config) error {
	return NewConsole(nil).Print(seq, config)
}

// units groups the pieces of the rendering of seq into units which will not be
// separated by a line break: an element together with the delimiters adjacent
// to it.
func units(seq Sequence, showCapacity bool) [][]piece {
	elems := seq.Elements()
	var out [][]piece
	if len(elems) == 0 {
		out = append(out, []piece{{"[", Delimiter}, {"]", Delimiter}})
	}
	for i, e := range elems {
		var u []piece
		if i == 0 {
			u = append(u, piece{"[", Delimiter})
		}
		u = append(u, piece{e, Element})
		if i == len(elems)-1 {
			u = append(u, piece{"]", Delimiter})
		} else {
			u = append(u, piece{", ", Delimiter})
		}
		out = append(out, u)
	}
	if showCapacity {
		marker := fmt.Sprintf(" ‹%d/%d›", seq.Size(), seq.Capacity())
		out = append(out, []piece{{marker, Capacity}})
	}
	return out
}

func textWidth(s string, ctx *uax11.Context) int {
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, ctx)
}

// breakOpportunities splits s into fragments at UAX#14 line-break
// opportunities. The concatenation of the fragments is s.
func breakOpportunities(s string) []string {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(s)))
	var frags []string
	for segmenter.Next() {
		frags = append(frags, string(segmenter.Bytes()))
	}
	if strings.Join(frags, "") != s {
		T().Errorf("formatter: line-wrap segments do not cover element text")
		return []string{s}
	}
	return frags
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if isTerminal(fd) {
		w, err := terminalWidth(fd)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
