package textfile

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/varray"
)

// maxLineLength is the longest line Load accepts.
const maxLineLength = 1024 * 1024

// Progress is broadcast to subscribers of a Loader for every loaded line.
type Progress struct {
	Line int    // zero-based line number, i.e. position in the list
	Text string // content of the line, without line terminator
}

// Loader loads an OS file, which must be a text file, as a list of lines.
type Loader struct {
	path      string         // file name
	info      os.FileInfo    // result from Stat(path)
	cast      *caster.Caster // broadcaster for progress messages
	done      bool           // a loader may be used only once
	lastError error          // remember last I/O error
}

// Load reads a file, which must be a text file, and loads it as a list of
// lines. Line terminators ("\n" or "\r\n") are not part of the lines; any
// further carriage return belongs to the line content.
func Load(name string) (*varray.List[string], error) {
	ld, err := NewLoader(name)
	if err != nil {
		return nil, err
	}
	return ld.Load()
}

// NewLoader prepares loading a file and collects some useful information on
// it, checking for error conditions.
func NewLoader(name string) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", varray.ErrIllegalArguments, name)
	}
	return &Loader{
		path: name,
		info: fi,
		cast: caster.New(nil), // we will broadcast messages when lines are loaded
	}, nil
}

// Subscribe returns a channel which will receive a Progress message for every
// loaded line. capacity is the buffer size of the channel; the loader will
// block if a subscriber falls behind by more than capacity lines.
// Subscriptions have to be made before Load is called.
func (ld *Loader) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	ch, ok := ld.cast.Sub(ctx, capacity)
	return ch, ok
}

// Size returns the size of the file in bytes.
func (ld *Loader) Size() int64 {
	return ld.info.Size()
}

// Err returns the last error a loader encountered, if any.
func (ld *Loader) Err() error {
	return ld.lastError
}

// Load reads the file line by line into a list. It closes all subscriptions
// when done.
func (ld *Loader) Load() (*varray.List[string], error) {
	if ld.done {
		return nil, fmt.Errorf("%w: file %s has already been loaded", varray.ErrIllegalArguments, ld.path)
	}
	ld.done = true
	defer ld.cast.Close()
	file, err := os.Open(ld.path) // just open for read access
	if err != nil {
		ld.lastError = err
		return nil, err
	}
	defer file.Close()
	lines := varray.New[string]()
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			ld.lastError = fmt.Errorf("%w: line %d of %s is not valid UTF-8",
				varray.ErrIllegalArguments, lines.Size()+1, ld.path)
			return nil, ld.lastError
		}
		n := lines.Size()
		lines.Append(line)
		ld.cast.Pub(Progress{Line: n, Text: line})
	}
	if err := scanner.Err(); err != nil {
		ld.lastError = fmt.Errorf("error loading text file %s: %w", ld.path, err)
		return nil, ld.lastError
	}
	tracer().Debugf("loaded %d lines from %s (%d bytes)", lines.Size(), ld.path, ld.Size())
	return lines, nil
}
