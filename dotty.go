package varray

import (
	"fmt"
	"io"
	"strings"
)

// List2Dot outputs the buffer layout of a list in Graphviz DOT format
// (for debugging purposes).
//
// The buffer is drawn as a single record node with one field per slot.
// Occupied slots show their element, unused slots are left blank.
func List2Dot[T comparable](l *List[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if err := l.Check(); err != nil {
		tracer().Errorf("list DOT: %s", err.Error())
	}
	fields := make([]string, l.Capacity())
	for i := range fields {
		if v, ok := l.Get(i); ok {
			fields[i] = fmt.Sprintf("<s%d> %s", i, dotEscape(fmt.Sprint(v)))
		} else {
			fields[i] = fmt.Sprintf("<s%d> ", i)
		}
	}
	label := fmt.Sprintf("size=%d\\ncap=%d", l.Size(), l.Capacity())
	io.WriteString(w, fmt.Sprintf("\"header\" [label=\"%s\" %s];\n", label, headerDotStyles()))
	io.WriteString(w, fmt.Sprintf("\"buffer\" [label=\"%s\" %s];\n",
		strings.Join(fields, "|"), bufferDotStyles(l.Size(), l.Capacity())))
	io.WriteString(w, "\"header\" -> \"buffer\";\n")
	io.WriteString(w, "}\n")
}

func headerDotStyles() string {
	return ",shape=box,style=filled,color=black,fillcolor=\"#a3d7e4\""
}

func bufferDotStyles(size, capacity int) string {
	s := ",shape=record,style=filled"
	fill := 0
	if capacity > 0 {
		fill = size * (len(hexcolors) - 1) / capacity
	}
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[fill])
	return s
}

// dotEscape escapes characters with a special meaning in record labels.
func dotEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, `|`, `\|`, `{`, `\{`, `}`, `\}`,
		`<`, `\<`, `>`, `\>`)
	return r.Replace(s)
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
