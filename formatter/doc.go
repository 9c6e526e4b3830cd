/*
Package formatter outputs variable array lists on devices with fixed-width
fonts, most notably terminals.

A list renders as “[e0, e1, …, en-1]” (see varray.List.String). For long
lists or long elements this text will not fit into a single line of a
terminal. Package formatter breaks the rendering into lines of a given
width, preferring breaks after the separator between two elements. Elements
which are too wide for a line on their own are broken at line-break
opportunities as defined by UAX#14. Widths are measured in “en”s, i.e.
fixed-width positions, according to UAX#11 and UAX#29 (graphemes).

Line breaks are the only thing a formatter adds: removing them from the output
yields the text of List.String again (optionally followed by a capacity
marker, see Config.ShowCapacity).

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.

*/
package formatter

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
