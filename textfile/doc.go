/*
Package textfile provides API helpers to load UTF-8 text files as lists of
lines.

Loading is synchronous, but clients may subscribe to a Loader before starting
it and will receive a Progress message for every line as soon as the line has
been appended to the list.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'varray'
func tracer() tracing.Trace {
	return tracing.Select("varray")
}
