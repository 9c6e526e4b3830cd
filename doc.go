/*
Package varray offers a generic variable array list: an ordered, randomly
indexable sequence of values with positional insert and remove.

Variable Array Lists

A List keeps its elements in one contiguous buffer which it owns exclusively.
The capacity of the buffer is always a power of two. It doubles whenever an
element is inserted into a full list, and it halves whenever a removal leaves
the list populated to a quarter or less. Growing and shrinking therefore
happen only every Θ(capacity) operations, which keeps their amortized cost
constant.

	Operation     |   List
	--------------+-----------------
	Get           |   O(1)
	Replace/Swap  |   O(1)
	Insert        |   O(n)   (O(1) amortized at the end)
	Remove        |   O(n)   (O(1) amortized at the end)
	Find          |   O(n)

Lists have value semantics: Clone and Assign produce independent copies with
their own buffers. No method hands out references into the buffer.

Failure Reporting

Requests with a position outside of the valid window for an operation do not
panic and do not return errors. They return false (or -1 for Find) and leave
the list untouched. This lets clients probe boundaries cheaply:

	l := varray.New[string]()
	l.Insert(0, "In")
	if _, ok := l.Get(1); !ok {
	    // position 1 is past the end
	}

Internal consistency is checked by CheckConsistency and Check. A failing
check indicates a bug in this package, not misuse by the caller.

Lists are not safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package varray

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is T for use within generic code, where T names a type parameter.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// ListError is an error type for the varray module
type ListError string

func (e ListError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a position lies outside the valid
// window of an operation.
const ErrIndexOutOfBounds = ListError("index out of bounds")

// ErrNotFound is flagged whenever a value searched for is not present.
const ErrNotFound = ListError("value not found")

// ErrListCompleted signals that a list builder has already completed a list and
// it's illegal to further add values.
const ErrListCompleted = ListError("forbidden to add values; list has been completed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ListError("illegal arguments")

// ErrInconsistent is flagged by Check for a list violating its invariants.
const ErrInconsistent = ListError("inconsistent list")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
