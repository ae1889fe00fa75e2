package codegen

import (
	"fmt"
	"io"
)

// emitter wraps an io.Writer with helpers for emitting generated C text.
type emitter struct {
	w   io.Writer
	err error // first write error
}

// emit writes a formatted line to the output (no indentation).
func (e *emitter) emit(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format+"\n", args...)
}

// emitRaw writes a formatted string without a trailing newline.
func (e *emitter) emitRaw(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// emitLine writes a blank line.
func (e *emitter) emitLine() {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w)
}
