// Package stream drives the line-by-line filter loop.
//
// A Driver is Running for the duration of Run and Stopped afterwards. It
// stops at end of input, when the context is cancelled, or when a parsed line
// carries a priority letter with no badge (unless SkipUnknownSeverity is
// set). Lines that do not parse are copied through byte for byte, terminator
// included; rendered lines always end with a newline.
//
// Reads happen on a helper goroutine so a cancelled context is noticed while
// the input is idle, which is the normal state of a live logcat session.
package stream
