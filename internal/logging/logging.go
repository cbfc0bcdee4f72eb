// Package logging configures diagnostics for coloredlogcat.
//
// Diagnostics always go to stderr: stdout carries the filtered log and must
// stay clean for redirection. Components get child loggers with a prefix.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Setup returns the root logger writing to w (stderr when nil). Verbose
// enables debug output.
func Setup(w io.Writer, verbose bool) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "coloredlogcat",
	})
}

// New returns a child of root tagged with component.
func New(root *log.Logger, component string) *log.Logger {
	if root == nil {
		return log.New(io.Discard)
	}
	return root.WithPrefix("coloredlogcat/" + component)
}
