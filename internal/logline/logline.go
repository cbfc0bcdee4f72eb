// Package logline parses `logcat -v threadtime` lines into records.
package logline

import (
	"regexp"
	"strings"
)

// Severity is the single-letter priority of a log line.
type Severity string

const (
	Verbose Severity = "V"
	Debug   Severity = "D"
	Info    Severity = "I"
	Warning Severity = "W"
	Error   Severity = "E"
	Fatal   Severity = "F"
)

// Severities lists the renderable priorities from lowest to highest.
var Severities = []Severity{Verbose, Debug, Info, Warning, Error, Fatal}

var severityNames = map[Severity]string{
	Verbose: "Verbose",
	Debug:   "Debug",
	Info:    "Info",
	Warning: "Warning",
	Error:   "Error",
	Fatal:   "Fatal",
}

// Known reports whether s is one of the six renderable priorities.
func (s Severity) Known() bool {
	_, ok := severityNames[s]
	return ok
}

// Name returns the long name of s, or s itself when unknown.
func (s Severity) Name() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return string(s)
}

// Record holds the raw fields of one matched line. Nothing is trimmed.
type Record struct {
	Date     string
	Time     string
	PID      string
	TID      string
	Severity Severity
	Label    string
	Tag      string
	Message  string
}

var threadtime = regexp.MustCompile(`^(\d*-\d*)\s+(\d*:\d*:\d*\.\d*)\s+(\d*)\s+(\d*)\s+([A-Z])\s+([\w\-\.]*)\s*:\s(\s*\w*)(.*)$`)

// Parse matches line against the threadtime layout. The line terminator is
// ignored; any other mismatch returns false.
func Parse(line string) (Record, bool) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	m := threadtime.FindStringSubmatch(line)
	if m == nil {
		return Record{}, false
	}
	return Record{
		Date:     m[1],
		Time:     m[2],
		PID:      m[3],
		TID:      m[4],
		Severity: Severity(m[5]),
		Label:    m[6],
		Tag:      m[7],
		Message:  m[8],
	}, true
}
