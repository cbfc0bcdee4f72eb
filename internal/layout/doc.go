// Package layout renders parsed logcat records for the terminal.
//
// # Overview
//
// A rendered line is a fixed-width header followed by the message body:
//
//	 10-17 12:00:00.000      1234.1250       ActivityManager  I  Start proc ...
//	└──────── time ────────┘└─ process ──┘└────── label ──────┘└sev┘└─ body ──
//
// Each header column is optional; a zero width in Columns omits it. The
// header size used for indentation counts only enabled columns, each plus
// one separator space.
//
// # Columns
//
//   - Time: date and time centered on a bright black background
//   - Process: "pid.tid" centered, same styling
//   - Label: right-aligned, truncated from the left, colored through the
//     palette.Allocator
//   - Severity: a precomputed badge per priority letter
//
// # Severity badges
//
//	V  white on black
//	D  white on blue
//	I  black on green
//	W  black on yellow
//	E  white on red
//	F  black on bright red
//
// Any other letter makes Render return ErrUnknownSeverity before anything is
// written or allocated.
//
// # Wrapping
//
// IndentWrap cuts the body into rune segments of width-headerSize. The first
// segment also carries the length of the tag's escape sequences, since those
// runes occupy no screen columns. Continuations start with a newline and
// headerSize spaces so they line up under the message. Native mode skips
// wrapping entirely, and so does a terminal narrower than the header.
//
// # Assignment highlighting
//
// When enabled, key=value pairs in the body are colored after wrapping.
// Escape sequences already present are matched first and left alone.
package layout
