// Package termsize resolves the terminal geometry once at startup.
package termsize

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Default geometry when nothing better is known.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size is a terminal geometry in character cells.
type Size struct {
	Width  int
	Height int
}

// Detect queries the terminal behind fd, then $COLUMNS/$LINES, then falls
// back to 80x24. Each dimension falls back independently.
func Detect(fd int) Size {
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
			return Size{Width: w, Height: h}
		}
	}
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) Size {
	return Size{
		Width:  positiveOr(getenv("COLUMNS"), DefaultWidth),
		Height: positiveOr(getenv("LINES"), DefaultHeight),
	}
}

func positiveOr(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// StdinIsTerminal reports whether standard input is attached to a terminal.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
