package palette

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is one of the eight basic ANSI colors.
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func (c Color) String() string {
	if c < Black || c > White {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// ParseColor resolves a case-insensitive color name.
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range colorNames {
		if n == key {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", name)
}

// Attr describes a single SGR escape sequence.
type Attr struct {
	FG     *Color
	BG     *Color
	Bright bool // bright background (10x instead of 4x)
	Bold   bool
	Dim    bool
}

// Fg returns an Attr with only the foreground set.
func Fg(c Color) Attr {
	return Attr{FG: &c}
}

// On returns a copy of a with the background set.
func (a Attr) On(bg Color) Attr {
	a.BG = &bg
	return a
}

// Sequence renders the escape sequence for a. Intensity is always emitted:
// bold wins over dim, and neither yields 22 (normal intensity).
func (a Attr) Sequence() string {
	codes := make([]string, 0, 3)
	if a.FG != nil {
		codes = append(codes, "3"+strconv.Itoa(int(*a.FG)))
	}
	if a.BG != nil {
		if a.Bright {
			codes = append(codes, "10"+strconv.Itoa(int(*a.BG)))
		} else {
			codes = append(codes, "4"+strconv.Itoa(int(*a.BG)))
		}
	}
	switch {
	case a.Bold:
		codes = append(codes, "1")
	case a.Dim:
		codes = append(codes, "2")
	default:
		codes = append(codes, "22")
	}
	return "\033[" + strings.Join(codes, ";") + "m"
}

// Reset returns the sequence that clears all attributes.
func Reset() string {
	return "\033[0m"
}

// Paint wraps text in the sequence for a followed by a reset.
func Paint(a Attr, text string) string {
	return a.Sequence() + text + Reset()
}
