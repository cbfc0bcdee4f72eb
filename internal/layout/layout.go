package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/coloredlogcat/internal/logline"
	"github.com/five82/coloredlogcat/internal/palette"
)

// ErrUnknownSeverity is returned for records whose priority has no badge.
var ErrUnknownSeverity = errors.New("unknown severity")

// Columns holds the header column widths. Zero omits a column.
type Columns struct {
	Time     int
	Process  int
	Label    int
	Severity int
}

// DefaultColumns returns the stock 20/14/20/3 layout.
func DefaultColumns() Columns {
	return Columns{Time: 20, Process: 14, Label: 20, Severity: 3}
}

// HeaderSize is the number of screen columns taken by the header, one
// separator included per enabled column.
func (c Columns) HeaderSize() int {
	size := 0
	for _, w := range []int{c.Time, c.Process, c.Label, c.Severity} {
		if w > 0 {
			size += w + 1
		}
	}
	return size
}

// Validate rejects negative widths.
func (c Columns) Validate() error {
	if c.Time < 0 || c.Process < 0 || c.Label < 0 || c.Severity < 0 {
		return fmt.Errorf("column widths must not be negative: %+v", c)
	}
	return nil
}

// Options configure a Renderer.
type Options struct {
	Columns              Columns
	Width                int  // terminal width
	Native               bool // no wrapping
	HighlightAssignments bool
}

var headerAttr = palette.Attr{FG: palette.Fg(palette.Black).FG, Bright: true}.On(palette.Black)

var badgeAttrs = map[logline.Severity]palette.Attr{
	logline.Verbose: palette.Fg(palette.White).On(palette.Black),
	logline.Debug:   palette.Fg(palette.White).On(palette.Blue),
	logline.Info:    palette.Fg(palette.Black).On(palette.Green),
	logline.Warning: palette.Fg(palette.Black).On(palette.Yellow),
	logline.Error:   palette.Fg(palette.White).On(palette.Red),
	logline.Fatal:   palette.Attr{FG: palette.Fg(palette.Black).FG, Bright: true}.On(palette.Red),
}

// Renderer lays out records as a fixed-width colored header followed by a
// wrapped message body.
type Renderer struct {
	opts   Options
	colors *palette.Allocator
	badges map[logline.Severity]string
	indent int
}

// New returns a Renderer drawing label and tag colors from colors.
func New(colors *palette.Allocator, opts Options) *Renderer {
	r := &Renderer{
		opts:   opts,
		colors: colors,
		badges: make(map[logline.Severity]string, len(badgeAttrs)),
		indent: opts.Columns.HeaderSize(),
	}
	for sev, attr := range badgeAttrs {
		r.badges[sev] = palette.Paint(attr, center(string(sev), opts.Columns.Severity)) + " "
	}
	return r
}

// Badge returns the styled severity cell for sev.
func (r *Renderer) Badge(sev logline.Severity) (string, bool) {
	badge, ok := r.badges[sev]
	return badge, ok
}

// Render formats rec. Records with an unknown severity produce
// ErrUnknownSeverity and no output.
func (r *Renderer) Render(rec logline.Record) (string, error) {
	badge, ok := r.badges[rec.Severity]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownSeverity, string(rec.Severity))
	}
	cols := r.opts.Columns

	var b strings.Builder
	if cols.Time > 0 {
		stamp := strings.TrimSpace(rec.Date + " " + rec.Time)
		b.WriteString(palette.Paint(headerAttr, center(stamp, cols.Time)))
		b.WriteByte(' ')
	}
	if cols.Process > 0 {
		owner := strings.TrimSpace(rec.PID + "." + rec.TID)
		b.WriteString(palette.Paint(headerAttr, center(owner, cols.Process)))
		b.WriteByte(' ')
	}
	if cols.Label > 0 {
		label := strings.TrimSpace(rec.Label)
		color := r.colors.Allocate(label)
		b.WriteString(palette.Paint(palette.Fg(color), rightAlign(label, cols.Label)+" "))
	}
	if cols.Severity > 0 {
		b.WriteString(badge)
	}

	tag := palette.Paint(palette.Fg(r.colors.Allocate(rec.Tag)), rec.Tag)
	body := tag + rec.Message
	if !r.opts.Native {
		overhead := len(tag) - len(rec.Tag)
		body = IndentWrap(body, r.indent, r.opts.Width, overhead)
	}
	if r.opts.HighlightAssignments {
		body = highlightAssignments(body)
	}
	b.WriteString(body)
	return b.String(), nil
}

// center pads s to width. When both the gap and width are odd the extra
// space goes on the left.
func center(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	left := gap/2 + (gap & width & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// rightAlign keeps the last width cells of s, padded on the left.
func rightAlign(s string, width int) string {
	if w := ansi.StringWidth(s); w > width {
		s = ansi.TruncateLeft(s, w-width, "")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, s)
}
