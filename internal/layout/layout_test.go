package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/coloredlogcat/internal/logline"
	"github.com/five82/coloredlogcat/internal/palette"
)

func sampleRecord() logline.Record {
	return logline.Record{
		Date: "01-02", Time: "03:04:05.123", PID: "100", TID: "2000",
		Severity: logline.Info, Label: "MyTag", Tag: "hello", Message: " world",
	}
}

func TestColumns_HeaderSize(t *testing.T) {
	if got := DefaultColumns().HeaderSize(); got != 61 {
		t.Fatalf("HeaderSize = %d, want 61", got)
	}
	if got := (Columns{Label: 10}).HeaderSize(); got != 11 {
		t.Fatalf("HeaderSize = %d, want 11", got)
	}
	if got := (Columns{}).HeaderSize(); got != 0 {
		t.Fatalf("HeaderSize = %d, want 0", got)
	}
}

func TestColumns_Validate(t *testing.T) {
	if err := DefaultColumns().Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if err := (Columns{Time: -1}).Validate(); err == nil {
		t.Fatalf("Validate returned nil error for negative width")
	}
}

func TestRender_DefaultLayout(t *testing.T) {
	r := New(palette.NewAllocator(), Options{Columns: DefaultColumns(), Width: 120})
	got, err := r.Render(sampleRecord())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	want := "\033[30;100;22m 01-02 03:04:05.123 \033[0m " +
		"\033[30;100;22m   100.2000   \033[0m " +
		"\033[31;22m" + strings.Repeat(" ", 15) + "MyTag \033[0m" +
		"\033[30;42;22m I \033[0m " +
		"\033[32;22mhello\033[0m world"
	if got != want {
		t.Fatalf("Render =\n%q\nwant\n%q", got, want)
	}
	if visible := ansi.Strip(got); len(visible) != 61+len("hello world") {
		t.Fatalf("visible width = %d, want %d", len(visible), 61+len("hello world"))
	}
}

func TestRender_Badges(t *testing.T) {
	r := New(palette.NewAllocator(), Options{Columns: DefaultColumns(), Width: 120})
	want := map[logline.Severity]string{
		logline.Verbose: "\033[37;40;22m V \033[0m ",
		logline.Debug:   "\033[37;44;22m D \033[0m ",
		logline.Info:    "\033[30;42;22m I \033[0m ",
		logline.Warning: "\033[30;43;22m W \033[0m ",
		logline.Error:   "\033[37;41;22m E \033[0m ",
		logline.Fatal:   "\033[30;101;22m F \033[0m ",
	}
	for sev, badge := range want {
		got, ok := r.Badge(sev)
		if !ok || got != badge {
			t.Fatalf("Badge(%s) = %q, %v; want %q", sev, got, ok, badge)
		}
	}
}

func TestRender_LongLabelKeepsTail(t *testing.T) {
	r := New(palette.NewAllocator(), Options{Columns: Columns{Label: 8}, Width: 120})
	rec := sampleRecord()
	rec.Label = "  com.example.NetworkMonitor "
	got, err := r.Render(rec)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if visible := ansi.Strip(got); !strings.HasPrefix(visible, "kMonitor hello world") {
		t.Fatalf("visible = %q, want it to start with the label tail", visible)
	}
}

func TestRender_DisabledColumns(t *testing.T) {
	r := New(palette.NewAllocator(), Options{Columns: Columns{}, Width: 120})
	got, err := r.Render(sampleRecord())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if got != "\033[31;22mhello\033[0m world" {
		t.Fatalf("Render = %q, want only the body", got)
	}
}

func TestRender_UnknownSeverity(t *testing.T) {
	colors := palette.NewAllocator()
	r := New(colors, Options{Columns: DefaultColumns(), Width: 120})
	rec := sampleRecord()
	rec.Severity = "X"
	got, err := r.Render(rec)
	if !errors.Is(err, ErrUnknownSeverity) {
		t.Fatalf("Render error = %v, want ErrUnknownSeverity", err)
	}
	if got != "" {
		t.Fatalf("Render = %q, want no output", got)
	}
	if _, ok := colors.Lookup("MyTag"); ok {
		t.Fatalf("label color was allocated for a rejected record")
	}
}

func TestRender_ShortMessageIsOneLine(t *testing.T) {
	r := New(palette.NewAllocator(), Options{Columns: DefaultColumns(), Width: 80})
	got, err := r.Render(sampleRecord())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if strings.Contains(got, "\n") {
		t.Fatalf("Render inserted a line break: %q", got)
	}
}

func TestRender_LongMessageWrapsUnderHeader(t *testing.T) {
	const width = 80
	cols := DefaultColumns()
	indent := strings.Repeat(" ", cols.HeaderSize())
	r := New(palette.NewAllocator(), Options{Columns: cols, Width: width})

	rec := sampleRecord()
	rec.Message = " " + strings.Repeat("lorem ipsum dolor sit amet ", 6)
	got, err := r.Render(rec)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	lines := strings.Split(got, "\n")
	if len(lines) < 3 {
		t.Fatalf("Render produced %d lines, want wrapping: %q", len(lines), got)
	}
	var body strings.Builder
	for i, line := range lines[1:] {
		if !strings.HasPrefix(line, indent) {
			t.Fatalf("continuation %d = %q, want %d leading spaces", i+1, line, len(indent))
		}
		if w := len(line) - len(indent); w > width-cols.HeaderSize() {
			t.Fatalf("continuation %d carries %d chars, over the wrap area", i+1, w)
		}
		body.WriteString(strings.TrimPrefix(line, indent))
	}
	full := ansi.Strip(lines[0]) + body.String()
	if want := "hello" + rec.Message; !strings.HasSuffix(full, want) {
		t.Fatalf("reassembled body = %q, want suffix %q", full, want)
	}
	if first := ansi.Strip(lines[0]); len(first) != width {
		t.Fatalf("first line visible width = %d, want %d", len(first), width)
	}
}

func TestRender_NativeModeDoesNotWrap(t *testing.T) {
	r := New(palette.NewAllocator(), Options{Columns: DefaultColumns(), Width: 80, Native: true})
	rec := sampleRecord()
	rec.Message = " " + strings.Repeat("x", 300)
	got, err := r.Render(rec)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if strings.Contains(got, "\n") {
		t.Fatalf("native Render wrapped the body")
	}
	if !strings.HasSuffix(got, rec.Message) {
		t.Fatalf("native Render altered the message")
	}
}

func TestRender_HighlightAssignments(t *testing.T) {
	r := New(palette.NewAllocator(), Options{Columns: Columns{}, Width: 200, HighlightAssignments: true})
	rec := sampleRecord()
	rec.Message = " count=3 user@host=a.b"
	got, err := r.Render(rec)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	want := "\033[34;22mcount\033[32;22m=\033[34;22m3\033[0m"
	if !strings.Contains(got, want) {
		t.Fatalf("Render = %q, want it to contain %q", got, want)
	}
	if ansi.Strip(got) != "hello count=3 user@host=a.b" {
		t.Fatalf("highlighting changed the visible text: %q", ansi.Strip(got))
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"I", 3, " I "},
		{"ab", 5, "  ab "},
		{"ab", 4, " ab "},
		{"abc", 4, "abc "},
		{"100.200", 14, "   100.200    "},
		{"too long", 3, "too long"},
	}
	for _, tt := range tests {
		if got := center(tt.in, tt.width); got != tt.want {
			t.Errorf("center(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestRightAlign(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"label", 8, "   label"},
		{"com.example.NetworkMonitor", 8, "kMonitor"},
		{"日本語", 4, "本語"},
		{"日本語", 7, " 日本語"},
	}
	for _, tt := range tests {
		if got := rightAlign(tt.in, tt.width); got != tt.want {
			t.Errorf("rightAlign(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestRender_WrapKeepsMessageBytes(t *testing.T) {
	cols := DefaultColumns()
	indent := strings.Repeat(" ", cols.HeaderSize())
	r := New(palette.NewAllocator(), Options{Columns: cols, Width: 80})

	rec := sampleRecord()
	rec.Message = " " + strings.Repeat("a", 40) + "\xff\xfe" + strings.Repeat("b", 60) + " héllo"
	got, err := r.Render(rec)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if strings.Contains(got, "\uFFFD") {
		t.Fatalf("Render replaced invalid bytes: %q", got)
	}

	lines := strings.Split(got, "\n")
	if len(lines) < 3 {
		t.Fatalf("Render produced %d lines, want wrapping", len(lines))
	}
	// The first line holds the colored tag and the first 14 message bytes.
	body := rec.Message[:14]
	if !strings.HasSuffix(lines[0], body) {
		t.Fatalf("first line = %q, want it to end with %q", lines[0], body)
	}
	var rest strings.Builder
	for _, line := range lines[1:] {
		if !strings.HasPrefix(line, indent) {
			t.Fatalf("continuation %q lacks indentation", line)
		}
		rest.WriteString(strings.TrimPrefix(line, indent))
	}
	if rest.String() != rec.Message[14:] {
		t.Fatalf("continuations = %q, want %q", rest.String(), rec.Message[14:])
	}
}
