package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/five82/coloredlogcat/internal/config"
	"github.com/five82/coloredlogcat/internal/layout"
	"github.com/five82/coloredlogcat/internal/logging"
	"github.com/five82/coloredlogcat/internal/logtail"
	"github.com/five82/coloredlogcat/internal/palette"
	"github.com/five82/coloredlogcat/internal/stream"
	"github.com/five82/coloredlogcat/internal/termsize"
)

// Options configure a coloredlogcat run. Zero values defer to the config file.
type Options struct {
	ConfigPath string
	TeePath    string   // -o: copy raw input to this file
	Native     bool     // -N: never wrap
	File       string   // -f: read this file
	Last       int      // --last: only the final lines of File
	Tags       []string // adb logcat -s selectors
	Verbose    bool

	// Width overrides terminal detection when positive.
	Width int

	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	StdinTTY *bool // nil detects
}

// Run filters the selected input to stdout until it ends or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	root := logging.Setup(opts.Stderr, opts.Verbose)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Native {
		cfg.Native = true
	}

	width := opts.Width
	if width <= 0 {
		width = termsize.Detect(int(os.Stdout.Fd())).Width
	}

	stdinTTY := false
	if opts.StdinTTY != nil {
		stdinTTY = *opts.StdinTTY
	} else if opts.Stdin == nil {
		stdinTTY = termsize.StdinIsTerminal()
	}

	src, err := logtail.Open(ctx, logtail.Options{
		File:     opts.File,
		Last:     opts.Last,
		ADBPath:  cfg.ADBPath,
		Tags:     opts.Tags,
		TeePath:  opts.TeePath,
		Stdin:    opts.Stdin,
		StdinTTY: stdinTTY,
		Stderr:   opts.Stderr,
		Logger:   logging.New(root, "input"),
	})
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			root.Warn("closing input", "err", err)
		}
	}()

	colors := palette.NewAllocator(
		palette.WithSeeds(cfg.KnownTags),
		palette.WithLogger(logging.New(root, "palette")),
	)
	renderer := layout.New(colors, layout.Options{
		Columns:              cfg.Columns,
		Width:                width,
		Native:               cfg.Native,
		HighlightAssignments: cfg.HighlightAssignments,
	})
	driver := stream.New(renderer, stdout, stream.Options{
		SkipUnknownSeverity: cfg.SkipUnknownSeverity(),
		Logger:              logging.New(root, "stream"),
	})

	root.Debug("filtering", "input", src.Mode, "width", width, "native", cfg.Native)
	if err := driver.Run(ctx, src); err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	return nil
}
