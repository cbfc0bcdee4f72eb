package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/five82/coloredlogcat/internal/layout"
	"github.com/five82/coloredlogcat/internal/logline"
)

// State is the driver lifecycle state.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Reason records why a driver stopped.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonEOF
	ReasonInterrupted
	ReasonUnknownSeverity
	ReasonError
)

func (r Reason) String() string {
	switch r {
	case ReasonEOF:
		return "end of stream"
	case ReasonInterrupted:
		return "interrupted"
	case ReasonUnknownSeverity:
		return "unknown severity"
	case ReasonError:
		return "error"
	default:
		return "none"
	}
}

// Stats counts what happened to each line read.
type Stats struct {
	Rendered      int
	PassedThrough int
	Skipped       int
}

// Options configure a Driver.
type Options struct {
	// SkipUnknownSeverity drops lines with an unknown priority instead of
	// stopping the stream.
	SkipUnknownSeverity bool
	Logger              *log.Logger
}

// Driver pulls lines from an input, renders the ones that parse and passes
// the rest through untouched.
type Driver struct {
	renderer *layout.Renderer
	out      io.Writer
	skip     bool
	logger   *log.Logger

	state  State
	reason Reason
	stats  Stats
}

// New returns a driver writing to out.
func New(renderer *layout.Renderer, out io.Writer, opts Options) *Driver {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		renderer: renderer,
		out:      out,
		skip:     opts.SkipUnknownSeverity,
		logger:   logger,
		state:    Stopped,
	}
}

type readResult struct {
	line string
	err  error
}

// Run processes in until end of stream, cancellation of ctx or an unknown
// severity. Those all return nil; only read and write failures are errors.
// A read blocked inside in is abandoned on cancellation.
func (d *Driver) Run(ctx context.Context, in io.Reader) error {
	d.state = Running
	d.reason = ReasonNone
	d.stats = Stats{}

	lines := make(chan readResult)
	done := make(chan struct{})
	defer close(done)
	go readLines(in, lines, done)

	for {
		select {
		case <-ctx.Done():
			d.stop(ReasonInterrupted)
			return nil
		case res := <-lines:
			if ctx.Err() != nil {
				d.stop(ReasonInterrupted)
				return nil
			}
			if res.line != "" {
				keepGoing, err := d.handle(res.line)
				if err != nil {
					d.stop(ReasonError)
					return err
				}
				if !keepGoing {
					d.stop(ReasonUnknownSeverity)
					return nil
				}
			}
			if res.err != nil {
				if errors.Is(res.err, io.EOF) {
					d.stop(ReasonEOF)
					return nil
				}
				d.stop(ReasonError)
				return fmt.Errorf("read input: %w", res.err)
			}
		}
	}
}

func readLines(in io.Reader, out chan<- readResult, done <-chan struct{}) {
	reader := bufio.NewReaderSize(in, 64*1024)
	for {
		line, err := reader.ReadString('\n')
		select {
		case out <- readResult{line: line, err: err}:
		case <-done:
			return
		}
		if err != nil {
			return
		}
	}
}

func (d *Driver) handle(line string) (bool, error) {
	rec, ok := logline.Parse(line)
	if !ok {
		if _, err := io.WriteString(d.out, line); err != nil {
			return false, fmt.Errorf("write line: %w", err)
		}
		d.stats.PassedThrough++
		return true, nil
	}

	rendered, err := d.renderer.Render(rec)
	if errors.Is(err, layout.ErrUnknownSeverity) {
		if d.skip {
			d.logger.Warn("skipping line", "err", err)
			d.stats.Skipped++
			return true, nil
		}
		d.logger.Debug("stopping stream", "err", err)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("render line: %w", err)
	}

	if _, err := io.WriteString(d.out, rendered+"\n"); err != nil {
		return false, fmt.Errorf("write line: %w", err)
	}
	d.stats.Rendered++
	return true, nil
}

func (d *Driver) stop(reason Reason) {
	d.state = Stopped
	d.reason = reason
	d.logger.Debug("stream stopped",
		"reason", reason,
		"rendered", d.stats.Rendered,
		"passed", d.stats.PassedThrough,
		"skipped", d.stats.Skipped,
	)
}

// State returns the current lifecycle state.
func (d *Driver) State() State { return d.state }

// Reason returns why the last Run stopped.
func (d *Driver) Reason() Reason { return d.reason }

// Stats returns counters for the last Run.
func (d *Driver) Stats() Stats { return d.stats }
