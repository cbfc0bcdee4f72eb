package logtail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Mode identifies where input lines come from.
type Mode int

const (
	ModeStdin Mode = iota
	ModeFile
	ModeADB
)

func (m Mode) String() string {
	switch m {
	case ModeFile:
		return "file"
	case ModeADB:
		return "adb"
	default:
		return "stdin"
	}
}

// Options select and configure the input.
type Options struct {
	File     string   // read this file instead of stdin or adb
	Last     int      // with File, only the final Last lines
	ADBPath  string   // adb binary
	Tags     []string // logcat -s selectors
	TeePath  string   // copy raw input here
	Stdin    io.Reader
	StdinTTY bool // stdin is a terminal, so spawn adb
	Stderr   io.Writer
	Logger   *log.Logger
}

// Source is an open input. Close releases files and reaps the subprocess.
type Source struct {
	io.Reader
	Mode    Mode
	closers []func() error
}

// LogcatArgs returns the adb arguments for a threadtime logcat session.
func LogcatArgs(tags []string) []string {
	args := []string{"logcat", "-v", "threadtime"}
	if len(tags) > 0 {
		args = append(args, "-s")
		args = append(args, tags...)
	}
	return args
}

// Open picks the input: File when set, stdin when it is not a terminal,
// otherwise a new adb logcat process bound to ctx.
func Open(ctx context.Context, opts Options) (*Source, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	src := &Source{}
	var err error
	switch {
	case strings.TrimSpace(opts.File) != "":
		err = src.openFile(opts.File, opts.Last)
	case !opts.StdinTTY:
		src.Mode = ModeStdin
		src.Reader = opts.Stdin
		if src.Reader == nil {
			src.Reader = os.Stdin
		}
	default:
		err = src.startADB(ctx, opts, logger)
	}
	if err != nil {
		_ = src.Close()
		return nil, err
	}

	if opts.TeePath != "" {
		tee, err := os.Create(opts.TeePath)
		if err != nil {
			_ = src.Close()
			return nil, fmt.Errorf("create tee file: %w", err)
		}
		src.Reader = io.TeeReader(src.Reader, tee)
		src.closers = append(src.closers, tee.Close)
	}

	logger.Debug("input opened", "mode", src.Mode, "tee", opts.TeePath)
	return src, nil
}

func (s *Source) openFile(path string, last int) error {
	s.Mode = ModeFile
	if last > 0 {
		lines, err := Read(path, last)
		if err != nil {
			return err
		}
		var b strings.Builder
		for _, line := range lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		s.Reader = strings.NewReader(b.String())
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	s.Reader = file
	s.closers = append(s.closers, file.Close)
	return nil
}

func (s *Source) startADB(ctx context.Context, opts Options, logger *log.Logger) error {
	s.Mode = ModeADB
	adb := opts.ADBPath
	if adb == "" {
		adb = "adb"
	}

	cmd := exec.CommandContext(ctx, adb, LogcatArgs(opts.Tags)...)
	cmd.Stderr = opts.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("adb stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start adb: %w", err)
	}
	logger.Debug("adb started", "pid", cmd.Process.Pid, "args", cmd.Args[1:])

	s.Reader = stdout
	s.closers = append(s.closers, func() error {
		_ = cmd.Process.Kill()
		err := cmd.Wait()
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if code := exitErr.ExitCode(); code > 0 {
				logger.Warn("adb exited", "code", code)
			}
			return nil
		}
		return err
	})
	return nil
}

// Close releases everything Open acquired, newest first.
func (s *Source) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
