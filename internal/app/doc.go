// Package app wires coloredlogcat together.
//
// # Overview
//
// Run is the composition root. It builds every collaborator once, hands the
// input to a stream.Driver and blocks until the driver stops:
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> logging.Setup()      stderr diagnostics
//	       ├─────> config.Load()        TOML settings, flags applied on top
//	       ├─────> termsize.Detect()    terminal width (once)
//	       ├─────> logtail.Open()       file, stdin or adb logcat (+ tee)
//	       ├─────> palette.NewAllocator() label colors for this session
//	       ├─────> layout.New()         header columns and wrapping
//	       └─────> stream.New().Run()   filter loop (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file unreadable, malformed or invalid
//   - Input cannot be opened (missing file, adb not installed)
//   - Read or write failures while filtering
//
// Not errors:
//   - End of input, cancellation (Ctrl-C), or an unknown severity letter:
//     the driver stops and Run returns nil
//   - adb exiting with a non-zero status: logged as a warning on close
//
// # Configuration
//
// Options mirror the command line. Native only ever turns wrapping off; the
// config file cannot turn it back on. Width, Stdin, Stdout, Stderr and
// StdinTTY exist so tests can run the whole pipeline without a terminal.
package app
