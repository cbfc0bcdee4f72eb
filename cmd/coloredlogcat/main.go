package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/coloredlogcat/internal/app"
	"github.com/five82/coloredlogcat/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "coloredlogcat: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "coloredlogcat [flags] [TAG ...]",
		Short: "Colorize and align adb logcat output",
		Long: `coloredlogcat reads "logcat -v threadtime" lines and prints them with
colored labels, severity badges and wrapped messages.

Input is a file (--file), standard input when it is redirected, or a new
"adb logcat -v threadtime [-s TAG ...]" process otherwise:

  coloredlogcat < capture.log
  coloredlogcat -o raw.log ActivityManager:I '*:S'`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Tags = args
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.TeePath, "output", "o", "", "also write the raw input to this file")
	flags.BoolVarP(&opts.Native, "native", "N", false, "do not wrap long messages")
	flags.StringVarP(&opts.File, "file", "f", "", "read this log file instead of stdin or adb")
	flags.IntVar(&opts.Last, "last", 0, "with --file, only show the last N lines")
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "debug diagnostics on stderr")
	return cmd
}
