package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Nomadcxx/slotsheet/internal/logging"
	"github.com/Nomadcxx/slotsheet/internal/watcher"
	"github.com/spf13/cobra"
)

func newWatchCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-convert the report whenever it changes",
		Long: `Convert the report once, then again every time the input file is
written or replaced. Runs until interrupted.

Examples:
  slotsheet watch --input report.txt --output grid.csv
  slotsheet watch --input report.txt          # CSV to stdout on every change`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "report file to watch (required unless set in config)")
	cmd.Flags().StringVar(&opts.output, "output", "", "CSV file to write (default: stdout)")

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, opts *options) error {
	input := opts.inputPath()
	if input == "" {
		return fmt.Errorf("watch needs an input file (use --input or convert.input in the config)")
	}

	convert := func() error {
		data, err := readInput(input, nil)
		if err != nil {
			return err
		}
		res := opts.converter().Convert(string(data))
		logResult(opts.log, input, len(data), res)
		return writeOutput(opts.outputPath(), cmd.OutOrStdout(), res.Table.Records())
	}

	if err := convert(); err != nil {
		return err
	}

	w, err := watcher.NewWatcher(input, watcher.HandlerFunc(func(event watcher.FileEvent) error {
		opts.log.Debug("watch", "reconverting", logging.F("event", event.Type))
		return convert()
	}), watcher.WithDebounce(opts.cfg.Watch.Debounce), watcher.WithLogger(opts.log))
	if err != nil {
		return err
	}
	defer w.Close()

	return w.Run(ctx)
}
