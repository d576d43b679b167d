package main

import (
	"fmt"

	"github.com/Nomadcxx/slotsheet/internal/ui"
	"github.com/spf13/cobra"
)

func newShowCmd(opts *options) *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the availability grid as a terminal table",
		Long: `Convert the report and print the grid as a table instead of CSV.

Examples:
  slotsheet show --input report.txt
  slotsheet show < report.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				ui.DisableColors()
			}
			return runShow(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "report file to read (default: stdin)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}

func runShow(cmd *cobra.Command, opts *options) error {
	data, err := readInput(opts.inputPath(), cmd.InOrStdin())
	if err != nil {
		return err
	}

	res := opts.converter().Convert(string(data))
	logResult(opts.log, opts.inputPath(), len(data), res)

	out := cmd.OutOrStdout()
	if len(res.Table.Rows) == 0 {
		ui.WarningMsg(out, "no availability found in %d lines", res.Stats.Lines)
		return nil
	}

	fmt.Fprintln(out, ui.AvailabilityGrid(res.Table.Header, res.Table.Rows))
	ui.SuccessMsg(out, "%d people, %d slots, %d lines skipped",
		len(res.Table.People), len(res.Table.Slots), res.Stats.Skipped)
	return nil
}
