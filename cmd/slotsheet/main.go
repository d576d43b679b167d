package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/Nomadcxx/slotsheet/internal/availability"
	"github.com/Nomadcxx/slotsheet/internal/config"
	"github.com/Nomadcxx/slotsheet/internal/csvout"
	"github.com/Nomadcxx/slotsheet/internal/logging"
	"github.com/Nomadcxx/slotsheet/internal/ui"
	"github.com/spf13/cobra"
)

var version = "dev" // Set by build flags: -ldflags="-X main.version=1.0.0"

// options holds the flags shared by all commands plus what PersistentPreRunE
// derives from them.
type options struct {
	cfgFile string
	verbose bool
	input   string
	output  string

	cfg *config.Config
	log *logging.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "slotsheet",
		Short: "Turn a form availability report into a CSV grid",
		Long: `slotsheet reads the availability export of a sign-up form and writes a
CSV with one row per person and one column per time slot.

Each report line holds the declared slots in German and English, followed by
tab-separated name fields. Only the German segments are read, e.g.

  19:00 - 21:30, Dienstag, 12.08. / Tuesday, August 12<TAB>Bob<TAB>Smith

Lines without a German segment (headers, notes) are skipped.

Examples:
  slotsheet --input report.txt --output grid.csv
  pbpaste | slotsheet > grid.csv
  slotsheet show --input report.txt`,
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				opts.log.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: ~/.config/slotsheet/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging on stderr")
	rootCmd.Flags().StringVar(&opts.input, "input", "", "report file to read (default: stdin)")
	rootCmd.Flags().StringVar(&opts.output, "output", "", "CSV file to write (default: stdout)")

	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// annotationConfigOptional marks commands that still run when the config
// file is missing or unreadable, such as "config init".
const annotationConfigOptional = "config-optional"

func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		if _, ok := cmd.Annotations[annotationConfigOptional]; !ok {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = config.DefaultConfig()
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}

	log, err := logging.NewWithWriter(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	o.cfg = cfg
	o.log = log
	return nil
}

// inputPath returns the --input flag, falling back to the config file.
func (o *options) inputPath() string {
	if o.input != "" {
		return o.input
	}
	return o.cfg.Convert.Input
}

// outputPath returns the --output flag, falling back to the config file.
func (o *options) outputPath() string {
	if o.output != "" {
		return o.output
	}
	return o.cfg.Convert.Output
}

func (o *options) converter() *availability.Converter {
	return availability.NewConverter(availability.WithPlaceholderName(o.cfg.Convert.PlaceholderName))
}

func runConvert(cmd *cobra.Command, opts *options) error {
	data, err := readInput(opts.inputPath(), cmd.InOrStdin())
	if err != nil {
		return err
	}

	res := opts.converter().Convert(string(data))
	logResult(opts.log, opts.inputPath(), len(data), res)

	return writeOutput(opts.outputPath(), cmd.OutOrStdout(), res.Table.Records())
}

// readInput reads the whole report from path, or from stdin when path is
// empty.
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

// writeOutput writes records as CSV to path, replacing any existing file, or
// to stdout when path is empty.
func writeOutput(path string, stdout io.Writer, records [][]string) error {
	if path == "" {
		if err := csvout.Write(stdout, records); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	var buf bytes.Buffer
	if err := csvout.Write(&buf, records); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func logResult(log *logging.Logger, source string, size int, res *availability.Result) {
	if source == "" {
		source = "stdin"
	}
	log.Info("convert", "converted",
		logging.F("source", source),
		logging.F("size", ui.FormatBytes(size)),
		logging.F("people", len(res.Table.People)),
		logging.F("slots", len(res.Table.Slots)),
		logging.F("lines", res.Stats.Lines),
		logging.F("skipped", res.Stats.Skipped),
		logging.F("segments", res.Stats.Segments),
	)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "slotsheet %s\n", version)
		},
	}
}
