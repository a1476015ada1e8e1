package cli

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/folderstat/internal/folderstat"
)

// ErrUsage marks configuration errors detected before any scan runs.
// The entrypoint maps it to exit code 2.
var ErrUsage = errors.New("invalid usage")

// options collects all flag values for one invocation.
type options struct {
	scan    folderstat.Options
	output  string
	noSave  bool
	minSize string
}

// NewCommand builds the folderstat root command.
func NewCommand(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "folderstat [flags] [path]",
		Short:   "Scan a folder and report file statistics",
		Version: version,
		Long: heredoc.Doc(`
			folderstat recursively scans a folder and reports total file count,
			total size, the largest file, and a per-extension breakdown.

			The report is printed to the console and, unless --no-save is given,
			also written to a text file (default: folder_report_<name>.txt inside
			the scanned folder).

			Extensions may be given with or without the leading dot and are
			matched case-insensitively. --ext and --exclude cannot be combined.
		`),
		Example: heredoc.Doc(`
			# Scan the current directory
			folderstat

			# Only count Python and text files
			folderstat ./project --ext .py,.txt

			# Everything except logs, report to a custom location
			folderstat ./project --exclude .log -o /tmp/report.txt
		`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.scan.Path = args[0]
			}

			if err := validate(opts); err != nil {
				return err
			}

			return run(cmd.OutOrStdout(), opts)
		},
	}

	registerFlags(cmd.Flags(), opts)

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	return cmd
}

// registerFlags wires all flags onto the given flag set.
func registerFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringSliceVarP(&opts.scan.Include, "ext", "x", nil,
		"Only include files with these extensions (e.g. .py,.txt)")
	flags.StringSliceVarP(&opts.scan.Exclude, "exclude", "e", nil,
		"Exclude files with these extensions (e.g. .bin,.log)")
	flags.StringVarP(&opts.output, "output", "o", "",
		"Write the report to this file instead of the default")
	flags.BoolVar(&opts.noSave, "no-save", false,
		"Print the report only, do not save it")
	flags.StringVar(&opts.minSize, "min-size", "0B",
		"Ignore files smaller than this size (e.g. 1KB)")

	flags.SortFlags = false
}

// validate checks flag combinations and parses the size floor.
// It runs before any filesystem access.
func validate(opts *options) error {
	if len(opts.scan.Include) > 0 && len(opts.scan.Exclude) > 0 {
		return fmt.Errorf("%w: use --ext or --exclude, not both", ErrUsage)
	}

	if opts.minSize != "" {
		size, err := humanize.ParseBytes(opts.minSize)
		if err != nil {
			return fmt.Errorf("%w: invalid min-size: %v", ErrUsage, err)
		}

		opts.scan.MinSize = int64(size)
	}

	return nil
}
