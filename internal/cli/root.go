// internal/cli/root.go
package cli

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"g4scan/internal/app"
)

// New builds the g4scan root command: persistent ScanLimits flags shared
// by every subcommand, the scan / stream / diff subcommands, and a
// --version flag. Grounded on the cobra-based CLI surfaces in the retrieval
// pack (bams3-go, kfilt), generalized from the teacher's single stdlib
// flag.FlagSet to a multi-subcommand layout.
func New(stdout, stderr io.Writer, version string) *cobra.Command {
	opts := app.DefaultOptions()
	log := logrus.New()
	log.SetOutput(stderr)

	root := &cobra.Command{
		Use:           "g4scan",
		Short:         "Discover G-quadruplex candidates in DNA sequences",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.IntVar(&opts.MinTetrads, "min-tetrads", opts.MinTetrads, "minimum tetrad width for any seed")
	pf.IntVar(&opts.MinScore, "min-score", opts.MinScore, "minimum gscore for a viable hit")
	pf.IntVar(&opts.MaxGRun, "max-g-run", opts.MaxGRun, "maximum tetrad width usable from one G-run")
	pf.IntVar(&opts.MaxG4Length, "max-g4-length", opts.MaxG4Length, "maximum total span of a complete G4")
	pf.IntVarP(&opts.Workers, "workers", "w", opts.Workers, "fixed worker pool size for the chunked scan path")
	pf.StringVarP(&opts.Format, "format", "f", opts.Format, "output format: csv, tsv, json, jsonl, parquet")
	pf.BoolVar(&opts.Header, "header", opts.Header, "emit a header row for csv/tsv output")
	pf.StringVarP(&opts.Output, "output", "o", opts.Output, "output path, or - for stdout")

	root.AddCommand(
		newScanCmd(&opts, stdout, stderr, log),
		newStreamCmd(&opts, stdout, stderr, log),
		newDiffCmd(&opts, stdout, stderr, log),
	)
	return root
}

func newScanCmd(opts *app.Options, stdout, stderr io.Writer, log logrus.FieldLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [fasta files...]",
		Short: "Scan whole sequences via the chunked delivery path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Inputs = args
			opts.RunID = uuid.NewString()
			return app.RunScan(cmd.Context(), *opts, stdout, stderr, log.WithField("run_id", opts.RunID))
		},
	}
}

func newStreamCmd(opts *app.Options, stdout, stderr io.Writer, log logrus.FieldLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "stream [fasta files...]",
		Short: "Scan sequences incrementally via the streaming delivery path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Inputs = args
			opts.RunID = uuid.NewString()
			return app.RunStream(cmd.Context(), *opts, stdout, stderr, log.WithField("run_id", opts.RunID))
		},
	}
}

func newDiffCmd(opts *app.Options, stdout, stderr io.Writer, log logrus.FieldLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "diff [fasta files...]",
		Short: "Compare the chunked and streaming delivery paths over the same input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Inputs = args
			opts.RunID = uuid.NewString()
			return app.RunDiff(cmd.Context(), *opts, stdout, stderr, log.WithField("run_id", opts.RunID))
		},
	}
}
