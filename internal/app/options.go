// Package app wires the parsed CLI surface to the core engine and the
// FASTA reader: process-level concerns (stdout/stderr, exit codes,
// logging), grounded on the teacher's internal/app.RunContext /
// internal/app.Run pattern.
package app

import (
	"fmt"

	"g4scan-core/scanlimits"
)

// Options is the flag-populated configuration shared by every subcommand
// before it is validated into a scanlimits.ScanLimits.
type Options struct {
	MinTetrads  int
	MinScore    int
	MaxGRun     int
	MaxG4Length int
	Workers     int

	Format string // csv, tsv, json, jsonl, parquet
	Header bool
	Output string // output file path, "-" for stdout
	RunID  string

	Inputs []string
}

// DefaultOptions mirrors scanlimits.Default() so the CLI's zero-value
// behavior matches the core's.
func DefaultOptions() Options {
	d := scanlimits.Default()
	return Options{
		MinTetrads:  d.MinTetrads,
		MinScore:    d.MinScore,
		MaxGRun:     d.MaxGRun,
		MaxG4Length: d.MaxG4Length,
		Workers:     4,
		Format:      "csv",
		Header:      true,
		Output:      "-",
	}
}

// Limits converts o into a scanlimits.ScanLimits and validates it,
// surfacing the same *scanlimits.ConfigInvalid the core itself would raise
// at scheduler construction (spec.md section 7); the CLI validates early
// so a malformed configuration never reaches the point of opening input
// files.
func (o Options) Limits() (scanlimits.ScanLimits, error) {
	limits := scanlimits.ScanLimits{
		MinTetrads:  o.MinTetrads,
		MinScore:    o.MinScore,
		MaxGRun:     o.MaxGRun,
		MaxG4Length: o.MaxG4Length,
	}
	if err := limits.Validate(); err != nil {
		return scanlimits.ScanLimits{}, err
	}
	return limits, nil
}

func (o Options) validateFormat() error {
	switch o.Format {
	case "csv", "tsv", "json", "jsonl", "parquet":
		return nil
	default:
		return fmt.Errorf("app: unrecognized output format %q", o.Format)
	}
}
