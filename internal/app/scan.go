// internal/app/scan.go
package app

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"g4scan-core/g4"
	"g4scan-core/hit"
	"g4scan/internal/fasta"
)

// RunScan drives the whole-sequence / ChunkScheduler delivery path
// (spec.md section 4.4) over every FASTA record in opts.Inputs and writes
// the consolidated final hits for each chromosome.
func RunScan(ctx context.Context, opts Options, stdout, stderr io.Writer, log logrus.FieldLogger) error {
	if err := opts.validateFormat(); err != nil {
		return err
	}
	limits, err := opts.Limits()
	if err != nil {
		return err
	}

	w, closeFn, err := openOutput(opts, stdout)
	if err != nil {
		return err
	}
	defer closeFn()

	headerWritten := false
	for _, path := range opts.Inputs {
		chroms, err := fasta.LoadAll(path, log)
		if err != nil {
			return err
		}
		for _, c := range chroms {
			log.WithField("chromosome", c.Name).Info("g4scan: scanning")
			res, err := g4.ScanSequence(ctx, c.Seq, limits, opts.Workers)
			if err != nil {
				return err
			}
			if err := writeHitsWithHeader(opts, w, c.Name, res.Final, &headerWritten); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeHitsWithHeader writes a header once across multiple chromosomes'
// worth of rows, rather than per chromosome, so CSV/TSV output from a
// multi-record FASTA file remains a single well-formed table.
func writeHitsWithHeader(opts Options, w io.Writer, chromosome string, hits []hit.FinalHit, wroteHeader *bool) error {
	opts.Header = opts.Header && !*wroteHeader
	if err := writeHits(opts, w, chromosome, hits); err != nil {
		return err
	}
	*wroteHeader = true
	return nil
}
