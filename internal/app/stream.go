// internal/app/stream.go
package app

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"g4scan-core/stream"
	"g4scan/internal/fasta"
)

// RunStream drives the StreamScheduler delivery path (spec.md section 4.5)
// over every FASTA record in opts.Inputs, pushing bytes to the scheduler
// as they are read rather than loading a whole chromosome into memory
// first.
func RunStream(ctx context.Context, opts Options, stdout, stderr io.Writer, log logrus.FieldLogger) error {
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
		sched, err := stream.New(limits)
		if err != nil {
			return err
		}

		var firstErr error
		push := func(_ string, chunk []byte) {
			if ctx.Err() != nil {
				return
			}
			sched.Push(chunk)
		}
		finalize := func(name string) {
			if ctx.Err() != nil {
				return
			}
			final, _, _ := sched.Finalize()
			log.WithField("chromosome", name).Info("g4scan: stream finalized")
			if err := writeHitsWithHeader(opts, w, name, final, &headerWritten); err != nil && firstErr == nil {
				firstErr = err
			}
		}

		if err := fasta.StreamRecords(path, log, push, finalize); err != nil {
			return err
		}
		if firstErr != nil {
			return firstErr
		}
	}
	return nil
}
