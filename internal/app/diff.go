// internal/app/diff.go
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"g4scan-core/g4"
	"g4scan-core/hit"
	"g4scan-core/scanlimits"
	"g4scan-core/stream"
	"g4scan/internal/fasta"
)

// RunDiff runs both delivery paths over the same FASTA input and reports
// any divergence between them, a shippable instance of the P2
// path-equivalence property (spec.md section 8) grounded on the legacy
// reference's own compare_modes/compare_csv_outputs tooling.
func RunDiff(ctx context.Context, opts Options, stdout, stderr io.Writer, log logrus.FieldLogger) error {
	limits, err := opts.Limits()
	if err != nil {
		return err
	}

	mismatches := 0
	for _, path := range opts.Inputs {
		chroms, err := fasta.LoadAll(path, log)
		if err != nil {
			return err
		}
		for _, c := range chroms {
			chunked, err := g4.ScanSequence(ctx, c.Seq, limits, opts.Workers)
			if err != nil {
				return err
			}
			streamed, err := scanViaStream(limits, c.Seq)
			if err != nil {
				return err
			}
			if n := reportDivergence(stdout, c.Name, chunked.Final, streamed); n > 0 {
				mismatches += n
			}
		}
	}
	if mismatches > 0 {
		return fmt.Errorf("app: diff found %d divergent hit(s) between chunked and streaming paths", mismatches)
	}
	fmt.Fprintln(stdout, "g4scan diff: chunked and streaming paths agree")
	return nil
}

func scanViaStream(limits scanlimits.ScanLimits, data []byte) ([]hit.FinalHit, error) {
	sched, err := stream.New(limits)
	if err != nil {
		return nil, err
	}
	sched.Push(data)
	final, _, _ := sched.Finalize()
	return final, nil
}

func reportDivergence(w io.Writer, chromosome string, a, b []hit.FinalHit) int {
	if len(a) != len(b) {
		fmt.Fprintf(w, "%s: hit count differs: chunked=%d streamed=%d\n", chromosome, len(a), len(b))
		return 1
	}
	mismatches := 0
	for i := range a {
		if a[i].Start != b[i].Start || a[i].Length != b[i].Length || a[i].GScore != b[i].GScore {
			fmt.Fprintf(w, "%s: hit %d differs: chunked=%+v streamed=%+v\n", chromosome, i, a[i], b[i])
			mismatches++
		}
	}
	return mismatches
}
