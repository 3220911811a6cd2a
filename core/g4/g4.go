// Package g4 ties the chunked scan path and the Consolidator together
// into the single entry point most callers want: scan a whole in-memory
// sequence and get back the deterministic final-hit list. The streaming
// path (core/stream) and the raw chunked path (core/chunk) remain
// independently usable for callers that need finer control (e.g. the P2
// path-equivalence test harness, or a caller that wants raw hits before
// consolidation).
package g4

import (
	"context"

	"g4scan-core/chunk"
	"g4scan-core/consolidate"
	"g4scan-core/hit"
	"g4scan-core/scanlimits"
	"g4scan-core/seqbuf"
)

// Result is the outcome of scanning one sequence: its final hits and the
// overlap-family spans they were chosen from.
type Result struct {
	Final    []hit.FinalHit
	Raw      []hit.RawHit
	Families []consolidate.FamilyRange
}

// ScanSequence runs the chunked/whole-sequence path (spec.md section 4.4)
// over data and consolidates the result (spec.md section 4.6). data must
// already be lowercase-normalized; the core does no normalization.
func ScanSequence(ctx context.Context, data []byte, limits scanlimits.ScanLimits, workers int) (Result, error) {
	sched, err := chunk.New(limits, workers)
	if err != nil {
		return Result{}, err
	}
	buf := seqbuf.New(data)
	raw, err := sched.Scan(ctx, buf)
	if err != nil {
		return Result{}, err
	}
	final, families := consolidate.Consolidate(raw)
	return Result{Final: final, Raw: raw, Families: families}, nil
}
