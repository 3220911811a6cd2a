// Package chunk implements the ChunkScheduler: it partitions a whole
// sequence into overlapping windows and fans them out across a fixed-size
// worker pool, concatenating raw hits in window order.
package chunk

import (
	"context"

	"golang.org/x/sync/errgroup"

	"g4scan-core/candidate"
	"g4scan-core/hit"
	"g4scan-core/scanlimits"
	"g4scan-core/seqbuf"
)

const (
	minChunkSpan = 32
	maxChunkSpan = 64
	// safetyPaddingBP resolves spec.md section 4.4's unspecified
	// safety_padding constant; taken from the legacy reference's own window
	// sizing constant (WINDOW_PADDING_BP) per spec.md section 9's guidance
	// to consult original_source/ when the distilled spec is silent on an
	// exact constant.
	safetyPaddingBP = 27
)

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// chunkSpan is the bytes-of-primary-region-per-window policy from spec.md
// section 4.4.
func chunkSpan(limits scanlimits.ScanLimits) int {
	return clamp(limits.MaxG4Length+safetyPaddingBP, minChunkSpan, maxChunkSpan)
}

// overlap is the non-seeding tail appended to every window's primary region.
func overlap(limits scanlimits.ScanLimits) int {
	if limits.MaxG4Length < 1 {
		return 1
	}
	return limits.MaxG4Length
}

type window struct {
	start      int
	primaryEnd int
	windowEnd  int
}

func windows(length int, limits scanlimits.ScanLimits) []window {
	span := chunkSpan(limits)
	tail := overlap(limits)
	var ws []window
	for start := 0; start < length; start += span {
		primaryEnd := start + span
		if primaryEnd > length {
			primaryEnd = length
		}
		windowEnd := primaryEnd + tail
		if windowEnd > length {
			windowEnd = length
		}
		ws = append(ws, window{start: start, primaryEnd: primaryEnd, windowEnd: windowEnd})
	}
	return ws
}

// Scheduler dispatches CandidateEngine work across a fixed worker count.
// Worker count is fixed at construction time and never driven by
// environment variables, to keep results reproducible across hosts.
type Scheduler struct {
	engine  *candidate.Engine
	limits  scanlimits.ScanLimits
	workers int
}

// New builds a Scheduler. workers <= 0 is treated as 1.
func New(limits scanlimits.ScanLimits, workers int) (*Scheduler, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}
	return &Scheduler{engine: candidate.New(limits), limits: limits, workers: workers}, nil
}

// Scan runs every window of buf through the CandidateEngine, in parallel
// across the Scheduler's fixed worker pool, and returns the concatenated
// raw hits in window order. The SequenceBuffer is shared by reference
// across every worker; no window slice is ever copied.
func (s *Scheduler) Scan(ctx context.Context, buf *seqbuf.Buffer) ([]hit.RawHit, error) {
	length := buf.Len()
	span := chunkSpan(s.limits)
	tail := overlap(s.limits)

	// Short-sequence fast path: a single window covers the whole buffer.
	if length <= span+tail {
		return s.engine.Scan(buf, 0, length, length), nil
	}

	ws := windows(length, s.limits)
	results := make([][]hit.RawHit, len(ws))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, w := range ws {
		i, w := i, w
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.engine.Scan(buf, w.start, w.primaryEnd, w.windowEnd)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	out := make([]hit.RawHit, 0, total)
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}
