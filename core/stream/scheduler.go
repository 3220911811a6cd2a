// Package stream implements the StreamScheduler: the same window contract
// as chunk.Scheduler, but driven by bytes delivered incrementally by an
// external FASTA reader rather than read from one whole in-memory buffer.
package stream

import (
	"g4scan-core/candidate"
	"g4scan-core/consolidate"
	"g4scan-core/hit"
	"g4scan-core/scanlimits"
	"g4scan-core/seqbuf"
)

const (
	minChunkSpan    = 32
	maxChunkSpan    = 64
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

func chunkSpan(limits scanlimits.ScanLimits) int {
	return clamp(limits.MaxG4Length+safetyPaddingBP, minChunkSpan, maxChunkSpan)
}

func overlap(limits scanlimits.ScanLimits) int {
	if limits.MaxG4Length < 1 {
		return 1
	}
	return limits.MaxG4Length
}

// Scheduler accumulates bytes for one chromosome at a time and dispatches
// complete windows to the CandidateEngine as soon as enough bytes have
// arrived, per spec.md section 4.5's Idle -> Buffering -> Finalizing state
// machine. A Scheduler is reused across chromosomes: call Reset between
// them (or build a new one per chromosome; both are safe).
type Scheduler struct {
	engine    *candidate.Engine
	limits    scanlimits.ScanLimits
	chunkSpan int
	overlap   int

	buf    []byte // bytes not yet dispatched as a window's primary region
	offset int     // chromosome-global coordinate of buf[0]
	raw    []hit.RawHit
}

// New builds a Scheduler bound to limits.
func New(limits scanlimits.ScanLimits) (*Scheduler, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	return &Scheduler{
		engine:    candidate.New(limits),
		limits:    limits,
		chunkSpan: chunkSpan(limits),
		overlap:   overlap(limits),
	}, nil
}

// Reset clears all per-chromosome state so the Scheduler can be reused for
// the next chromosome.
func (s *Scheduler) Reset() {
	s.buf = s.buf[:0]
	s.offset = 0
	s.raw = nil
}

// Push ingests already-normalized (lowercase, header-free, non-alphabetic
// bytes stripped) bytes for the chromosome currently in progress. The
// external FASTA reader owns that normalization; Push never re-derives it.
//
// Buffering: once the accumulated buffer holds at least chunkSpan+overlap
// bytes, the front chunkSpan+overlap bytes are dispatched as a window
// (primary = first chunkSpan bytes, tail = the remaining overlap bytes),
// the logical read cursor advances by chunkSpan, and the overlap region is
// kept as the next window's prefix.
func (s *Scheduler) Push(b []byte) {
	s.buf = append(s.buf, b...)
	full := s.chunkSpan + s.overlap
	for len(s.buf) >= full {
		s.dispatch(s.buf[:full], s.chunkSpan)
		s.buf = append(s.buf[:0:0], s.buf[s.chunkSpan:]...)
		s.offset += s.chunkSpan
	}
}

// dispatch runs one window through the CandidateEngine and accumulates its
// hits with coordinates translated to chromosome-global offsets. The
// scheduler builds one fresh SequenceBuffer per window because the
// accumulation buffer is mutated (slid) immediately afterward; spec.md
// section 9 explicitly permits a streaming run to create separate buffers
// per window; content-hashed dedup keys are what make that safe for
// cross-window consolidation.
func (s *Scheduler) dispatch(window []byte, primary int) {
	buf := seqbuf.New(append([]byte(nil), window...))
	hits := s.engine.Scan(buf, 0, primary, buf.Len())
	base := s.offset
	for _, h := range hits {
		h.Start += base
		h.Seq = seqbuf.NewSlice(buf, h.Start-base, h.Length)
		s.raw = append(s.raw, h)
	}
}

// Finalize dispatches any remaining buffered bytes as a final window
// (primary = everything buffered, tail empty), runs the Consolidator once
// over the chromosome's aggregated raw hits, and resets the Scheduler for
// reuse on the next chromosome.
func (s *Scheduler) Finalize() (final []hit.FinalHit, raw []hit.RawHit, families []consolidate.FamilyRange) {
	if len(s.buf) > 0 {
		s.dispatch(s.buf, len(s.buf))
	}
	raw = s.raw
	final, families = consolidate.Consolidate(raw)
	s.Reset()
	return final, raw, families
}
