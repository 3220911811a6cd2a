// Package candidate implements the breadth-first candidate enumerator: for
// every G-run in a window it expands every legal (tetrad width, offset,
// three loop lengths) combination and emits the ones that pass score and
// length thresholds.
package candidate

import (
	"math"
	"sync"

	"g4scan-core/grunscan"
	"g4scan-core/hit"
	"g4scan-core/scanlimits"
	"g4scan-core/seqbuf"
)

// unset marks a loop length that has not yet been assigned by the BFS.
const unset = -1

// rawCandidate is the internal BFS state: a tetrad width, a start position,
// and up to three loop lengths (unset until discovered).
type rawCandidate struct {
	width      int
	start      int
	y1, y2, y3 int
}

func (c rawCandidate) complete() bool { return c.y3 != unset }

// cursor returns the byte offset at which the next unset loop's length
// search begins, per spec.md section 4.3.2.
func (c rawCandidate) cursor() int {
	switch {
	case c.y1 == unset:
		return c.start + c.width
	case c.y2 == unset:
		return c.start + c.width + c.y1 + c.width
	default:
		return c.start + c.width + c.y1 + c.width + c.y2 + c.width
	}
}

// minLoop is 1 if any previously-set loop equals 0, else 0. This is the
// legacy degenerate-case exclusion from spec.md section 4.3.3: it is
// evaluated only against loops already assigned, which is what gives the
// asymmetric "y3 may be the first zero-length loop" behavior documented as
// an Open Question in spec.md section 9 - no special case is needed, it
// falls directly out of only ever looking backward.
func (c rawCandidate) minLoop() int {
	if (c.y1 != unset && c.y1 == 0) || (c.y2 != unset && c.y2 == 0) {
		return 1
	}
	return 0
}

// withLoop returns a copy of c with the next unset loop set to y.
func (c rawCandidate) withLoop(y int) rawCandidate {
	switch {
	case c.y1 == unset:
		c.y1 = y
	case c.y2 == unset:
		c.y2 = y
	default:
		c.y3 = y
	}
	return c
}

func (c rawCandidate) length() int {
	return 4*c.width + nonNeg(c.y1) + nonNeg(c.y2) + nonNeg(c.y3)
}

func nonNeg(y int) int {
	if y == unset {
		return 0
	}
	return y
}

// score computes the legacy gscore (spec.md section 4.3.4, P6). The mean
// term is computed in the real domain and floored last to match the
// reference bit-exactly (spec.md section 9, second Open Question).
func score(limits scanlimits.ScanLimits, c rawCandidate) int {
	gmax := float64(limits.MaxG4Length - (4*c.width + 1))
	gavg := (math.Abs(float64(c.y1-c.y2)) + math.Abs(float64(c.y2-c.y3)) + math.Abs(float64(c.y1-c.y3))) / 3.0
	val := gmax - gavg + gmax*float64(c.width-2)
	return int(math.Floor(val))
}

func viable(limits scanlimits.ScanLimits, c rawCandidate) bool {
	return c.length() <= limits.MaxG4Length && score(limits, c) >= limits.MinScore
}

// loopScratchPool holds reusable []int buffers for find_loop_lengths_from,
// mirroring the thread-local scratch buffer the legacy reference keeps per
// worker (spec.md section 9, "Candidate pooling"). Pooling here only saves
// allocations; it never changes emission order or outputs.
var loopScratchPool = sync.Pool{New: func() any { s := make([]int, 0, 8); return &s }}

// findLoopLengths returns every loop length y (ascending) satisfying the
// three conditions of spec.md section 4.3.3, searching within data (the
// full window, so loop discovery can read into the overlap tail).
func findLoopLengths(data []byte, windowEnd int, limits scanlimits.ScanLimits, c rawCandidate, cursor int) []int {
	ptr := loopScratchPool.Get().(*[]int)
	ys := (*ptr)[:0]

	minLoop := c.minLoop()
	partial := cursor - c.start
	maxY := limits.MaxG4Length - c.width - partial
	if maxY < minLoop {
		*ptr = ys
		loopScratchPool.Put(ptr)
		return nil
	}

	limit := windowEnd
	if limit > len(data) {
		limit = len(data)
	}

	for y := minLoop; y <= maxY; y++ {
		pos := cursor + y
		if pos+c.width > limit {
			break
		}
		ok := true
		for j := 0; j < c.width; j++ {
			if b := data[pos+j]; b != 'g' && b != 'G' {
				ok = false
				break
			}
		}
		if ok {
			ys = append(ys, y)
		}
	}

	out := append([]int(nil), ys...)
	*ptr = ys
	loopScratchPool.Put(ptr)
	return out
}

// Engine is the BFS candidate enumerator bound to a fixed ScanLimits.
type Engine struct {
	limits scanlimits.ScanLimits
}

// New builds an Engine for the given limits. limits must already have
// passed Validate; the engine performs no further validation (spec.md
// section 7: internally everything is arithmetic on bounded integers).
func New(limits scanlimits.ScanLimits) *Engine {
	return &Engine{limits: limits}
}

// Scan produces every RawHit whose seed position falls in
// [windowStart, primaryEnd) and whose full span does not exceed windowEnd,
// per spec.md section 4.3. buf supplies the bytes; windowEnd bounds both
// loop discovery and the final candidate span.
func (e *Engine) Scan(buf *seqbuf.Buffer, windowStart, primaryEnd, windowEnd int) []hit.RawHit {
	limits := e.limits
	maxTetradsAllowed := limits.MaxTetradsAllowed()
	if maxTetradsAllowed < limits.MinTetrads {
		return nil
	}

	data := buf.Bytes()
	queue := e.seed(data, windowStart, primaryEnd, windowEnd, maxTetradsAllowed)

	var out []hit.RawHit
	for head := 0; head < len(queue); head++ {
		c := queue[head]
		if c.complete() {
			if viable(limits, c) {
				out = append(out, hit.RawHit{
					Start:   c.start,
					Length:  c.length(),
					Tetrads: c.width,
					Y1:      c.y1,
					Y2:      c.y2,
					Y3:      c.y3,
					GScore:  score(limits, c),
					Seq:     seqbuf.NewSlice(buf, c.start, c.length()),
				})
			}
			continue
		}
		cursor := c.cursor()
		for _, y := range findLoopLengths(data, windowEnd, limits, c, cursor) {
			queue = append(queue, c.withLoop(y))
		}
	}
	return out
}

// seed generates the initial BFS frontier per spec.md section 4.3.1: every
// (tetrad width, offset) pair within every G-run whose start falls in
// [windowStart, primaryEnd).
func (e *Engine) seed(data []byte, windowStart, primaryEnd, windowEnd, maxTetradsAllowed int) []rawCandidate {
	limits := e.limits
	var queue []rawCandidate

	// Bound the run scanner by windowEnd: scanning past it would both waste
	// time re-walking the rest of a shared whole-sequence buffer and could
	// surface runs no candidate seeded here is allowed to use anyway.
	scanner := grunscan.NewFrom(data[:windowEnd], windowStart, limits.MinTetrads)
	for {
		run, ok := scanner.Next()
		if !ok {
			break
		}
		if run.Start >= primaryEnd {
			continue
		}
		maxT := run.Length
		if maxT > maxTetradsAllowed {
			maxT = maxTetradsAllowed
		}
		for t := limits.MinTetrads; t <= maxT; t++ {
			if 4*t > limits.MaxG4Length {
				break
			}
			for offset := 0; offset <= run.Length-t; offset++ {
				s := run.Start + offset
				if s >= primaryEnd {
					break
				}
				queue = append(queue, rawCandidate{
					width: t,
					start: s,
					y1:    unset, y2: unset, y3: unset,
				})
			}
		}
	}
	return queue
}
