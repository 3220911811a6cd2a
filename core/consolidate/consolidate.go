// Package consolidate is the single authority that turns an unordered batch
// of RawHits into a deterministic, per-family winner list (spec.md
// section 4.6). It is called exactly once per sequence (or per chromosome,
// in the streaming path) after every window's raw hits have been
// concatenated.
package consolidate

import (
	"sort"

	"g4scan-core/hit"
)

// FamilyRange is the [Start, End) genomic span covered by one overlap
// family, reported alongside FinalHits so callers (e.g. the streaming
// callback contract in spec.md section 6) can see which raw hits were
// folded into which winner.
type FamilyRange struct {
	Start int
	End   int
}

type dedupKey struct {
	start int
	end   int
	seq   string
}

// Consolidate runs the dedup, ordering, family-grouping, and winner
// selection phases of spec.md section 4.6 over raw, returning the final
// hits (one per family, in family-creation order) and each family's span.
func Consolidate(raw []hit.RawHit) ([]hit.FinalHit, []FamilyRange) {
	if len(raw) == 0 {
		return nil, nil
	}

	// --- 4.6.1 Dedup phase ---
	dedup := make(map[dedupKey]hit.RawHit, len(raw))
	for _, h := range raw {
		k := dedupKey{start: h.Start, end: h.End(), seq: h.Seq.Key()}
		existing, ok := dedup[k]
		if !ok || h.GScore > existing.GScore {
			dedup[k] = h
		}
	}

	deduped := make([]hit.RawHit, 0, len(dedup))
	for _, h := range dedup {
		deduped = append(deduped, h)
	}

	// --- 4.6.2 Ordering ---
	sort.Slice(deduped, func(i, j int) bool {
		a, b := deduped[i], deduped[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.End() < b.End()
	})

	// --- 4.6.3 Family grouping ---
	//
	// Scanning "families in insertion order" for the first overlapping
	// member reduces, once hits are sorted ascending by start, to checking
	// only the most recently opened family: any earlier family's span ends
	// before the current family's members begin (otherwise it would have
	// been merged into it already), so a later hit - whose start is >= every
	// earlier family's members' starts - can only still overlap the last
	// family. This keeps grouping O(n) instead of O(n * families).
	type family struct {
		members []hit.RawHit
		end     int
	}
	var families []family
	for _, h := range deduped {
		if n := len(families); n > 0 {
			last := &families[n-1]
			if h.Start <= last.end {
				last.members = append(last.members, h)
				if e := h.End(); e > last.end {
					last.end = e
				}
				continue
			}
		}
		families = append(families, family{members: []hit.RawHit{h}, end: h.End()})
	}

	// --- 4.6.4 Winner selection ---
	final := make([]hit.FinalHit, 0, len(families))
	ranges := make([]FamilyRange, 0, len(families))
	for _, f := range families {
		// Members are in ascending-start order (the order they were
		// appended), so the first member's start is already the family
		// minimum; f.end was tracked incrementally above.
		winner := f.members[0]
		for _, m := range f.members[1:] {
			if better(m, winner) {
				winner = m
			}
		}
		final = append(final, winner)
		ranges = append(ranges, FamilyRange{Start: f.members[0].Start, End: f.end})
	}
	return final, ranges
}

// better reports whether candidate should replace current as the family
// winner: higher gscore wins; ties break toward the lower start, then the
// shorter length (spec.md section 4.6.4).
func better(candidate, current hit.RawHit) bool {
	if candidate.GScore != current.GScore {
		return candidate.GScore > current.GScore
	}
	if candidate.Start != current.Start {
		return candidate.Start < current.Start
	}
	return candidate.Length < current.Length
}
