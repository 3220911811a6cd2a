// Package hit defines the RawHit/FinalHit record shared by the candidate
// engine, the schedulers, and the consolidator.
package hit

import "g4scan-core/seqbuf"

// RawHit is a complete candidate that has passed the score and length
// thresholds (see candidate.viable). Start is 0-based, half-open, in
// sequence (chromosome) coordinates; the streaming path translates it from
// window-local offsets, while Seq keeps pointing into its own window buffer.
// The exporter is responsible for the +1 / inclusive-end translation
// described in spec.md section 6.
type RawHit struct {
	Start   int
	Length  int
	Tetrads int
	Y1      int
	Y2      int
	Y3      int
	GScore  int
	Seq     seqbuf.Slice
}

// End returns the half-open end coordinate Start+Length.
func (h RawHit) End() int { return h.Start + h.Length }

// FinalHit has the identical shape to RawHit; it is simply the label given
// to the unique representative a Family emits after consolidation.
type FinalHit = RawHit
