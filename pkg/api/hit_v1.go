// Package api is the stable wire schema for library consumers of g4scan,
// grounded on the teacher's pkg/api (ProductV1): a small, versioned
// re-export of the internal output view, decoupled from core/hit so the
// core's internal RawHit/FinalHit shape can evolve independently.
package api

import "g4scan/internal/output"

// HitV1 is the stable, versioned shape of one exported G4 hit.
type HitV1 struct {
	Chromosome string `json:"chromosome"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Length     int    `json:"length"`
	Tetrads    int    `json:"tetrads"`
	Y1         int    `json:"y1"`
	Y2         int    `json:"y2"`
	Y3         int    `json:"y3"`
	GScore     int    `json:"gscore"`
	Sequence   string `json:"sequence"`
}

// FromRow converts an internal output.Row into the stable v1 wire shape.
func FromRow(r output.Row) HitV1 {
	return HitV1{
		Chromosome: r.Chromosome,
		Start:      r.Start,
		End:        r.End,
		Length:     r.Length,
		Tetrads:    r.Tetrads,
		Y1:         r.Y1,
		Y2:         r.Y2,
		Y3:         r.Y3,
		GScore:     r.GScore,
		Sequence:   r.Sequence,
	}
}
