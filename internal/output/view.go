// Package output holds the exporter views and writers for FinalHits
// (spec.md section 6): coordinate translation to 1-based inclusive, the
// deferred uppercase materialization of the hit sequence, and the CSV,
// JSONL, and Parquet serializations named by spec.md section 1.
package output

import "g4scan-core/hit"

// Row is the exporter-facing view of one FinalHit: coordinates translated
// to 1-based inclusive and the sequence materialized uppercase. The core
// never builds this; it is constructed on demand at export time (spec.md
// section 9, "Deferred materialization").
type Row struct {
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

// ToRow translates h into its exporter view. chromosome is the external
// identity the core does not carry (spec.md section 3, SequenceBuffer
// "carries no chromosome identity").
func ToRow(chromosome string, h hit.FinalHit) Row {
	return Row{
		Chromosome: chromosome,
		Start:      h.Start + 1,
		End:        h.Start + h.Length,
		Length:     h.Length,
		Tetrads:    h.Tetrads,
		Y1:         h.Y1,
		Y2:         h.Y2,
		Y3:         h.Y3,
		GScore:     h.GScore,
		Sequence:   h.Seq.Uppercase(),
	}
}

func toRows(chromosome string, hits []hit.FinalHit) []Row {
	rows := make([]Row, 0, len(hits))
	for _, h := range hits {
		rows = append(rows, ToRow(chromosome, h))
	}
	return rows
}
