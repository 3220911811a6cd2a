// internal/output/jsonl.go
package output

import (
	"encoding/json"
	"io"

	"g4scan-core/hit"
)

// WriteJSONL writes one JSON object per line, one per FinalHit. Grounded on
// the teacher's internal/jsonutil pretty-array encoder, adapted to the
// line-delimited shape spec.md section 1 names alongside CSV/Parquet.
func WriteJSONL(w io.Writer, chromosome string, hits []hit.FinalHit) error {
	enc := json.NewEncoder(w)
	for _, r := range toRows(chromosome, hits) {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes every hit as a single pretty-printed JSON array,
// grounded on the teacher's internal/jsonutil.EncodePretty behavior.
func WriteJSON(w io.Writer, chromosome string, hits []hit.FinalHit) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toRows(chromosome, hits))
}
