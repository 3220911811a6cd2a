// internal/output/csv.go
package output

import (
	"fmt"
	"io"

	"g4scan-core/hit"
)

// CSVHeader is the canonical header row for CSV/TSV output, matching
// spec.md section 6's fixed exporter column list plus the externally-owned
// chromosome identity column.
const CSVHeader = "chromosome,start,end,length,tetrads,y1,y2,y3,gscore,sequence"

// WriteCSV writes hits as comma-separated rows, one per FinalHit, prefixed
// by CSVHeader when header is true.
func WriteCSV(w io.Writer, chromosome string, hits []hit.FinalHit, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, CSVHeader); err != nil {
			return err
		}
	}
	for _, r := range toRows(chromosome, hits) {
		if _, err := fmt.Fprintf(w, "%s,%d,%d,%d,%d,%d,%d,%d,%d,%s\n",
			r.Chromosome, r.Start, r.End, r.Length, r.Tetrads,
			r.Y1, r.Y2, r.Y3, r.GScore, r.Sequence,
		); err != nil {
			return err
		}
	}
	return nil
}

// WriteTSV is WriteCSV with tabs instead of commas, for callers that want
// the teacher's TSV convention.
func WriteTSV(w io.Writer, chromosome string, hits []hit.FinalHit, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, "chromosome\tstart\tend\tlength\ttetrads\ty1\ty2\ty3\tgscore\tsequence"); err != nil {
			return err
		}
	}
	for _, r := range toRows(chromosome, hits) {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
			r.Chromosome, r.Start, r.End, r.Length, r.Tetrads,
			r.Y1, r.Y2, r.Y3, r.GScore, r.Sequence,
		); err != nil {
			return err
		}
	}
	return nil
}
