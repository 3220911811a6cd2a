// Package parquetwriter emits FinalHit rows as columnar Parquet, the
// out-of-core serialization spec.md section 1 names alongside CSV as a
// collaborator at the I/O boundary.
package parquetwriter

import (
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"g4scan-core/hit"
	"g4scan/internal/output"
)

// row is the Parquet schema for one exported hit, tagged per
// xitongsys/parquet-go's struct-tag convention.
type row struct {
	Chromosome string `parquet:"name=chromosome, type=BYTE_ARRAY, convertedtype=UTF8"`
	Start      int32  `parquet:"name=start, type=INT32"`
	End        int32  `parquet:"name=end, type=INT32"`
	Length     int32  `parquet:"name=length, type=INT32"`
	Tetrads    int32  `parquet:"name=tetrads, type=INT32"`
	Y1         int32  `parquet:"name=y1, type=INT32"`
	Y2         int32  `parquet:"name=y2, type=INT32"`
	Y3         int32  `parquet:"name=y3, type=INT32"`
	GScore     int32  `parquet:"name=gscore, type=INT32"`
	Sequence   string `parquet:"name=sequence, type=BYTE_ARRAY, convertedtype=UTF8"`
}

func toRow(r output.Row) row {
	return row{
		Chromosome: r.Chromosome,
		Start:      int32(r.Start),
		End:        int32(r.End),
		Length:     int32(r.Length),
		Tetrads:    int32(r.Tetrads),
		Y1:         int32(r.Y1),
		Y2:         int32(r.Y2),
		Y3:         int32(r.Y3),
		GScore:     int32(r.GScore),
		Sequence:   r.Sequence,
	}
}

// WriteFile writes hits to path as a single Parquet file with np parallel
// column-write goroutines (np <= 0 defaults to 1).
func WriteFile(path string, chromosome string, hits []hit.FinalHit, np int) (err error) {
	if np < 1 {
		np = 1
	}
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("parquetwriter: open %s: %w", path, err)
	}
	defer func() {
		if cerr := fw.Close(); err == nil {
			err = cerr
		}
	}()

	pw, err := writer.NewParquetWriter(fw, new(row), int64(np))
	if err != nil {
		return fmt.Errorf("parquetwriter: new writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, h := range hits {
		r := toRow(outputRow(chromosome, h))
		if err := pw.Write(r); err != nil {
			return fmt.Errorf("parquetwriter: write row: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("parquetwriter: finalize: %w", err)
	}
	return nil
}

func outputRow(chromosome string, h hit.FinalHit) output.Row {
	return output.ToRow(chromosome, h)
}
