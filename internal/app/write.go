// internal/app/write.go
package app

import (
	"fmt"
	"io"
	"os"

	"g4scan-core/hit"
	"g4scan/internal/fasta"
	"g4scan/internal/output"
	"g4scan/internal/output/parquetwriter"
)

// writeHits serializes hits in the requested format. Parquet requires a
// real filesystem path (the xitongsys/parquet-go writer is file-backed),
// so it rejects stdout explicitly rather than silently falling back to
// another format.
func writeHits(opts Options, w io.Writer, chromosome string, hits []hit.FinalHit) error {
	switch opts.Format {
	case "csv":
		return output.WriteCSV(w, chromosome, hits, opts.Header)
	case "tsv":
		return output.WriteTSV(w, chromosome, hits, opts.Header)
	case "json":
		return output.WriteJSON(w, chromosome, hits)
	case "jsonl":
		return output.WriteJSONL(w, chromosome, hits)
	case "parquet":
		if opts.Output == "-" {
			return fmt.Errorf("app: parquet output requires --output <file>, not stdout")
		}
		return parquetwriter.WriteFile(opts.Output, chromosome, hits, 1)
	default:
		return fmt.Errorf("app: unrecognized output format %q", opts.Format)
	}
}

// openOutput returns the writer output should be sent to and a closer,
// or stdout with a no-op closer when opts.Output is "-". Parquet manages
// its own file handle inside parquetwriter.WriteFile, so this is unused
// for that format.
func openOutput(opts Options, stdout io.Writer) (io.Writer, func() error, error) {
	if opts.Output == "-" || opts.Format == "parquet" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(opts.Output)
	if err != nil {
		return nil, nil, &fasta.IoFailure{Path: opts.Output, Err: err}
	}
	return f, f.Close, nil
}
