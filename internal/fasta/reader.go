// Package fasta is the external collaborator spec.md section 4.1 assumes
// but does not define: it owns header parsing, .gz transparent
// decompression, and the lowercasing / non-alphabetic filtering the core
// requires of every byte it ingests. Nothing in here is part of the core;
// it exists purely to feed core/chunk and core/stream their input bytes.
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/sirupsen/logrus"
)

// InputMalformed reports a structural problem with FASTA input that the
// reader could not route around (spec.md section 7). It wraps the
// underlying cause when there is one.
type InputMalformed struct {
	Path   string
	Reason string
	Err    error
}

func (e *InputMalformed) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fasta: malformed input %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("fasta: malformed input %s: %s", e.Path, e.Reason)
}

func (e *InputMalformed) Unwrap() error { return e.Err }

// IoFailure reports an I/O error reading or decompressing path (spec.md
// section 7's third error kind: the operating system can always fail).
type IoFailure struct {
	Path string
	Err  error
}

func (e *IoFailure) Error() string { return fmt.Sprintf("fasta: io failure on %s: %v", e.Path, e.Err) }
func (e *IoFailure) Unwrap() error  { return e.Err }

// Chromosome is one whole, normalized FASTA record: a name and its
// lowercase, alphabetic-only sequence bytes, ready to hand to
// core/seqbuf.New.
type Chromosome struct {
	Name string
	Seq  []byte
}

// openReader opens path for reading, transparently decompressing gzip by
// either the .gz suffix or the gzip magic number, and treats "-" as stdin.
// Grounded on the teacher's core/fasta.openReader, swapped to
// klauspost/compress/gzip for faster large-chromosome decode.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, &IoFailure{Path: path, Err: err}
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, &IoFailure{Path: path, Err: err}
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, &IoFailure{Path: path, Err: err}
		}
		return &gzipCloser{Reader: gr, inner: gr, file: fh}, nil
	}
	return fh, nil
}

type gzipCloser struct {
	io.Reader
	inner *gzip.Reader
	file  *os.File
}

func (g *gzipCloser) Close() error {
	err := g.inner.Close()
	if ferr := g.file.Close(); err == nil {
		err = ferr
	}
	return err
}

// normalize lowercases ASCII letters in place and reports whether the byte
// is alphabetic; non-alphabetic bytes (whitespace, digits, '*') are
// dropped by the caller rather than forwarded to the core, per spec.md
// section 4.1's ingest contract.
func normalize(b byte) (byte, bool) {
	switch {
	case b >= 'A' && b <= 'Z':
		return b + ('a' - 'A'), true
	case b >= 'a' && b <= 'z':
		return b, true
	default:
		return 0, false
	}
}

func appendNormalized(dst, line []byte) []byte {
	for _, b := range line {
		if nb, ok := normalize(b); ok {
			dst = append(dst, nb)
		}
	}
	return dst
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}

// LoadAll reads every record in path into memory, fully normalized, for the
// whole-sequence and chunked (core/chunk) delivery paths. A FASTA stream
// whose first bytes precede any ">" header is not rejected: it is assigned
// the synthetic name chromosome_1 and logged at warn, mirroring the legacy
// reference's own fallback for malformed leading records.
func LoadAll(path string, log logrus.FieldLogger) ([]Chromosome, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)

	var (
		out      []Chromosome
		name     string
		seq      []byte
		anon     int
		sawAny   bool
	)
	flush := func() {
		if name == "" && len(seq) == 0 {
			return
		}
		out = append(out, Chromosome{Name: name, Seq: seq})
	}
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if sawAny {
				flush()
			}
			sawAny = true
			name = parseHeaderID(line[1:])
			seq = nil
			continue
		}
		if !sawAny {
			anon++
			name = fmt.Sprintf("chromosome_%d", anon)
			log.WithField("path", path).Warn("fasta: sequence data before any header, using synthetic chromosome name")
			sawAny = true
		}
		seq = appendNormalized(seq, line)
	}
	if err := sc.Err(); err != nil {
		return nil, &IoFailure{Path: path, Err: err}
	}
	if sawAny {
		flush()
	}
	if len(out) == 0 {
		return nil, &InputMalformed{Path: path, Reason: "no FASTA records found"}
	}
	return out, nil
}
