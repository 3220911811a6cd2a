// Package grunscan enumerates maximal runs of g/G bytes, the seed source for
// the candidate engine.
package grunscan

import "bytes"

// Run is a maximal run of g/G bytes: [Start, Start+Length) in the
// coordinates of the data the Scanner was built over.
type Run struct {
	Start  int
	Length int
}

// Scanner walks a byte slice once, left to right, yielding every maximal
// run of g/G bytes whose length is at least minTetrads. It never
// materializes a copy of data and is restartable from an arbitrary offset
// via NewFrom.
type Scanner struct {
	data       []byte
	cursor     int
	minTetrads int
}

// New builds a Scanner over data starting at byte offset 0.
func New(data []byte, minTetrads int) *Scanner {
	return &Scanner{data: data, minTetrads: minTetrads}
}

// NewFrom builds a Scanner restarted from an arbitrary byte offset within
// data. Run coordinates returned by Next are expressed in data's own
// coordinate system (i.e. already shifted by offset), so callers never have
// to re-add it themselves.
func NewFrom(data []byte, offset, minTetrads int) *Scanner {
	return &Scanner{data: data, cursor: offset, minTetrads: minTetrads}
}

// nextG finds the index of the next 'g' or 'G' byte at or after from. This
// is the vectorized memchr2-equivalent primitive the contract calls for:
// bytes.IndexByte is implemented with SIMD-width word scanning in the Go
// runtime, and calling it twice and taking the minimum costs nothing extra
// in the common case where one of the two bytes dominates the alphabet.
func nextG(data []byte, from int) int {
	rest := data[from:]
	lower := bytes.IndexByte(rest, 'g')
	upper := bytes.IndexByte(rest, 'G')
	switch {
	case lower < 0 && upper < 0:
		return -1
	case lower < 0:
		return from + upper
	case upper < 0:
		return from + lower
	case lower < upper:
		return from + lower
	default:
		return from + upper
	}
}

func isG(b byte) bool { return b == 'g' || b == 'G' }

// Next returns the next maximal run of g/G bytes of length >= minTetrads,
// in ascending run-start order, or ok=false once the data is exhausted.
func (s *Scanner) Next() (Run, bool) {
	n := len(s.data)
	for s.cursor < n {
		start := nextG(s.data, s.cursor)
		if start < 0 {
			s.cursor = n
			return Run{}, false
		}
		end := start
		for end < n && isG(s.data[end]) {
			end++
		}
		s.cursor = end
		if end < n {
			s.cursor = end + 1
		} else {
			s.cursor = n
		}
		length := end - start
		if length >= s.minTetrads {
			return Run{Start: start, Length: length}, true
		}
	}
	return Run{}, false
}
