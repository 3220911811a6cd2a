// Package seqbuf holds the immutable, shareable byte buffers that back a
// single chromosome or inline sequence scan.
package seqbuf

// Buffer is an immutable, lowercase-normalized byte buffer representing one
// logical sequence. Normalization (lowercasing, stripping non-alphabetic
// bytes) is the loader's job, not the Buffer's; the Buffer only guards
// against mutation after construction.
//
// Go's garbage collector already gives every reader of data a refcounted
// share of the backing array for free: a Buffer is cheap to pass by pointer,
// and the bytes are only released once the last reference is dropped. No
// explicit refcount is needed.
type Buffer struct {
	data []byte
}

// New builds a Buffer over data. The caller must not mutate data afterward;
// New does not copy, matching the "never materialize a copy" discipline
// windows and scanners depend on.
func New(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int { return len(b.data) }

// At returns the byte at index i.
func (b *Buffer) At(i int) byte { return b.data[i] }

// Bytes returns the full backing slice. Callers must treat it as read-only;
// the Buffer never reslices or appends to it after construction.
func (b *Buffer) Bytes() []byte { return b.data }

// View returns the byte range [start, start+length) without copying.
func (b *Buffer) View(start, length int) []byte {
	return b.data[start : start+length]
}

// Slice identifies a (buffer, start, length) triple. Two Slices have equal
// Key values when their byte contents match, regardless of which Buffer (and
// therefore which window) they were cut from - this is what lets RawHits
// produced by independent windows collide correctly during dedup.
type Slice struct {
	buf    *Buffer
	start  int
	length int
}

// NewSlice identifies the byte range [start, start+length) of buf.
func NewSlice(buf *Buffer, start, length int) Slice {
	return Slice{buf: buf, start: start, length: length}
}

// Start returns the 0-based start offset within the owning buffer.
func (s Slice) Start() int { return s.start }

// Length returns the slice length in bytes.
func (s Slice) Length() int { return s.length }

// Bytes returns the underlying bytes, lowercase, without copying.
func (s Slice) Bytes() []byte { return s.buf.View(s.start, s.length) }

// Key returns a content-hashable representation of the slice suitable for
// use as (part of) a map key. Go strings compare and hash by content, so
// converting once here is the idiomatic stand-in for a custom byte-content
// hasher: two Slices cut from different Buffers with identical bytes produce
// identical keys.
func (s Slice) Key() string { return string(s.Bytes()) }

// Uppercase returns the slice's bytes uppercased, for export-time display.
// Sequence strings are deliberately not materialized until this is called.
func (s Slice) Uppercase() string {
	raw := s.Bytes()
	out := make([]byte, len(raw))
	for i, c := range raw {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
