// core/g4/g4_test.go
package g4

import (
	"context"
	"math/rand"
	"testing"

	"g4scan-core/scanlimits"
	"g4scan-core/stream"
)

func TestScanSequenceCanonicalHit(t *testing.T) {
	data := []byte("GGGAGGGAGGGAGGG")
	res, err := ScanSequence(context.Background(), data, scanlimits.Default(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Final) != 1 {
		t.Fatalf("got %d final hits, want 1", len(res.Final))
	}
}

func TestScanSequenceRejectsInvalidLimits(t *testing.T) {
	_, err := ScanSequence(context.Background(), []byte("GGGG"), scanlimits.ScanLimits{MinTetrads: 1}, 1)
	if err == nil {
		t.Fatal("expected an error for invalid limits")
	}
}

// Scenario 6 / P2: a whole-sequence chunked scan and a streaming scan of the
// identical bytes, pushed in irregular small pieces, must produce
// byte-identical final hit lists.
func TestStreamingAndChunkedPathsAgree(t *testing.T) {
	seq := syntheticChromosome(20000)

	chunked, err := ScanSequence(context.Background(), seq, scanlimits.Default(), 4)
	if err != nil {
		t.Fatal(err)
	}

	sched, err := stream.New(scanlimits.Default())
	if err != nil {
		t.Fatal(err)
	}
	for _, piece := range splitIrregularly(seq, 17) {
		sched.Push(piece)
	}
	streamed, _, _ := sched.Finalize()

	if len(chunked.Final) != len(streamed) {
		t.Fatalf("chunked produced %d final hits, streamed produced %d", len(chunked.Final), len(streamed))
	}
	for i := range chunked.Final {
		a, b := chunked.Final[i], streamed[i]
		if a.Start != b.Start || a.Length != b.Length || a.GScore != b.GScore ||
			a.Y1 != b.Y1 || a.Y2 != b.Y2 || a.Y3 != b.Y3 || a.Tetrads != b.Tetrads {
			t.Errorf("hit %d differs: chunked=%+v streamed=%+v", i, a, b)
		}
	}
}

// syntheticChromosome builds a deterministic pseudo-random background of
// acgt with several G4 motifs planted at different offsets, including one
// (at 10040) straddling the window boundary at 10048 under the default
// 64-byte chunk span.
func syntheticChromosome(n int) []byte {
	rng := rand.New(rand.NewSource(42))
	bases := []byte("acgt")
	data := make([]byte, n)
	for i := range data {
		data[i] = bases[rng.Intn(len(bases))]
	}
	motifs := []string{"gggagggagggaggg", "ggggaaaagggaaaagggaaaagggg"}
	offsets := []int{100, 5000, 10040, 15000}
	for i, off := range offsets {
		m := motifs[i%len(motifs)]
		copy(data[off:off+len(m)], m)
	}
	return data
}

func splitIrregularly(data []byte, step int) [][]byte {
	var pieces [][]byte
	for i := 0; i < len(data); {
		n := step + (i % 5)
		if i+n > len(data) {
			n = len(data) - i
		}
		pieces = append(pieces, data[i:i+n])
		i += n
	}
	return pieces
}
