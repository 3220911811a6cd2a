// core/chunk/scheduler_test.go
package chunk

import (
	"context"
	"strings"
	"testing"

	"g4scan-core/consolidate"
	"g4scan-core/scanlimits"
	"g4scan-core/seqbuf"
)

func TestNewRejectsInvalidLimits(t *testing.T) {
	_, err := New(scanlimits.ScanLimits{MinTetrads: 1}, 1)
	if err == nil {
		t.Fatal("expected an error for invalid limits")
	}
}

func TestNewDefaultsNonPositiveWorkers(t *testing.T) {
	s, err := New(scanlimits.Default(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if s.workers != 1 {
		t.Errorf("workers = %d, want 1", s.workers)
	}
}

// The fast path (scheduler.go, sequences no longer than one chunk span plus
// the overlap tail) scans
// in a single window and returns raw hits straight from the engine, so a
// canonical count assertion here needs the same consolidation pass the
// scheduler's caller is responsible for running before looking at a hit
// count.
func TestScanShortSequenceFastPath(t *testing.T) {
	data := []byte("GGGAGGGAGGGAGGG")
	s, err := New(scanlimits.Default(), 4)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := s.Scan(context.Background(), seqbuf.New(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) == 0 {
		t.Fatal("expected at least one raw hit")
	}
	hits, _ := consolidate.Consolidate(raw)
	if len(hits) != 1 {
		t.Fatalf("got %d final hits, want 1: %+v", len(hits), hits)
	}
	h := hits[0]
	if h.Start != 0 || h.Length != len(data) {
		t.Errorf("got Start=%d Length=%d, want Start=0 Length=%d", h.Start, h.Length, len(data))
	}
}

// Scenario 5 (cross-window hit): a single G4 straddling a window boundary is
// still fully captured thanks to the overlap tail, at whatever window it is
// seeded in.
func TestScanCrossWindowHit(t *testing.T) {
	limits := scanlimits.Default()
	span := chunkSpan(limits)

	filler := strings.Repeat("t", span-5)
	motif := "GGGAGGGAGGGAGGG"
	seq := filler + motif + strings.Repeat("t", 2000)
	data := []byte(seq)

	s, err := New(limits, 4)
	if err != nil {
		t.Fatal(err)
	}
	hits, err := s.Scan(context.Background(), seqbuf.New(data))
	if err != nil {
		t.Fatal(err)
	}

	found := false
	wantStart := len(filler)
	for _, h := range hits {
		if h.Start == wantStart && h.Length == len(motif) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a hit at start=%d length=%d straddling the window boundary, got %+v", wantStart, len(motif), hits)
	}
}

func TestWindowsCoverWholeSequence(t *testing.T) {
	limits := scanlimits.Default()
	ws := windows(200, limits)
	if len(ws) == 0 {
		t.Fatal("expected at least one window")
	}
	if ws[0].start != 0 {
		t.Errorf("first window start = %d, want 0", ws[0].start)
	}
	last := ws[len(ws)-1]
	if last.primaryEnd != 200 {
		t.Errorf("last window primaryEnd = %d, want 200", last.primaryEnd)
	}
	for i := 1; i < len(ws); i++ {
		if ws[i].start != ws[i-1].primaryEnd {
			t.Errorf("window %d starts at %d, want %d (contiguous primary regions)", i, ws[i].start, ws[i-1].primaryEnd)
		}
	}
}
