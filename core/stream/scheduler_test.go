// core/stream/scheduler_test.go
package stream

import (
	"testing"

	"g4scan-core/scanlimits"
)

func TestNewRejectsInvalidLimits(t *testing.T) {
	if _, err := New(scanlimits.ScanLimits{MinTetrads: 1}); err == nil {
		t.Fatal("expected an error for invalid limits")
	}
}

func TestPushFinalizeFindsHitAcrossPushes(t *testing.T) {
	limits := scanlimits.Default()
	s, err := New(limits)
	if err != nil {
		t.Fatal(err)
	}

	motif := "GGGAGGGAGGGAGGG"
	// Split the motif itself across two Push calls, as a FASTA reader might
	// split a sequence across successive read buffers.
	s.Push([]byte(motif[:8]))
	s.Push([]byte(motif[8:]))

	final, _, families := s.Finalize()
	if len(final) != 1 {
		t.Fatalf("got %d final hits, want 1: %+v", len(final), final)
	}
	if final[0].Start != 0 || final[0].Length != len(motif) {
		t.Errorf("got Start=%d Length=%d, want Start=0 Length=%d", final[0].Start, final[0].Length, len(motif))
	}
	if len(families) != 1 {
		t.Errorf("got %d families, want 1", len(families))
	}
}

func TestResetClearsState(t *testing.T) {
	s, err := New(scanlimits.Default())
	if err != nil {
		t.Fatal(err)
	}
	s.Push([]byte("GGGAGGGAGGGAGGG"))
	s.Reset()
	if len(s.buf) != 0 || s.offset != 0 || s.raw != nil {
		t.Error("Reset did not clear scheduler state")
	}
}

func TestFinalizeOnEmptyInputIsSafe(t *testing.T) {
	s, err := New(scanlimits.Default())
	if err != nil {
		t.Fatal(err)
	}
	final, raw, families := s.Finalize()
	if final != nil || raw != nil || families != nil {
		t.Errorf("expected nil results for empty stream, got %v %v %v", final, raw, families)
	}
}
