// core/grunscan/scanner_test.go
package grunscan

import (
	"reflect"
	"testing"
)

func TestScannerFindsMaximalRuns(t *testing.T) {
	data := []byte("aaGGGaaGaaggggGaa")
	sc := New(data, 2)

	var got []Run
	for {
		r, ok := sc.Next()
		if !ok {
			break
		}
		got = append(got, r)
	}

	want := []Run{
		{Start: 2, Length: 3},  // GGG
		{Start: 10, Length: 5}, // ggggG
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestScannerRestartableFromOffset(t *testing.T) {
	data := []byte("GGGaaaGGGGaaaGGG")
	sc := NewFrom(data, 4, 2)

	r, ok := sc.Next()
	if !ok {
		t.Fatal("expected a run")
	}
	if r.Start != 6 || r.Length != 4 {
		t.Errorf("got %+v, want Start=6 Length=4", r)
	}
}

func TestScannerSkipsShortRuns(t *testing.T) {
	data := []byte("GaGGaGGG")
	sc := New(data, 3)
	r, ok := sc.Next()
	if !ok {
		t.Fatal("expected exactly one run")
	}
	if r.Start != 5 || r.Length != 3 {
		t.Errorf("got %+v, want Start=5 Length=3", r)
	}
	if _, ok := sc.Next(); ok {
		t.Error("expected no further runs")
	}
}

func TestScannerEmptyInput(t *testing.T) {
	sc := New(nil, 2)
	if _, ok := sc.Next(); ok {
		t.Error("expected no runs on empty input")
	}
}
