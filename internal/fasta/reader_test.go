// internal/fasta/reader_test.go
package fasta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.PanicLevel)
	return l
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadAllParsesRecordsAndNormalizes(t *testing.T) {
	p := writeTemp(t, "in.fa", ">chr1 extra description\nGGGAGGGA\nGGGAGGG\n>chr2\nacgtACGT\n")
	chroms, err := LoadAll(p, discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	if len(chroms) != 2 {
		t.Fatalf("got %d chromosomes, want 2", len(chroms))
	}
	if chroms[0].Name != "chr1" {
		t.Errorf("name = %q, want chr1 (header stops at first whitespace)", chroms[0].Name)
	}
	if got, want := string(chroms[0].Seq), "gggagggagggaggg"; got != want {
		t.Errorf("seq = %q, want %q", got, want)
	}
	if got, want := string(chroms[1].Seq), "acgtacgt"; got != want {
		t.Errorf("seq = %q, want %q (case-folded)", got, want)
	}
}

func TestLoadAllStripsNonAlphabetic(t *testing.T) {
	p := writeTemp(t, "in.fa", ">chr1\nGGG-AAA 123\n")
	chroms, err := LoadAll(p, discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(chroms[0].Seq), "gggaaa"; got != want {
		t.Errorf("seq = %q, want %q", got, want)
	}
}

func TestLoadAllFallsBackToSyntheticName(t *testing.T) {
	p := writeTemp(t, "in.fa", "GGGAGGGAGGGAGGG\n>chr2\nACGT\n")
	chroms, err := LoadAll(p, discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	if len(chroms) != 2 {
		t.Fatalf("got %d chromosomes, want 2", len(chroms))
	}
	if chroms[0].Name != "chromosome_1" {
		t.Errorf("name = %q, want chromosome_1", chroms[0].Name)
	}
}

func TestLoadAllRejectsEmptyInput(t *testing.T) {
	p := writeTemp(t, "empty.fa", "")
	if _, err := LoadAll(p, discardLogger()); err == nil {
		t.Fatal("expected InputMalformed for an empty file")
	} else if _, ok := err.(*InputMalformed); !ok {
		t.Fatalf("got %T, want *InputMalformed", err)
	}
}

func TestStreamRecordsDrivesPushAndFinalize(t *testing.T) {
	p := writeTemp(t, "in.fa", ">chr1\nGGGAGG\nGAGGG\n>chr2\nACGTACGT\n")

	var pushed []string
	var finalized []string
	err := StreamRecords(p, discardLogger(),
		func(name string, chunk []byte) { pushed = append(pushed, name+":"+string(chunk)) },
		func(name string) { finalized = append(finalized, name) },
	)
	if err != nil {
		t.Fatal(err)
	}
	if len(finalized) != 2 || finalized[0] != "chr1" || finalized[1] != "chr2" {
		t.Errorf("finalized = %v, want [chr1 chr2]", finalized)
	}
	if len(pushed) == 0 {
		t.Fatal("expected at least one push")
	}
}
