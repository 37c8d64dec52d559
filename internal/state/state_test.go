package state

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
)

func TestLoad_NoExistingManifest(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatal(err)
	}
	if m != nil {
		t.Fatalf("expected nil manifest, got %+v", m)
	}
}

func TestNewManifest_AssignsID(t *testing.T) {
	m := NewManifest(uuid.Nil, "out.bdf")
	if _, err := uuid.Parse(m.ID); err != nil {
		t.Fatalf("ID %q is not a uuid: %v", m.ID, err)
	}
	if m.Status != StatusRunning {
		t.Fatalf("Status = %q, want running", m.Status)
	}

	id := uuid.New()
	if got := NewManifest(id, "out.bdf").ID; got != id.String() {
		t.Fatalf("ID = %q, want %q", got, id)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bdf.manifest.json")
	original := NewManifest(uuid.New(), "out.bdf")
	original.Name = "panel"
	original.Sol = 145
	original.Subcases = 2
	original.Records = map[string]int{"GRID": 4, "PARAM": 2}
	original.Imports = []ImportRecord{{Path: "base.bdf", Stage: "before", Added: map[string]int{"GRID": 4}, Skipped: []string{"PARAM"}}}
	original.Timing.AddStart("export")
	original.Timing.AddEnd("export")
	original.Status = StatusCompleted

	if err := original.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(original, loaded, cmpopts.IgnoreUnexported(Timing{})); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFail(t *testing.T) {
	m := NewManifest(uuid.Nil, "out.bdf")
	m.Fail(StatusFailed, errors.New("boom"))
	if m.Status != StatusFailed || m.Error != "boom" {
		t.Fatalf("Status=%q Error=%q", m.Status, m.Error)
	}
}

func TestManifestPath(t *testing.T) {
	if got := ManifestPath("out/deck.bdf"); got != "out/deck.bdf.manifest.json" {
		t.Fatalf("got %q", got)
	}
}

func TestEnsureDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "deck.bdf")
	if err := EnsureDir(path); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(path, []byte("ENDDATA\n"), 0644); err != nil {
		t.Fatalf("directory not usable: %v", err)
	}
}

func TestTiming_Duration(t *testing.T) {
	var tm Timing
	tm.AddStart("params")
	if d := tm.Duration("params"); d != "" {
		t.Fatalf("open entry reported duration %q", d)
	}
	tm.AddEnd("params")
	if d := tm.Duration("params"); d == "" {
		t.Fatal("expected a duration after AddEnd")
	}
	if d := tm.Duration("export"); d != "" {
		t.Fatalf("unknown step reported duration %q", d)
	}
}
