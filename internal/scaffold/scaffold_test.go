package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jorge-barreto/nasdeck/internal/config"
	"github.com/jorge-barreto/nasdeck/internal/deck"
)

func TestInit_CreatesFiles(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	for _, path := range []string{
		ConfigFile,
		filepath.Join("model", "plate.bdf"),
		filepath.Join("model", "eigrl.bdf"),
	} {
		info, err := os.Stat(filepath.Join(dir, path))
		if err != nil {
			t.Fatalf("%s not created: %v", path, err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s is empty", path)
		}
	}
}

func TestInit_GeneratedConfigIsValid(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cfg, err := config.Load(filepath.Join(dir, ConfigFile))
	if err != nil {
		t.Fatalf("config.Load failed on generated config: %v", err)
	}
	if cfg.Sol != 103 {
		t.Fatalf("Sol = %d, want 103", cfg.Sol)
	}
	if len(cfg.Subcases) != 1 || cfg.Subcases[0].SPC != "1" {
		t.Fatalf("subcases = %+v", cfg.Subcases)
	}
	var stages []string
	for _, imp := range cfg.Imports {
		if _, err := os.Stat(cfg.Resolve(imp.Path)); err != nil {
			t.Fatalf("import %s missing: %v", imp.Path, err)
		}
		stages = append(stages, imp.Stage)
	}
	if diff := cmp.Diff([]string{config.StageBefore, config.StageAfter}, stages); diff != "" {
		t.Fatalf("stages mismatch (-want +got):\n%s", diff)
	}
}

func TestInit_SampleDeckParses(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatal(err)
	}
	doc, err := deck.ReadFile(filepath.Join(dir, "model", "plate.bdf"))
	if err != nil {
		t.Fatal(err)
	}
	if got := len(doc.Records("GRID")); got != 4 {
		t.Fatalf("GRID count = %d, want 4", got)
	}
	if err := doc.Validate(); err != nil {
		t.Fatalf("sample deck invalid: %v", err)
	}
}

func TestInit_FailsIfConfigExists(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("sol: 101\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := Init(dir)
	if err == nil {
		t.Fatal("expected error when analysis.yaml already exists")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected error containing 'already exists', got: %s", err)
	}
}
