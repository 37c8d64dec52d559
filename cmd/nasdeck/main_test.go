package main

import (
	"path/filepath"
	"testing"

	"github.com/jorge-barreto/nasdeck/internal/config"
)

func TestOutputPath(t *testing.T) {
	dir := filepath.Join("/work", "flutter")
	tests := []struct {
		name   string
		flag   string
		output string
		want   string
	}{
		{"flag wins", "x.bdf", "out/deck.bdf", "x.bdf"},
		{"config output resolved", "", "out/deck.bdf", filepath.Join(dir, "out", "deck.bdf")},
		{"config name", "", "", filepath.Join(dir, "wing.bdf")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Output: tt.output, Dir: dir}
			if got := outputPath(tt.flag, cfg, "wing.yaml"); got != tt.want {
				t.Fatalf("outputPath = %q, want %q", got, tt.want)
			}
		})
	}
}
