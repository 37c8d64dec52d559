package state

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates the directory that will hold path.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output dir %s: %w", dir, err)
	}
	return nil
}

// ManifestPath returns the manifest location for an output deck.
func ManifestPath(output string) string {
	return output + ".manifest.json"
}
