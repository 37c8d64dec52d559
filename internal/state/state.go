package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"
)

const (
	StatusRunning     = "running"
	StatusCompleted   = "completed"
	StatusFailed      = "failed"
	StatusInterrupted = "interrupted"
)

// ImportRecord describes one deck merged during a build.
type ImportRecord struct {
	Path    string         `json:"path"`
	Stage   string         `json:"stage"`
	Added   map[string]int `json:"added"`
	Skipped []string       `json:"skipped,omitempty"`
}

// Manifest records what a build produced. It is written next to the output deck.
type Manifest struct {
	ID       string         `json:"id"`
	Name     string         `json:"name,omitempty"`
	Config   string         `json:"config,omitempty"`
	Output   string         `json:"output"`
	Status   string         `json:"status"` // running, completed, failed, interrupted
	Error    string         `json:"error,omitempty"`
	Sol      int            `json:"sol,omitempty"`
	Subcases int            `json:"subcases"`
	Records  map[string]int `json:"records,omitempty"`
	Imports  []ImportRecord `json:"imports,omitempty"`
	Started  time.Time      `json:"started"`
	Timing   *Timing        `json:"timing,omitempty"`
}

// NewManifest returns a running manifest for a build with the given id.
// A zero id gets a fresh random one.
func NewManifest(id uuid.UUID, output string) *Manifest {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Manifest{
		ID:      id.String(),
		Output:  output,
		Status:  StatusRunning,
		Started: time.Now(),
		Timing:  &Timing{},
	}
}

// Load reads a manifest. Returns nil and no error if the file does not exist.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Save writes the manifest to path.
func (m *Manifest) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, data, 0644)
}

// Fail marks the manifest failed (or interrupted) with err.
func (m *Manifest) Fail(status string, err error) {
	m.Status = status
	if err != nil {
		m.Error = err.Error()
	}
}
