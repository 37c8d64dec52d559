package state

import (
	"fmt"
	"sync"
	"time"
)

type TimingEntry struct {
	Step     string    `json:"step"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end,omitempty"`
	Duration string    `json:"duration,omitempty"`
}

// Timing records how long each build step took.
type Timing struct {
	mu      sync.Mutex
	Entries []TimingEntry `json:"entries"`
}

// AddStart appends a new timing entry for the given step.
func (t *Timing) AddStart(step string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Entries = append(t.Entries, TimingEntry{
		Step:  step,
		Start: time.Now(),
	})
}

// AddEnd records the end time for the most recent open entry of step.
func (t *Timing) AddEnd(step string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := len(t.Entries) - 1; i >= 0; i-- {
		if t.Entries[i].Step == step && t.Entries[i].End.IsZero() {
			t.Entries[i].End = time.Now()
			t.Entries[i].Duration = formatDuration(t.Entries[i].End.Sub(t.Entries[i].Start))
			break
		}
	}
}

// Duration returns the recorded duration of the most recent completed entry
// for step, or "" if there is none.
func (t *Timing) Duration(step string) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := len(t.Entries) - 1; i >= 0; i-- {
		if t.Entries[i].Step == step && t.Entries[i].Duration != "" {
			return t.Entries[i].Duration
		}
	}
	return ""
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %02ds", m, s)
}
