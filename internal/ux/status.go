package ux

import (
	"fmt"

	"github.com/jorge-barreto/nasdeck/internal/deck"
	"github.com/jorge-barreto/nasdeck/internal/state"
)

// RenderStats prints a summary of a deck and, when available, the manifest
// of the build that produced it.
func RenderStats(path string, doc *deck.Document, m *state.Manifest) {
	fmt.Printf("%sDeck:%s    %s\n", Bold, Reset, path)
	if doc.Sol != 0 {
		fmt.Printf("%sSOL:%s     %d\n", Bold, Reset, doc.Sol)
	}
	if m != nil {
		status := m.Status
		switch status {
		case state.StatusCompleted:
			status = Green + status + Reset
		case state.StatusFailed, state.StatusInterrupted:
			status = Red + status + Reset
		}
		fmt.Printf("%sBuild:%s   %s (%s)\n", Bold, Reset, m.ID, status)
	}

	if cc := doc.CaseControl(); cc != nil {
		fmt.Printf("\n%sCase control:%s\n", Bold, Reset)
		for _, l := range cc.Global {
			fmt.Printf("  %s%s%s\n", Dim, l, Reset)
		}
		for _, s := range cc.Subcases() {
			fmt.Printf("  SUBCASE %-6d %s%d statements%s\n", s.ID, Dim, len(s.Lines), Reset)
		}
	}

	fmt.Printf("\n%sRecords:%s %d\n", Bold, Reset, doc.Len())
	counts := doc.CardCount()
	for _, t := range doc.Types() {
		fmt.Printf("  %-10s %d\n", t, counts[t])
	}

	if m != nil && m.Timing != nil && len(m.Timing.Entries) > 0 {
		fmt.Printf("\n%sTiming:%s\n", Bold, Reset)
		for _, e := range m.Timing.Entries {
			fmt.Printf("  %-28s %s%s%s\n", e.Step, Dim, e.Duration, Reset)
		}
	}
	fmt.Println()
}
