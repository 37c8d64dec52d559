package ux

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// StepHeader prints a timestamped build step header.
func StepHeader(index, total int, name string) {
	fmt.Printf("%s[%s]%s %s▸ Step %d/%d:%s %s\n",
		Dim, timestamp(), Reset, Cyan, index+1, total, Reset, name)
}

// StepComplete prints a step completion message.
func StepComplete(index int, duration time.Duration) {
	fmt.Printf("%s[%s]%s  %s✓ Step %d complete (%s)%s\n",
		Dim, timestamp(), Reset, Green, index+1, duration.Round(time.Millisecond), Reset)
}

// StepFail prints a step failure message.
func StepFail(index int, name, errMsg string) {
	fmt.Printf("%s[%s]%s  %s✗ Step %d (%s) failed: %s%s\n",
		Dim, timestamp(), Reset, Red, index+1, name, errMsg, Reset)
}

// RetryHint prints how to re-run a failed build with debug output.
func RetryHint(configPath string) {
	if configPath == "" {
		return
	}
	fmt.Printf("\n%sRetry:%s nasdeck build %s --verbose\n", Yellow, Reset, configPath)
}

// ImportSummary prints the per-type counts of a merge.
func ImportSummary(added map[string]int, skipped []string) {
	keys := make([]string, 0, len(added))
	for k := range added {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s×%d", k, added[k])
	}
	if len(parts) == 0 {
		parts = []string{"nothing"}
	}
	fmt.Printf("  %s+ merged:%s %s\n", Cyan, Reset, strings.Join(parts, " "))
	if len(skipped) > 0 {
		fmt.Printf("  %s– skipped:%s %s\n", Dim, Reset, strings.Join(skipped, " "))
	}
}

// Success prints a final success message.
func Success(total int, output string) {
	fmt.Printf("\n%s[%s]%s  %s%s══ %d steps complete → %s ══%s\n\n",
		Dim, timestamp(), Reset, Bold, Green, total, output, Reset)
}
