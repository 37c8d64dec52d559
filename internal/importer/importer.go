// Package importer transplants bulk data records from one deck into another.
package importer

import (
	"fmt"
	"strings"

	"github.com/jorge-barreto/nasdeck/internal/deck"
	"github.com/jorge-barreto/nasdeck/internal/logging"
	"go.uber.org/zap"
)

// Source is a deck records are read from. Types returns normalized type
// keys in first-seen order and RecordsByType fetches them.
type Source interface {
	Types() []string
	RecordsByType(keys ...string) map[string][]*deck.Record
}

// Target is a deck records are added to.
type Target interface {
	AddRecord(typ string, payload, comment []string) *deck.Record
}

// ImportError reports a record that cannot be transplanted because it has
// no payload once its comment lines are removed.
type ImportError struct {
	Type  string
	Index int
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("importer: %s record %d has no payload after its comment block", e.Type, e.Index+1)
}

// Options controls a merge.
type Options struct {
	// Sanitize enables BlockList filtering.
	Sanitize bool
	// BlockList names record types that are skipped when Sanitize is set.
	// There is no implicit default; callers pass the list they want.
	BlockList []string
	Logger    *zap.Logger
}

// Result summarises a merge.
type Result struct {
	Added   map[string]int
	Skipped []string
}

// Merge copies every record of src into dst under the same type key, in the
// order src lists its types. Merge stops at the first record that fails to
// transplant; records already added to dst stay there.
func Merge(src Source, dst Target, opts Options) (*Result, error) {
	log := logging.OrNop(opts.Logger)
	blocked := make(map[string]bool, len(opts.BlockList))
	if opts.Sanitize {
		for _, k := range opts.BlockList {
			blocked[strings.ToUpper(strings.TrimSpace(k))] = true
		}
	}

	res := &Result{Added: make(map[string]int)}
	var keys []string
	for _, typ := range src.Types() {
		if blocked[strings.ToUpper(typ)] {
			res.Skipped = append(res.Skipped, typ)
			log.Debug("skipping blocked record type", zap.String("type", typ))
			continue
		}
		keys = append(keys, typ)
	}

	records := src.RecordsByType(keys...)
	for _, typ := range keys {
		for i, r := range records[typ] {
			comment, payload := SplitComment(r.Lines())
			if blank(payload) {
				return res, &ImportError{Type: typ, Index: i}
			}
			dst.AddRecord(typ, payload, comment)
			res.Added[typ]++
		}
		log.Debug("merged record type", zap.String("type", typ), zap.Int("count", res.Added[typ]))
	}
	return res, nil
}

// SplitComment peels the leading comment lines off a serialized record.
// Peeling stops at the first line that is empty or does not start with '$',
// or when no lines remain. The rest is returned unchanged as the payload.
func SplitComment(lines []string) (comment, payload []string) {
	i := 0
	for i < len(lines) && deck.IsComment(lines[i]) {
		i++
	}
	comment = append([]string(nil), lines[:i]...)
	payload = append([]string(nil), lines[i:]...)
	return comment, payload
}

// blank reports whether lines hold nothing but whitespace.
func blank(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}
