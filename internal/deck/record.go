package deck

import (
	"strconv"
	"strings"
)

// CommentPrefix marks a comment line in a deck.
const CommentPrefix = "$"

// Record is a single bulk data entry: a type key, the text lines that make up
// the entry, and the comment lines written directly above it.
type Record struct {
	Type    string
	Comment []string
	Payload []string
}

// Lines serializes the record as comment lines followed by payload lines.
func (r *Record) Lines() []string {
	lines := make([]string, 0, len(r.Comment)+len(r.Payload))
	lines = append(lines, r.Comment...)
	lines = append(lines, r.Payload...)
	return lines
}

func (r *Record) String() string {
	return strings.Join(r.Lines(), "\n")
}

// Fields splits the first payload line into fields. Free-field lines are
// split on commas and lines whose first column holds several blank-separated
// tokens are split on blanks. Everything else is read as fixed-field: 8
// character columns, or 16 character data columns after a large-field key.
func (r *Record) Fields() []string {
	if len(r.Payload) == 0 {
		return nil
	}
	line := strings.TrimRight(r.Payload[0], " \t\r")
	if strings.Contains(line, ",") {
		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}

	if len(strings.Fields(clip(line, 0, 8))) > 1 {
		return strings.Fields(line)
	}

	width := 8
	if len(line) >= 8 && strings.HasSuffix(strings.TrimSpace(line[:8]), "*") {
		width = 16
	}
	fields := []string{strings.TrimSpace(clip(line, 0, 8))}
	for start := 8; start < len(line) && len(fields) < 9; start += width {
		fields = append(fields, strings.TrimSpace(clip(line, start, start+width)))
	}
	return fields
}

// ID returns the integer in the record's second field, when there is one.
func (r *Record) ID() (int, bool) {
	fields := r.Fields()
	if len(fields) < 2 {
		return 0, false
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, false
	}
	return id, true
}

func (r *Record) clone() *Record {
	return &Record{
		Type:    r.Type,
		Comment: append([]string(nil), r.Comment...),
		Payload: append([]string(nil), r.Payload...),
	}
}

// IsComment reports whether line is a comment line. Only a '$' in the first
// column counts; indented or empty lines are not comments.
func IsComment(line string) bool {
	return line != "" && strings.HasPrefix(line, CommentPrefix)
}

// TypeKey extracts the normalized type key from the first line of a record.
func TypeKey(line string) string {
	first := line
	if i := strings.IndexByte(first, ','); i >= 0 {
		first = first[:i]
	} else {
		first = clip(first, 0, 8)
	}
	tokens := strings.Fields(first)
	if len(tokens) == 0 {
		return ""
	}
	first = strings.TrimSuffix(tokens[0], "*")
	return strings.ToUpper(first)
}

func clip(s string, start, end int) string {
	if start >= len(s) {
		return ""
	}
	if end > len(s) {
		end = len(s)
	}
	return s[start:end]
}
