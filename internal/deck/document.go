package deck

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Document is an in-memory deck: executive control, case control and bulk
// data records grouped by type key.
type Document struct {
	// Sol is the solution sequence number; zero means unset.
	Sol int
	// Executive holds executive control statements other than SOL and CEND.
	Executive []string

	caseControl *CaseControlDeck
	types       []string
	records     map[string][]*Record
}

// New returns an empty document.
func New() *Document {
	return &Document{records: make(map[string][]*Record)}
}

// SetSolution sets the solution sequence.
func (d *Document) SetSolution(sol int) {
	d.Sol = sol
}

// SetCaseControl replaces the case control section.
func (d *Document) SetCaseControl(cc *CaseControlDeck) {
	d.caseControl = cc
}

// CaseControl returns the case control section, or nil when none is set.
func (d *Document) CaseControl() *CaseControlDeck {
	return d.caseControl
}

// AddRecord appends a record under typ. The type key is upper-cased.
func (d *Document) AddRecord(typ string, payload, comment []string) *Record {
	typ = strings.ToUpper(strings.TrimSpace(typ))
	r := &Record{
		Type:    typ,
		Comment: append([]string(nil), comment...),
		Payload: append([]string(nil), payload...),
	}
	if _, ok := d.records[typ]; !ok {
		d.types = append(d.types, typ)
	}
	d.records[typ] = append(d.records[typ], r)
	return r
}

// AddParam appends a free-field PARAM record for key with the given values.
func (d *Document) AddParam(key string, values []any) *Record {
	fields := make([]string, 0, len(values)+2)
	fields = append(fields, "PARAM", strings.ToUpper(key))
	for _, v := range values {
		fields = append(fields, FormatValue(v))
	}
	return d.AddRecord("PARAM", []string{strings.Join(fields, ",")}, nil)
}

// Types returns the type keys present, in the order first added.
func (d *Document) Types() []string {
	return append([]string(nil), d.types...)
}

// Records returns the records stored under typ.
func (d *Document) Records(typ string) []*Record {
	return d.records[strings.ToUpper(typ)]
}

// RecordsByType returns the records for each requested type key that is
// present in the document.
func (d *Document) RecordsByType(keys ...string) map[string][]*Record {
	out := make(map[string][]*Record, len(keys))
	for _, k := range keys {
		k = strings.ToUpper(k)
		if rs, ok := d.records[k]; ok {
			out[k] = rs
		}
	}
	return out
}

// CardCount returns the number of records per type key.
func (d *Document) CardCount() map[string]int {
	counts := make(map[string]int, len(d.types))
	for _, t := range d.types {
		counts[t] = len(d.records[t])
	}
	return counts
}

// Len returns the total number of records.
func (d *Document) Len() int {
	n := 0
	for _, rs := range d.records {
		n += len(rs)
	}
	return n
}

// Lookup returns the first record of type typ whose id is id.
func (d *Document) Lookup(typ string, id int) (*Record, error) {
	for _, r := range d.Records(typ) {
		if rid, ok := r.ID(); ok && rid == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("deck: no %s with id %d", strings.ToUpper(typ), id)
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	cp := New()
	cp.Sol = d.Sol
	cp.Executive = append([]string(nil), d.Executive...)
	if d.caseControl != nil {
		cp.caseControl = d.caseControl.clone()
	}
	for _, t := range d.types {
		cp.types = append(cp.types, t)
		rs := make([]*Record, len(d.records[t]))
		for i, r := range d.records[t] {
			rs[i] = r.clone()
		}
		cp.records[t] = rs
	}
	return cp
}

// Stats returns a short summary of the document contents.
func (d *Document) Stats() string {
	var b strings.Builder
	b.WriteString("---deck statistics---\n")
	if d.Sol != 0 {
		fmt.Fprintf(&b, "SOL %d\n", d.Sol)
	}
	if d.caseControl != nil {
		fmt.Fprintf(&b, "subcases: %d\n", len(d.caseControl.subcases))
	}
	fmt.Fprintf(&b, "records: %d\n", d.Len())
	for _, t := range d.types {
		fmt.Fprintf(&b, "  %-8s : %d\n", t, len(d.records[t]))
	}
	return b.String()
}

// FormatValue renders a parameter value as a deck field. Reals always carry
// a decimal point so the solver does not read them as integers.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "YES"
		}
		return "NO"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return formatReal(float64(x))
	case float64:
		return formatReal(x)
	default:
		return fmt.Sprint(v)
	}
}

func formatReal(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'G', -1, 64)
	}
	s := strings.ToUpper(strconv.FormatFloat(f, 'G', -1, 64))
	if strings.Contains(s, ".") {
		return s
	}
	if i := strings.IndexByte(s, 'E'); i >= 0 {
		return s[:i] + "." + s[i:]
	}
	return s + "."
}
