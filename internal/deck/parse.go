package deck

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadFile parses the deck stored at path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

type section int

const (
	sectionExecutive section = iota
	sectionCase
	sectionBulk
)

// Parse reads a deck. Input containing BEGIN BULK is split into executive,
// case control and bulk sections; anything else is read as bulk data only.
// Comment lines directly above a bulk record become its comment block,
// comment lines between a record and its continuation stay in its payload,
// and reading stops at ENDDATA.
func Parse(r io.Reader) (*Document, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	doc := New()
	sec := sectionBulk
	for _, l := range lines {
		if isBeginBulk(l) {
			sec = sectionExecutive
			break
		}
	}

	var (
		pending []string
		current *Record
		scope   int
	)
	for n, l := range lines {
		upper := strings.ToUpper(strings.TrimSpace(l))
		switch sec {
		case sectionExecutive:
			if upper == "" || IsComment(l) {
				continue
			}
			if isBeginBulk(l) {
				sec = sectionBulk
				continue
			}
			if upper == "CEND" {
				sec = sectionCase
				doc.caseControl = NewCaseControlDeck()
				continue
			}
			if sol, ok := parseSol(upper); ok {
				doc.Sol = sol
				continue
			}
			doc.Executive = append(doc.Executive, strings.TrimSpace(l))
		case sectionCase:
			if upper == "" || IsComment(l) {
				continue
			}
			if isBeginBulk(l) {
				sec = sectionBulk
				continue
			}
			if doc.caseControl == nil {
				doc.caseControl = NewCaseControlDeck()
			}
			if strings.HasPrefix(upper, "SUBCASE") {
				id, err := strconv.Atoi(strings.TrimSpace(upper[len("SUBCASE"):]))
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid SUBCASE statement %q", n+1, l)
				}
				if _, err := doc.caseControl.CreateSubcase(id); err != nil {
					return nil, fmt.Errorf("line %d: %w", n+1, err)
				}
				scope = id
				continue
			}
			stmt := strings.TrimSpace(l)
			if scope == 0 {
				doc.caseControl.AddGlobal(stmt)
			} else if err := doc.caseControl.AddToSubcase(scope, stmt); err != nil {
				return nil, fmt.Errorf("line %d: %w", n+1, err)
			}
		case sectionBulk:
			if isBeginBulk(l) {
				continue
			}
			if IsComment(l) {
				pending = append(pending, l)
				continue
			}
			if strings.TrimSpace(l) == "" {
				continue
			}
			if upper == EndData || strings.HasPrefix(upper, EndData+" ") {
				return doc, nil
			}
			if current != nil && isContinuation(l) {
				// comments between continuation lines stay inside the record
				current.Payload = append(current.Payload, pending...)
				current.Payload = append(current.Payload, l)
				pending = nil
				continue
			}
			typ := TypeKey(l)
			if typ == "" {
				return nil, fmt.Errorf("line %d: cannot determine record type of %q", n+1, l)
			}
			current = doc.AddRecord(typ, []string{l}, pending)
			pending = nil
		}
	}
	return doc, nil
}

func isBeginBulk(line string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(line)), "BEGIN BULK")
}

func isContinuation(line string) bool {
	switch line[0] {
	case ' ', '\t', '+', '*', ',':
		return true
	}
	return false
}

func parseSol(upper string) (int, bool) {
	fields := strings.Fields(upper)
	if len(fields) != 2 || fields[0] != "SOL" {
		return 0, false
	}
	sol, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, false
	}
	return sol, true
}
