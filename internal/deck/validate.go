package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var typeKeyRe = regexp.MustCompile(`^[A-Z][A-Z0-9]*$`)

// uniqueIDTypes lists record types whose id must be unique within the deck.
// Set-type records such as SPC1 or FORCE share ids on purpose and are absent.
var uniqueIDTypes = map[string]bool{
	"GRID": true, "CORD2R": true, "CORD2C": true, "CORD2S": true,
	"CQUAD4": true, "CTRIA3": true, "CBAR": true, "CBEAM": true, "CROD": true,
	"PSHELL": true, "PCOMP": true, "PBAR": true, "PROD": true,
	"MAT1": true, "MAT2": true, "MAT8": true,
	"EIGRL": true, "EIGR": true, "FLUTTER": true, "FLFACT": true,
}

// Validate checks the structural consistency of the document. All problems
// found are joined into the returned error.
func (d *Document) Validate() error {
	var errs []error

	params := make(map[string]bool)
	for _, t := range d.types {
		if !typeKeyRe.MatchString(t) {
			errs = append(errs, fmt.Errorf("invalid type key %q", t))
		}
		seen := make(map[int]bool)
		for i, r := range d.records[t] {
			if !hasPayload(r.Payload) {
				errs = append(errs, fmt.Errorf("%s record %d has no payload", t, i+1))
				continue
			}
			if t == "PARAM" {
				fields := r.Fields()
				if len(fields) < 2 || fields[1] == "" {
					errs = append(errs, fmt.Errorf("PARAM record %d has no name", i+1))
					continue
				}
				name := strings.ToUpper(fields[1])
				if params[name] {
					errs = append(errs, fmt.Errorf("duplicate PARAM %s", name))
				}
				params[name] = true
				continue
			}
			if !uniqueIDTypes[t] {
				continue
			}
			id, ok := r.ID()
			if !ok {
				errs = append(errs, fmt.Errorf("%s record %d has no integer id", t, i+1))
				continue
			}
			if seen[id] {
				errs = append(errs, fmt.Errorf("duplicate %s id %d", t, id))
			}
			seen[id] = true
		}
	}

	if d.caseControl != nil && len(d.caseControl.subcases) > 0 && d.Sol == 0 {
		errs = append(errs, errors.New("case control defines subcases but no SOL is set"))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("deck: validation failed: %w", errors.Join(errs...))
}

func hasPayload(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return true
		}
	}
	return false
}
