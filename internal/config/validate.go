package config

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
)

var attrNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// parameter names are at most eight characters, as in a bulk data field
var paramNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]{0,7}$`)

var typeKeyRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if cfg.Sol < 0 {
		return fmt.Errorf("config: 'sol' must be >= 0")
	}
	if len(cfg.Subcases) > 0 && cfg.Sol == 0 {
		return fmt.Errorf("config: 'sol' is required when subcases are defined")
	}
	for _, d := range cfg.Diags {
		if d < 0 {
			return fmt.Errorf("config: diags: %d is not a valid diagnostic number", d)
		}
	}

	for _, stmt := range cfg.Global.CaseControl {
		if strings.TrimSpace(stmt) == "" {
			return fmt.Errorf("config: global: case_control entries must be non-empty")
		}
	}

	seenParams := make(map[string]bool)
	for _, p := range cfg.Params {
		if !paramNameRe.MatchString(p.Key) {
			return fmt.Errorf("config: params: %q is not a valid parameter name (1-8 alphanumeric characters, leading letter)", p.Key)
		}
		key := strings.ToUpper(p.Key)
		if seenParams[key] {
			return fmt.Errorf("config: params: duplicate parameter %q", p.Key)
		}
		seenParams[key] = true
		if !paramValue(p.Value) {
			return fmt.Errorf("config: params: %q must be a scalar or a list of scalars, got %v", p.Key, p.Value)
		}
	}

	seen := make(map[int]bool)
	for _, s := range cfg.Subcases {
		if s.ID <= 0 {
			return fmt.Errorf("config: subcase %d: id must be positive", s.ID)
		}
		if seen[s.ID] {
			return fmt.Errorf("config: duplicate subcase id %d", s.ID)
		}
		seen[s.ID] = true

		for _, stmt := range s.CaseControl {
			if strings.TrimSpace(stmt) == "" {
				return fmt.Errorf("config: subcase %d: case_control entries must be non-empty", s.ID)
			}
		}
		for _, k := range slices.Sorted(maps.Keys(s.Extra)) {
			if reservedSubcaseKeys[k] {
				return fmt.Errorf("config: subcase %d: attribute %q is reserved", s.ID, k)
			}
			if !attrNameRe.MatchString(k) {
				return fmt.Errorf("config: subcase %d: %q is not a valid attribute name (must match [A-Za-z_][A-Za-z0-9_]*)", s.ID, k)
			}
		}
	}

	for i := range cfg.Imports {
		imp := &cfg.Imports[i]
		if imp.Path == "" {
			return fmt.Errorf("config: import %d: 'path' is required", i+1)
		}
		switch imp.Stage {
		case "":
			imp.Stage = StageBefore
		case StageBefore, StageAfter:
		default:
			return fmt.Errorf("config: import %q: unknown stage %q (must be before or after)", imp.Path, imp.Stage)
		}
		if imp.BlockList == nil {
			imp.BlockList = DefaultBlockList()
		}
		for _, k := range imp.BlockList {
			if !typeKeyRe.MatchString(k) {
				return fmt.Errorf("config: import %q: block-list entry %q is not a record type", imp.Path, k)
			}
		}
	}

	return nil
}

// paramValue reports whether v can be written as PARAM fields: a scalar or a
// non-empty flat list of scalars.
func paramValue(v any) bool {
	list, ok := v.([]any)
	if !ok {
		return paramScalar(v)
	}
	if len(list) == 0 {
		return false
	}
	for _, e := range list {
		if !paramScalar(e) {
			return false
		}
	}
	return true
}

func paramScalar(v any) bool {
	switch v.(type) {
	case string, bool, int, int64, uint64, float64:
		return true
	}
	return false
}
