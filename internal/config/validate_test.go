package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func minimalConfig(subs ...SubcaseSpec) *Config {
	return &Config{Name: "test", Sol: 145, Subcases: subs}
}

func sub(id int, stmts ...string) SubcaseSpec {
	return SubcaseSpec{ID: id, CaseControl: stmts, Extra: map[string]any{}}
}

func TestValidate_Minimal(t *testing.T) {
	if err := Validate(&Config{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_NegativeSol(t *testing.T) {
	cfg := &Config{Sol: -1}
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "'sol' must be >= 0") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_SubcasesRequireSol(t *testing.T) {
	cfg := &Config{Subcases: OrderedSubcases{sub(1)}}
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "'sol' is required") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_DuplicateSubcase(t *testing.T) {
	cfg := minimalConfig(sub(1), sub(1))
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "duplicate subcase id 1") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_NonPositiveSubcase(t *testing.T) {
	cfg := minimalConfig(sub(0))
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "id must be positive") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_EmptyDirective(t *testing.T) {
	cfg := minimalConfig(sub(1, "SPC = 1", "  "))
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "must be non-empty") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_ExtraAttributeNames(t *testing.T) {
	s := sub(1)
	s.Extra["bad-name"] = "x"
	if err := Validate(minimalConfig(s)); err == nil || !strings.Contains(err.Error(), "not a valid attribute name") {
		t.Fatalf("got %v", err)
	}

	s = sub(1)
	s.Extra["spc"] = "x"
	if err := Validate(minimalConfig(s)); err == nil || !strings.Contains(err.Error(), "is reserved") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_ParamNames(t *testing.T) {
	for _, key := range []string{"", "1POST", "TOOLONGNAME", "A-B"} {
		cfg := &Config{Params: OrderedParams{{Key: key, Value: 1}}}
		if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "not a valid parameter name") {
			t.Fatalf("key %q: got %v", key, err)
		}
	}
}

func TestValidate_DuplicateParam(t *testing.T) {
	cfg := &Config{Params: OrderedParams{{Key: "POST", Value: -1}, {Key: "post", Value: 0}}}
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "duplicate parameter") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_ParamValues(t *testing.T) {
	bad := []any{
		map[string]any{"a": 1},
		[]any{1, []any{2}},
		[]any{map[string]any{"a": 1}},
		[]any{},
		nil,
	}
	for _, v := range bad {
		cfg := &Config{Params: OrderedParams{{Key: "X", Value: v}}}
		err := Validate(cfg)
		if err == nil || !strings.Contains(err.Error(), `config: params: "X"`) {
			t.Fatalf("value %#v: got %v", v, err)
		}
	}

	good := []any{1, 2.5, "YES", true, []any{1, 2.0, "A"}}
	for _, v := range good {
		cfg := &Config{Params: OrderedParams{{Key: "X", Value: v}}}
		if err := Validate(cfg); err != nil {
			t.Fatalf("value %#v: %v", v, err)
		}
	}
}

func TestValidate_ParamMappingFromYAML(t *testing.T) {
	cfg, err := Parse([]byte("params:\n  X:\n    a: 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "must be a scalar or a list of scalars") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_ImportDefaults(t *testing.T) {
	cfg := &Config{Imports: []ImportSpec{{Path: "base.bdf"}}}
	if err := Validate(cfg); err != nil {
		t.Fatal(err)
	}
	imp := cfg.Imports[0]
	if imp.Stage != StageBefore {
		t.Fatalf("Stage = %q, want %q", imp.Stage, StageBefore)
	}
	if !imp.Sanitized() {
		t.Fatal("imports should sanitize by default")
	}
	if diff := cmp.Diff(DefaultBlockList(), imp.BlockList); diff != "" {
		t.Fatalf("block list mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_ImportExplicitEmptyBlockList(t *testing.T) {
	cfg := &Config{Imports: []ImportSpec{{Path: "base.bdf", BlockList: []string{}}}}
	if err := Validate(cfg); err != nil {
		t.Fatal(err)
	}
	if len(cfg.Imports[0].BlockList) != 0 {
		t.Fatalf("BlockList = %v, want empty", cfg.Imports[0].BlockList)
	}
}

func TestValidate_ImportErrors(t *testing.T) {
	tests := []struct {
		name string
		imp  ImportSpec
		want string
	}{
		{"missing path", ImportSpec{}, "'path' is required"},
		{"bad stage", ImportSpec{Path: "a.bdf", Stage: "during"}, "unknown stage"},
		{"bad block entry", ImportSpec{Path: "a.bdf", BlockList: []string{"PARAM", "$X"}}, "is not a record type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Imports: []ImportSpec{tt.imp}}
			if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q, got %v", tt.want, err)
			}
		})
	}
}

func TestValidate_NegativeDiag(t *testing.T) {
	cfg := &Config{Diags: []int{8, -1}}
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "diags") {
		t.Fatalf("got %v", err)
	}
}

func TestDefaultBlockList_ReturnsFreshSlice(t *testing.T) {
	a := DefaultBlockList()
	a[0] = "GRID"
	if DefaultBlockList()[0] != "ENDDATA" {
		t.Fatal("DefaultBlockList shares its backing array")
	}
}
