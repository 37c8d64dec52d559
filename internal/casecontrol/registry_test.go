package casecontrol

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegister_PreservesOrder(t *testing.T) {
	r := NewRegistry()
	ids := []int{7, 2, 11, 1, 5}
	for _, id := range ids {
		if err := r.Register(id, NewSubcase(id)); err != nil {
			t.Fatal(err)
		}
	}

	var got []int
	for id, sub := range r.All() {
		if sub.ID() != id {
			t.Fatalf("subcase %d yielded under key %d", sub.ID(), id)
		}
		got = append(got, id)
	}
	if diff := cmp.Diff(ids, got); diff != "" {
		t.Fatalf("iteration order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ids, r.IDs()); diff != "" {
		t.Fatalf("IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestRegister_DuplicateLeavesEntryUnchanged(t *testing.T) {
	r := NewRegistry()
	first := NewSubcase(1)
	first.SPC = "S1"
	if err := r.Register(1, first); err != nil {
		t.Fatal(err)
	}

	second := NewSubcase(1)
	second.SPC = "S2"
	err := r.Register(1, second)
	var dup *DuplicateKeyError
	if !errors.As(err, &dup) || dup.ID != 1 {
		t.Fatalf("expected DuplicateKeyError for 1, got %v", err)
	}

	got, err := r.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if got != first || got.SPC != "S1" {
		t.Fatalf("entry changed after duplicate registration: %+v", got)
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}
}

func TestRegister_IDMismatch(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(2, NewSubcase(3)); err == nil {
		t.Fatal("expected error for mismatched id")
	}
	if r.Len() != 0 {
		t.Fatalf("Len = %d, want 0", r.Len())
	}
}

func TestGet_NotFound(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get(42)
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.ID != 42 {
		t.Fatalf("expected NotFoundError for 42, got %v", err)
	}
}

func TestReplaceGlobal(t *testing.T) {
	r := NewRegistry()
	if len(r.Global().Statements()) != 0 {
		t.Fatal("new registry should have an empty global case")
	}
	r.ReplaceGlobal(NewGlobalCase("ECHO = NONE"))
	if diff := cmp.Diff([]string{"ECHO = NONE"}, r.Global().Statements()); diff != "" {
		t.Fatalf("global mismatch (-want +got):\n%s", diff)
	}
	r.ReplaceGlobal(nil)
	if len(r.Global().Statements()) != 0 {
		t.Fatal("ReplaceGlobal(nil) should reset the global case")
	}
}

func TestAll_StopsEarly(t *testing.T) {
	r := NewRegistry()
	for _, id := range []int{1, 2, 3} {
		r.Register(id, NewSubcase(id))
	}
	n := 0
	for range r.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("visited %d, want 2", n)
	}
}

func TestSubcase_Expanded(t *testing.T) {
	s := NewSubcase(4)
	s.SPC = "12"
	s.Load = "10"
	s.Extra["label"] = "edges CP"
	s.CaseControl.Append("LABEL = ${label}", "SPC = ${SPC}", "LOAD = ${LOAD}", "SUBTITLE = case ${ID}", "DISP = ALL $ plot")

	want := []string{"LABEL = edges CP", "SPC = 12", "LOAD = 10", "SUBTITLE = case 4", "DISP = ALL $ plot"}
	if diff := cmp.Diff(want, s.Expanded()); diff != "" {
		t.Fatalf("expansion mismatch (-want +got):\n%s", diff)
	}
}

func TestSubcase_BuiltinsWinOverExtra(t *testing.T) {
	s := NewSubcase(1)
	s.SPC = "3"
	s.Extra["SPC"] = "99"
	if got := s.Vars()["SPC"]; got != "3" {
		t.Fatalf("SPC = %q, want 3", got)
	}
}

func TestExpandVars_LeavesDollarTextAlone(t *testing.T) {
	t.Setenv("NASDECK_TEST_VAR_XYZ", "from-env")

	tests := []struct {
		in, want string
	}{
		{"DISP(PLOT) = ALL $stress output", "DISP(PLOT) = ALL $stress output"},
		{"LABEL = $NASDECK_TEST_VAR_XYZ", "LABEL = $NASDECK_TEST_VAR_XYZ"},
		{"LABEL = ${NASDECK_TEST_VAR_XYZ}", "LABEL = ${NASDECK_TEST_VAR_XYZ}"},
		{"TITLE = RUN$1", "TITLE = RUN$1"},
		{"SPC = ${SPC} $ ${SPC}", "SPC = 7 $ 7"},
		{"SPC = $${SPC}", "SPC = $7"},
		{"broken ${SPC", "broken ${SPC"},
	}
	for _, tt := range tests {
		if got := ExpandVars(tt.in, map[string]string{"SPC": "7"}); got != tt.want {
			t.Errorf("ExpandVars(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVars_UpperCasedExtras(t *testing.T) {
	s := NewSubcase(4)
	s.Extra["mach"] = 0.8
	s.CaseControl.Append("$ mach ${MACH} ${mach} in ${ID}")
	if diff := cmp.Diff([]string{"$ mach 0.8 0.8 in 4"}, s.Expanded()); diff != "" {
		t.Fatalf("expanded mismatch (-want +got):\n%s", diff)
	}
}
