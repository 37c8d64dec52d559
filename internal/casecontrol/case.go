// Package casecontrol holds the global case and the ordered set of subcases
// that are rendered into a deck's case control section.
package casecontrol

import (
	"fmt"
	"strconv"
	"strings"
)

// Directives is an ordered list of free-form case control statements.
type Directives []string

// Append adds statements to the end of the list.
func (d *Directives) Append(stmts ...string) {
	*d = append(*d, stmts...)
}

// Case is either a *GlobalCase or a *Subcase.
type Case interface {
	Statements() []string
	isCase()
}

// GlobalCase holds statements that apply to every subcase. It has no id.
type GlobalCase struct {
	CaseControl Directives
}

// NewGlobalCase returns a global case with the given statements.
func NewGlobalCase(stmts ...string) *GlobalCase {
	g := &GlobalCase{}
	g.CaseControl.Append(stmts...)
	return g
}

func (g *GlobalCase) Statements() []string { return g.CaseControl }
func (g *GlobalCase) isCase()              {}

// Subcase is one analysis scenario. Its id is fixed at construction.
type Subcase struct {
	id int

	// SPC and Load reference the constraint and load sets; empty means none.
	SPC  string
	Load string

	CaseControl Directives

	// Extra carries additional named attributes from the configuration.
	// They are available to directive expansion under their own names.
	Extra map[string]any
}

// NewSubcase returns an empty subcase with the given id.
func NewSubcase(id int) *Subcase {
	return &Subcase{id: id, Extra: make(map[string]any)}
}

// ID returns the subcase id.
func (s *Subcase) ID() int { return s.id }

func (s *Subcase) Statements() []string { return s.CaseControl }
func (s *Subcase) isCase()              {}

// Vars returns the substitution map used when expanding this subcase's
// statements. Extra attributes are also reachable under their upper-cased
// name. Built-ins win over extra attributes of the same name.
func (s *Subcase) Vars() map[string]string {
	m := make(map[string]string, 3+len(s.Extra))
	for k, v := range s.Extra {
		m[k] = fmt.Sprint(v)
		if up := strings.ToUpper(k); up != k {
			if _, set := s.Extra[up]; !set {
				m[up] = m[k]
			}
		}
	}
	m["ID"] = strconv.Itoa(s.id)
	m["SPC"] = s.SPC
	m["LOAD"] = s.Load
	return m
}

// Expanded returns the subcase statements with variables substituted.
func (s *Subcase) Expanded() []string {
	vars := s.Vars()
	out := make([]string, len(s.CaseControl))
	for i, stmt := range s.CaseControl {
		out[i] = ExpandVars(stmt, vars)
	}
	return out
}
