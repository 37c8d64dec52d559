// Package synth renders a case control registry and parameter table into the
// control sections of a deck.
package synth

import (
	"fmt"

	"github.com/jorge-barreto/nasdeck/internal/casecontrol"
	"github.com/jorge-barreto/nasdeck/internal/deck"
	"github.com/jorge-barreto/nasdeck/internal/logging"
	"github.com/jorge-barreto/nasdeck/internal/params"
	"go.uber.org/zap"
)

// Document is the part of a deck the synthesizer writes to.
type Document interface {
	SetSolution(sol int)
	SetCaseControl(cc *deck.CaseControlDeck)
	AddParam(key string, values []any) *deck.Record
	Validate() error
}

// ValidationError reports that the synthesized document failed its
// structural check. Sections already written are left in place.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("synth: document failed validation: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Synthesizer writes the executive, case control and parameter sections.
type Synthesizer struct {
	Doc      Document
	Cases    *casecontrol.Registry
	Params   *params.Table
	Solution int
	// Diags is accepted but never written; see writeExecutive.
	Diags  []int
	Logger *zap.Logger
}

// Step names, in execution order.
const (
	StepExecutive   = "executive"
	StepCaseControl = "case-control"
	StepParams      = "params"
	StepValidate    = "validate"
)

// WriteAll runs the executive, case control and parameter steps in that
// order and then validates the document.
func (s *Synthesizer) WriteAll() error {
	return s.WriteAllObserved(nil)
}

// WriteAllObserved is WriteAll with a callback invoked around each step:
// once with done=false before it starts and once with done=true after it
// succeeds.
func (s *Synthesizer) WriteAllObserved(observe func(step string, done bool)) error {
	if observe == nil {
		observe = func(string, bool) {}
	}
	log := logging.OrNop(s.Logger)

	steps := []struct {
		name string
		run  func() error
	}{
		{StepExecutive, s.writeExecutive},
		{StepCaseControl, s.writeCaseControl},
		{StepParams, s.writeParams},
	}
	for _, st := range steps {
		observe(st.name, false)
		if err := st.run(); err != nil {
			return fmt.Errorf("synth: %s: %w", st.name, err)
		}
		observe(st.name, true)
		log.Debug("synthesis step complete", zap.String("step", st.name))
	}

	observe(StepValidate, false)
	if err := s.Doc.Validate(); err != nil {
		return &ValidationError{Err: err}
	}
	observe(StepValidate, true)
	return nil
}

// writeExecutive sets the solution sequence. The DIAG statement built from
// Diags is not emitted; diagnostics have never reached the executive section
// and callers must not rely on them.
func (s *Synthesizer) writeExecutive() error {
	s.Doc.SetSolution(s.Solution)
	if len(s.Diags) > 0 {
		logging.OrNop(s.Logger).Debug("diagnostics are not written to the executive section", zap.Ints("diags", s.Diags))
	}
	return nil
}

func (s *Synthesizer) writeCaseControl() error {
	cc := deck.NewCaseControlDeck()
	if s.Cases == nil {
		s.Doc.SetCaseControl(cc)
		return nil
	}
	// Global statements are written verbatim; only subcases carry vars.
	for _, stmt := range s.Cases.Global().Statements() {
		cc.AddGlobal(stmt)
	}
	for id, sub := range s.Cases.All() {
		if _, err := cc.CreateSubcase(id); err != nil {
			return err
		}
		for _, stmt := range sub.Expanded() {
			if err := cc.AddToSubcase(id, stmt); err != nil {
				return err
			}
		}
	}
	s.Doc.SetCaseControl(cc)
	return nil
}

func (s *Synthesizer) writeParams() error {
	if s.Params == nil {
		return nil
	}
	for key, values := range s.Params.Entries() {
		s.Doc.AddParam(key, values)
	}
	return nil
}
