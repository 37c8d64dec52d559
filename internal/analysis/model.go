// Package analysis ties a deck to the case control registry and parameter
// table that describe one analysis session.
package analysis

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jorge-barreto/nasdeck/internal/casecontrol"
	"github.com/jorge-barreto/nasdeck/internal/config"
	"github.com/jorge-barreto/nasdeck/internal/deck"
	"github.com/jorge-barreto/nasdeck/internal/importer"
	"github.com/jorge-barreto/nasdeck/internal/logging"
	"github.com/jorge-barreto/nasdeck/internal/params"
	"github.com/jorge-barreto/nasdeck/internal/state"
	"github.com/jorge-barreto/nasdeck/internal/synth"
	"go.uber.org/zap"
)

// Model is one analysis session. It owns its document exclusively and is
// not safe for concurrent use.
type Model struct {
	ID        uuid.UUID
	Doc       *deck.Document
	Cases     *casecontrol.Registry
	Params    *params.Table
	Diags     []int
	Sol       int
	Interface any
	Logger    *zap.Logger
}

// New starts a session around doc, or around a fresh document when doc is nil.
func New(doc *deck.Document) *Model {
	if doc == nil {
		doc = deck.New()
	}
	return &Model{
		ID:     uuid.New(),
		Doc:    doc,
		Cases:  casecontrol.NewRegistry(),
		Params: params.NewTable(),
	}
}

func (m *Model) String() string {
	return m.Doc.Stats()
}

// LoadConfig copies sol, diags, interface, global case, params and subcases
// from cfg into the session. Subcases are registered in file order.
func (m *Model) LoadConfig(cfg *config.Config) error {
	m.Sol = cfg.Sol
	m.Diags = append([]int(nil), cfg.Diags...)
	m.Interface = cfg.Interface
	m.SetGlobalCase(cfg.Global.CaseControl...)
	for _, p := range cfg.Params {
		m.Params.Set(p.Key, p.Value)
	}
	for _, spec := range cfg.Subcases {
		sub := casecontrol.NewSubcase(spec.ID)
		sub.SPC = spec.SPC
		sub.Load = spec.Load
		sub.CaseControl.Append(spec.CaseControl...)
		for k, v := range spec.Extra {
			sub.Extra[k] = v
		}
		if err := m.Cases.Register(spec.ID, sub); err != nil {
			return err
		}
	}
	return nil
}

// SetGlobalCase replaces the global case with the given statements.
func (m *Model) SetGlobalCase(stmts ...string) {
	m.Cases.ReplaceGlobal(casecontrol.NewGlobalCase(stmts...))
}

// CreateSubcase registers an empty subcase and returns it for further setup.
func (m *Model) CreateSubcase(id int, spc, load string) (*casecontrol.Subcase, error) {
	sub := casecontrol.NewSubcase(id)
	sub.SPC = spc
	sub.Load = load
	if err := m.Cases.Register(id, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Synthesizer returns a synthesizer bound to the session.
func (m *Model) Synthesizer() *synth.Synthesizer {
	return &synth.Synthesizer{
		Doc:      m.Doc,
		Cases:    m.Cases,
		Params:   m.Params,
		Solution: m.Sol,
		Diags:    m.Diags,
		Logger:   m.Logger,
	}
}

// WriteCards renders the executive, case control and parameter sections
// into the document and validates it.
func (m *Model) WriteCards() error {
	return m.Synthesizer().WriteAll()
}

// Import merges the bulk records of src into the session document. A failed
// import leaves the records merged before the failure in place.
func (m *Model) Import(src *deck.Document, opts importer.Options) (*importer.Result, error) {
	if opts.Logger == nil {
		opts.Logger = m.Logger
	}
	return importer.Merge(src, m.Doc, opts)
}

// ImportAtomic merges src into a copy of the session document and swaps the
// copy in only when the merge succeeds.
func (m *Model) ImportAtomic(src *deck.Document, opts importer.Options) (*importer.Result, error) {
	if opts.Logger == nil {
		opts.Logger = m.Logger
	}
	work := m.Doc.Clone()
	res, err := importer.Merge(src, work, opts)
	if err != nil {
		return res, err
	}
	m.Doc = work
	return res, nil
}

// ImportFile reads the deck at path and merges it; see Import and ImportAtomic.
func (m *Model) ImportFile(path string, opts importer.Options, atomic bool) (*importer.Result, error) {
	logging.OrNop(m.Logger).Debug("loading deck", zap.String("path", path))
	src, err := deck.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if atomic {
		return m.ImportAtomic(src, opts)
	}
	return m.Import(src, opts)
}

// Render serializes the document followed by a comment naming the session
// and ENDDATA. The comment sits after the last record so that re-reading the
// deck does not attach it to any record.
func (m *Model) Render() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Doc.Write(&buf, false); err != nil {
		return nil, err
	}
	fmt.Fprintf(&buf, "%s nasdeck session %s\n%s\n", deck.CommentPrefix, m.ID, deck.EndData)
	return buf.Bytes(), nil
}

// Export writes the document to path atomically, always ending with ENDDATA.
func (m *Model) Export(path string) error {
	data, err := m.Render()
	if err != nil {
		return err
	}
	if err := state.EnsureDir(path); err != nil {
		return err
	}
	if err := state.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logging.OrNop(m.Logger).Debug("deck exported",
		zap.String("path", path),
		zap.Int("records", m.Doc.Len()),
		zap.String("session", m.ID.String()))
	return nil
}

// Stats returns the document summary.
func (m *Model) Stats() string {
	return strings.TrimRight(m.Doc.Stats(), "\n")
}
