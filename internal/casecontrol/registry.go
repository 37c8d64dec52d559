package casecontrol

import (
	"fmt"
	"iter"
)

// DuplicateKeyError is returned when a subcase id is registered twice.
type DuplicateKeyError struct {
	ID int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("casecontrol: subcase %d already registered", e.ID)
}

// NotFoundError is returned when a subcase id is not registered.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("casecontrol: subcase %d not found", e.ID)
}

// Registry holds the global case and the subcases in registration order.
// It is not safe for concurrent use.
type Registry struct {
	global *GlobalCase
	order  []int
	byID   map[int]*Subcase
}

// NewRegistry returns a registry with an empty global case.
func NewRegistry() *Registry {
	return &Registry{
		global: &GlobalCase{},
		byID:   make(map[int]*Subcase),
	}
}

// Register adds sub under id. A duplicate id is rejected and leaves the
// registry unchanged.
func (r *Registry) Register(id int, sub *Subcase) error {
	if sub == nil {
		return fmt.Errorf("casecontrol: nil subcase for id %d", id)
	}
	if _, ok := r.byID[id]; ok {
		return &DuplicateKeyError{ID: id}
	}
	if sub.ID() != id {
		return fmt.Errorf("casecontrol: subcase id %d registered under id %d", sub.ID(), id)
	}
	r.byID[id] = sub
	r.order = append(r.order, id)
	return nil
}

// ReplaceGlobal sets the global case. A nil case resets it to empty.
func (r *Registry) ReplaceGlobal(g *GlobalCase) {
	if g == nil {
		g = &GlobalCase{}
	}
	r.global = g
}

// Global returns the global case.
func (r *Registry) Global() *GlobalCase {
	return r.global
}

// Get returns the subcase registered under id.
func (r *Registry) Get(id int) (*Subcase, error) {
	sub, ok := r.byID[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return sub, nil
}

// All yields the subcases in registration order.
func (r *Registry) All() iter.Seq2[int, *Subcase] {
	return func(yield func(int, *Subcase) bool) {
		for _, id := range r.order {
			if !yield(id, r.byID[id]) {
				return
			}
		}
	}
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []int {
	return append([]int(nil), r.order...)
}

// Len returns the number of registered subcases.
func (r *Registry) Len() int {
	return len(r.order)
}
