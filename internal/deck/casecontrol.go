package deck

import "fmt"

// SubcaseScope holds the case control statements of one SUBCASE.
type SubcaseScope struct {
	ID    int
	Lines []string
}

// CaseControlDeck is the case control section: statements that apply to
// every subcase followed by the subcase scopes in creation order.
type CaseControlDeck struct {
	Global   []string
	subcases []*SubcaseScope
	index    map[int]*SubcaseScope
}

// NewCaseControlDeck returns an empty case control section.
func NewCaseControlDeck() *CaseControlDeck {
	return &CaseControlDeck{index: make(map[int]*SubcaseScope)}
}

// AddGlobal appends a statement above the first SUBCASE.
func (c *CaseControlDeck) AddGlobal(stmt string) {
	c.Global = append(c.Global, stmt)
}

// CreateSubcase opens a new SUBCASE scope.
func (c *CaseControlDeck) CreateSubcase(id int) (*SubcaseScope, error) {
	if id <= 0 {
		return nil, fmt.Errorf("deck: subcase id must be positive, got %d", id)
	}
	if _, ok := c.index[id]; ok {
		return nil, fmt.Errorf("deck: subcase %d already exists", id)
	}
	s := &SubcaseScope{ID: id}
	c.subcases = append(c.subcases, s)
	c.index[id] = s
	return s, nil
}

// AddToSubcase appends a statement to an existing SUBCASE scope.
func (c *CaseControlDeck) AddToSubcase(id int, stmt string) error {
	s, ok := c.index[id]
	if !ok {
		return fmt.Errorf("deck: subcase %d does not exist", id)
	}
	s.Lines = append(s.Lines, stmt)
	return nil
}

// Subcase returns the scope with the given id.
func (c *CaseControlDeck) Subcase(id int) (*SubcaseScope, bool) {
	s, ok := c.index[id]
	return s, ok
}

// Subcases returns the scopes in creation order.
func (c *CaseControlDeck) Subcases() []*SubcaseScope {
	return c.subcases
}

func (c *CaseControlDeck) clone() *CaseControlDeck {
	cp := NewCaseControlDeck()
	cp.Global = append([]string(nil), c.Global...)
	for _, s := range c.subcases {
		scope := &SubcaseScope{ID: s.ID, Lines: append([]string(nil), s.Lines...)}
		cp.subcases = append(cp.subcases, scope)
		cp.index[s.ID] = scope
	}
	return cp
}
