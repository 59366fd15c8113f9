package genealogy

import (
	"errors"
	"fmt"
)

var ErrDuplicateMoniker = errors.New("duplicate moniker")

// DuplicatePolicy decides what happens when a moniker is recorded twice.
type DuplicatePolicy int

const (
	// DuplicateReplace keeps the latest record wholesale. The moniker keeps
	// the position it was first seen at.
	DuplicateReplace DuplicatePolicy = iota
	// DuplicateKeepFirst ignores later records for a moniker already present.
	DuplicateKeepFirst
	// DuplicateReject fails the insert with ErrDuplicateMoniker.
	DuplicateReject
)

func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateReplace:
		return "replace"
	case DuplicateKeepFirst:
		return "keep-first"
	case DuplicateReject:
		return "reject"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParseDuplicatePolicy accepts the names returned by DuplicatePolicy.String.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "", "replace":
		return DuplicateReplace, nil
	case "keep-first":
		return DuplicateKeepFirst, nil
	case "reject":
		return DuplicateReject, nil
	default:
		return 0, fmt.Errorf("unknown duplicate policy %q", s)
	}
}

// Graph maps monikers to creatures. Iteration follows insertion order so
// output built from it is deterministic.
type Graph struct {
	policy    DuplicatePolicy
	creatures map[string]*Creature
	order     []string
}

// NewGraph creates an empty graph using the given duplicate policy.
func NewGraph(policy DuplicatePolicy) *Graph {
	return &Graph{
		policy:    policy,
		creatures: make(map[string]*Creature),
	}
}

// Add inserts c. It reports whether c was stored; a false return with a nil
// error means the record was dropped by DuplicateKeepFirst.
func (g *Graph) Add(c *Creature) (bool, error) {
	if _, exists := g.creatures[c.Moniker]; exists {
		switch g.policy {
		case DuplicateKeepFirst:
			return false, nil
		case DuplicateReject:
			return false, fmt.Errorf("%w: %s", ErrDuplicateMoniker, c.Moniker)
		}
		g.creatures[c.Moniker] = c
		return true, nil
	}
	g.creatures[c.Moniker] = c
	g.order = append(g.order, c.Moniker)
	return true, nil
}

// Get returns the creature recorded under moniker.
func (g *Graph) Get(moniker string) (*Creature, bool) {
	c, ok := g.creatures[moniker]
	return c, ok
}

// Has reports whether moniker has a record of its own.
func (g *Graph) Has(moniker string) bool {
	_, ok := g.creatures[moniker]
	return ok
}

func (g *Graph) Len() int { return len(g.order) }

// Monikers returns the recorded monikers in insertion order.
func (g *Graph) Monikers() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Each calls fn for every creature in insertion order.
func (g *Graph) Each(fn func(c *Creature)) {
	for _, m := range g.order {
		fn(g.creatures[m])
	}
}

// MonikerSet is an insertion-ordered set of monikers.
type MonikerSet struct {
	index map[string]struct{}
	order []string
}

// NewMonikerSet returns a set holding the given monikers.
func NewMonikerSet(monikers ...string) MonikerSet {
	s := MonikerSet{index: make(map[string]struct{}, len(monikers))}
	for _, m := range monikers {
		s.Add(m)
	}
	return s
}

// Add inserts m and reports whether it was new.
func (s *MonikerSet) Add(m string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[m]; ok {
		return false
	}
	s.index[m] = struct{}{}
	s.order = append(s.order, m)
	return true
}

func (s MonikerSet) Has(m string) bool {
	_, ok := s.index[m]
	return ok
}

func (s MonikerSet) Len() int { return len(s.order) }

// Slice returns the members in insertion order.
func (s MonikerSet) Slice() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
