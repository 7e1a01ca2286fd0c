package expr

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// SymbolSet is an immutable, ordered set of symbol names. A nil *SymbolSet
// stands for "not known".
type SymbolSet struct {
	set *treeset.Set
}

// NewSymbolSet creates a set of symbol names.
func NewSymbolSet(names ...string) *SymbolSet {
	s := treeset.NewWith(utils.StringComparator)
	for _, n := range names {
		s.Add(n)
	}
	return &SymbolSet{set: s}
}

// Contains checks if name is a member of s.
func (s *SymbolSet) Contains(name string) bool {
	if s == nil {
		return false
	}
	return s.set.Contains(name)
}

// Len returns the number of names in s.
func (s *SymbolSet) Len() int {
	if s == nil {
		return 0
	}
	return s.set.Size()
}

// Each calls f for every name in s, in ascending order.
func (s *SymbolSet) Each(f func(name string)) {
	if s == nil {
		return
	}
	it := s.set.Iterator()
	for it.Next() {
		f(it.Value().(string))
	}
}

// Names returns the names of s in ascending order.
func (s *SymbolSet) Names() []string {
	names := make([]string, 0, s.Len())
	s.Each(func(n string) {
		names = append(names, n)
	})
	return names
}

// Union returns a new set with all names of s and others.
func (s *SymbolSet) Union(others ...*SymbolSet) *SymbolSet {
	u := NewSymbolSet()
	add := func(n string) { u.set.Add(n) }
	s.Each(add)
	for _, o := range others {
		o.Each(add)
	}
	return u
}

// With returns s, if name is a member, or a new set with name added.
func (s *SymbolSet) With(name string) *SymbolSet {
	if s.Contains(name) {
		return s
	}
	u := s.Union()
	u.set.Add(name)
	return u
}

func (s *SymbolSet) String() string {
	return "{" + strings.Join(s.Names(), ", ") + "}"
}
