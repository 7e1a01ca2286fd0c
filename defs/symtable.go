package defs

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/symex/expr"
	"github.com/npillmayer/symex/termr"
)

// ValueKind selects one of the rule lists of a definition.
type ValueKind int8

// Kinds of rule lists.
const (
	OwnValues ValueKind = iota
	UpValues
	DownValues
	SubValues
)

func (k ValueKind) String() string {
	switch k {
	case OwnValues:
		return "OwnValues"
	case UpValues:
		return "UpValues"
	case DownValues:
		return "DownValues"
	case SubValues:
		return "SubValues"
	}
	return "?"
}

// Errors for rejected changes of definitions.
var (
	ErrProtected = errors.New("symbol is protected")
	ErrLocked    = errors.New("symbol is locked")
)

// --- Definitions of symbols ------------------------------------------------

// Definition holds attributes and rules of a symbol. Definitions are
// snapshots: changing a symbol replaces its definition in the table, so a
// Definition obtained from Lookup never changes.
type Definition struct {
	name       string
	attributes Attributes
	values     [4][]termr.Rule
	user       bool // holds rules defined by users
	modified   expr.Timestamp
}

// Name gets the symbol's name.
func (d *Definition) Name() string {
	return d.name
}

// Attributes returns the attributes of the symbol.
func (d *Definition) Attributes() Attributes {
	return d.attributes
}

// Values returns the rules of a kind. The slice must not be modified.
func (d *Definition) Values(kind ValueKind) []termr.Rule {
	return d.values[kind]
}

// Modified returns the time of the last change.
func (d *Definition) Modified() expr.Timestamp {
	return d.modified
}

// IsUserDefined is true if the symbol holds rules defined by users.
func (d *Definition) IsUserDefined() bool {
	return d.user
}

// String is a debug Stringer for definitions.
func (d *Definition) String() string {
	return fmt.Sprintf("<def '%s' %s own=%d up=%d down=%d sub=%d @%d>", d.name, d.attributes,
		len(d.values[OwnValues]), len(d.values[UpValues]),
		len(d.values[DownValues]), len(d.values[SubValues]), d.modified)
}

func (d *Definition) hasValues() bool {
	for _, v := range d.values {
		if len(v) > 0 {
			return true
		}
	}
	return false
}

func (d *Definition) clone() *Definition {
	c := *d
	return &c
}

// === Symbol Tables =========================================================

// Definitions is a symbol table to store definitions (map-like semantics),
// together with a logical clock.
type Definitions struct {
	mu    sync.RWMutex
	table map[string]*Definition
	now   expr.Timestamp
}

// New creates an empty symbol table.
//
func New() *Definitions {
	return &Definitions{
		table: make(map[string]*Definition),
	}
}

// Lookup checks for a definition in the symbol table.
// Returns a definition or nil.
//
func (t *Definitions) Lookup(name string) *Definition {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table[name]
}

// Size counts the definitions in a symbol table.
func (t *Definitions) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.table)
}

// Each iterates over each definition in the table, executing a mapper function.
// The mapper must not change the table.
func (t *Definitions) Each(mapper func(string, *Definition)) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for k, v := range t.table {
		mapper(k, v)
	}
}

// Now returns the current time of the logical clock.
func (t *Definitions) Now() expr.Timestamp {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.now
}

// Changed reports whether a token is stale, i.e. if any of its symbols has
// been changed after the token's time. A nil token is always stale.
func (t *Definitions) Changed(tok *expr.Token) bool {
	if tok == nil || tok.Symbols == nil {
		return true
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.now <= tok.Time {
		return false
	}
	changed := false
	tok.Symbols.Each(func(name string) {
		if d := t.table[name]; d != nil && d.modified > tok.Time {
			changed = true
		}
	})
	return changed
}

// HasValues is true if a symbol has any rules.
func (t *Definitions) HasValues(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	d := t.table[name]
	return d != nil && d.hasValues()
}

// Attributes returns the attributes of a symbol.
func (t *Definitions) Attributes(name string) Attributes {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if d := t.table[name]; d != nil {
		return d.attributes
	}
	return NoAttributes
}

// Values returns the rules of a kind for a symbol, most specific first.
// The slice must not be modified.
func (t *Definitions) Values(name string, kind ValueKind) []termr.Rule {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if d := t.table[name]; d != nil {
		return d.values[kind]
	}
	return nil
}

// IsUserDefined is true if a symbol holds rules defined by users.
func (t *Definitions) IsUserDefined(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	d := t.table[name]
	return d != nil && d.user
}

// AnyUserDefined is true if any of names holds rules defined by users.
func (t *Definitions) AnyUserDefined(names []string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, n := range names {
		if d := t.table[n]; d != nil && d.user {
			return true
		}
	}
	return false
}

// --- Changing definitions --------------------------------------------------

// update applies a change to the definition of a symbol and advances the
// clock. Must be called with the write lock held.
func (t *Definitions) update(name string, change func(d *Definition) error) error {
	var d *Definition
	if old := t.table[name]; old != nil {
		d = old.clone()
	} else {
		d = &Definition{name: name}
	}
	if err := change(d); err != nil {
		return err
	}
	t.now++
	d.modified = t.now
	t.table[name] = d
	tracer().Debugf("changed %s", d)
	return nil
}

// SetAttributes adds attributes to a symbol. Fails for locked symbols.
func (t *Definitions) SetAttributes(name string, a Attributes) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.update(name, func(d *Definition) error {
		if d.attributes.Has(Locked) {
			return fmt.Errorf("%w: %s", ErrLocked, name)
		}
		d.attributes |= a
		return nil
	})
}

// ClearAttributes removes attributes from a symbol. Fails for locked symbols.
func (t *Definitions) ClearAttributes(name string, a Attributes) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.update(name, func(d *Definition) error {
		if d.attributes.Has(Locked) {
			return fmt.Errorf("%w: %s", ErrLocked, name)
		}
		d.attributes &^= a
		return nil
	})
}

// AddRule adds a user defined rule to a symbol. Fails for protected symbols.
func (t *Definitions) AddRule(name string, kind ValueKind, r termr.Rule) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.update(name, func(d *Definition) error {
		if d.attributes.Has(Protected) {
			return fmt.Errorf("%w: %s", ErrProtected, name)
		}
		d.values[kind] = insertRule(d.values[kind], r)
		d.user = true
		return nil
	})
}

// AddBuiltinRule adds a rule of the system to a symbol.
func (t *Definitions) AddBuiltinRule(name string, kind ValueKind, r termr.Rule) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_ = t.update(name, func(d *Definition) error {
		d.values[kind] = insertRule(d.values[kind], r)
		return nil
	})
}

// Clear removes all rules of a symbol, keeping its attributes. Fails for
// protected symbols.
func (t *Definitions) Clear(name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.table[name] == nil {
		return nil
	}
	return t.update(name, func(d *Definition) error {
		if d.attributes.Has(Protected) {
			return fmt.Errorf("%w: %s", ErrProtected, name)
		}
		d.values = [4][]termr.Rule{}
		d.user = false
		return nil
	})
}

// insertRule inserts r into a list of rules ordered by pattern specificity,
// after all rules of equal rank. A rule with the same pattern is replaced.
// The input slice is not modified.
func insertRule(rules []termr.Rule, r termr.Rule) []termr.Rule {
	p := r.Pattern()
	out := make([]termr.Rule, 0, len(rules)+1)
	inserted := false
	for _, x := range rules {
		if !inserted {
			if x.Pattern().Same(p) {
				out = append(out, r)
				inserted = true
				continue
			}
			if expr.PatternCompare(p, x.Pattern()) < 0 {
				out = append(out, r)
				inserted = true
			}
		}
		out = append(out, x)
	}
	if !inserted {
		out = append(out, r)
	}
	return out
}
