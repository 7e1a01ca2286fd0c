package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Timestamp is a point in time of the logical clock of a symbol table.
// The clock advances whenever a definition changes.
type Timestamp uint64

// Token marks an expression as being in normal form at Time. Symbols is the
// set of symbols referenced by the expression. The normal form stays valid as
// long as none of these symbols has been modified after Time.
type Token struct {
	Time    Timestamp
	Symbols *SymbolSet
}

func (t *Token) String() string {
	if t == nil {
		return "<no token>"
	}
	return fmt.Sprintf("<token @%d %s>", t.Time, t.Symbols)
}

// Definitions is the part of a symbol table the node model depends on.
type Definitions interface {
	// Now returns the current time of the logical clock.
	Now() Timestamp
	// Changed reports whether a token is stale. A nil token is always stale.
	Changed(tok *Token) bool
	// HasValues is true if a symbol has any own-, up-, down- or sub-values.
	HasValues(name string) bool
}

// UnionTokens combines the tokens of several expressions. It returns nil if
// any of the tokens is stale. Otherwise the result is stamped with the current
// time and references the union of all symbols.
func UnionTokens(defs Definitions, tokens ...*Token) *Token {
	sets := make([]*SymbolSet, 0, len(tokens))
	for _, t := range tokens {
		if defs.Changed(t) {
			return nil
		}
		sets = append(sets, t.Symbols)
	}
	return &Token{
		Time:    defs.Now(),
		Symbols: NewSymbolSet().Union(sets...),
	}
}
