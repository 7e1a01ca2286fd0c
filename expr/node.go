package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"

	"github.com/npillmayer/symex/num"
)

// Node is the common interface of atoms and compound expressions.
type Node interface {
	Head() Node
	HeadName() string   // name of the head, if it is a symbol, "" otherwise
	LookupName() string // name of the leftmost symbol in a chain of heads
	Same(Node) bool     // structural identity
	IsAtom() bool
	String() string
}

// Names of symbols with a special role for the node model.
const (
	SequenceName    = "Sequence"
	ListName        = "List"
	UnevaluatedName = "Unevaluated"
	EvaluateName    = "Evaluate"
)

// Symbols every part of symex knows about.
var (
	SymSequence    = NewSymbol(SequenceName)
	SymList        = NewSymbol(ListName)
	SymUnevaluated = NewSymbol(UnevaluatedName)
	SymEvaluate    = NewSymbol(EvaluateName)
	Null           = NewSymbol("Null")
	Aborted        = NewSymbol("$Aborted")
	Failed         = NewSymbol("$Failed")
)

// --- Symbols ---------------------------------------------------------------

// Symbol is an atom identified by its name.
type Symbol struct {
	name string
}

// NewSymbol creates a symbol.
func NewSymbol(name string) Symbol {
	return Symbol{name: name}
}

// Name returns the name of the symbol.
func (s Symbol) Name() string { return s.name }

// Head is the symbol 'Symbol'.
func (s Symbol) Head() Node { return Symbol{name: "Symbol"} }

// HeadName is "Symbol".
func (s Symbol) HeadName() string { return "Symbol" }

// LookupName is the name of the symbol itself.
func (s Symbol) LookupName() string { return s.name }

// Same is true if other is a symbol with the same name.
func (s Symbol) Same(other Node) bool {
	o, ok := other.(Symbol)
	return ok && o.name == s.name
}

// IsAtom is true.
func (s Symbol) IsAtom() bool { return true }

func (s Symbol) String() string { return s.name }

// --- Strings ---------------------------------------------------------------

// String is an atom holding a text.
type String struct {
	value string
}

// NewString creates a string atom.
func NewString(s string) String {
	return String{value: s}
}

// Value returns the text of a string atom.
func (s String) Value() string { return s.value }

// Head is the symbol 'String'.
func (s String) Head() Node { return Symbol{name: "String"} }

// HeadName is "String".
func (s String) HeadName() string { return "String" }

// LookupName is "".
func (s String) LookupName() string { return "" }

// Same is true for strings with equal text.
func (s String) Same(other Node) bool {
	o, ok := other.(String)
	return ok && o.value == s.value
}

// IsAtom is true.
func (s String) IsAtom() bool { return true }

func (s String) String() string { return strconv.Quote(s.value) }

// --- Numbers ---------------------------------------------------------------

// Number is an atom holding a member of the numeric tower.
type Number struct {
	n num.Number
}

// NewNumber wraps a number into an atom.
func NewNumber(n num.Number) Number {
	if n == nil {
		panic("nil number")
	}
	return Number{n: n}
}

// Int creates an atom holding an exact integer.
func Int(i int64) Number {
	return Number{n: num.NewInteger(i)}
}

// Real creates an atom holding a machine real.
func Real(f float64) (Number, error) {
	m, err := num.NewMachineReal(f)
	if err != nil {
		return Number{}, err
	}
	return Number{n: m}, nil
}

// Value returns the number held by the atom.
func (n Number) Value() num.Number { return n.n }

// Head is one of the symbols Integer, Rational, Real or Complex.
func (n Number) Head() Node { return Symbol{name: n.n.HeadName()} }

// HeadName is one of "Integer", "Rational", "Real" or "Complex".
func (n Number) HeadName() string { return n.n.HeadName() }

// LookupName is "".
func (n Number) LookupName() string { return "" }

// Same compares numbers structurally, see num.Same.
func (n Number) Same(other Node) bool {
	o, ok := other.(Number)
	return ok && num.Same(n.n, o.n)
}

// IsAtom is true.
func (n Number) IsAtom() bool { return true }

func (n Number) String() string { return n.n.String() }

// IsInteger checks if a node is an integer atom and returns its value, if
// it fits into an int.
func IsInteger(n Node) (int, bool) {
	a, ok := n.(Number)
	if !ok {
		return 0, false
	}
	i, ok := a.n.(*num.Integer)
	if !ok {
		return 0, false
	}
	v, ok := i.Int64()
	if !ok || int64(int(v)) != v {
		return 0, false
	}
	return int(v), true
}
