package defs

import (
	"strings"
)

// Attributes is a set of flags controlling evaluation of expressions with a
// symbol as their head.
type Attributes uint32

// Attributes of symbols.
const (
	HoldFirst       Attributes = 1 << iota // do not evaluate the first argument
	HoldRest                               // do not evaluate arguments but the first
	HoldAll                                // do not evaluate any argument
	HoldAllComplete                        // do not touch arguments at all
	SequenceHold                           // do not splice Sequence arguments
	Flat                                   // associative
	Orderless                              // commutative
	Listable                               // thread over lists
	OneIdentity                            // f[x] ≡ x for pattern matching
	NumericFunction                        // numeric for numeric arguments
	Protected                              // definitions may not be changed
	Locked                                 // attributes may not be changed
)

// NoAttributes is the empty set of attributes.
const NoAttributes Attributes = 0

var attributeNames = []string{
	"HoldFirst", "HoldRest", "HoldAll", "HoldAllComplete", "SequenceHold",
	"Flat", "Orderless", "Listable", "OneIdentity", "NumericFunction",
	"Protected", "Locked",
}

// Has is true if all attributes of b are set in a.
func (a Attributes) Has(b Attributes) bool {
	return a&b == b
}

// HasAny is true if any attribute of b is set in a.
func (a Attributes) HasAny(b Attributes) bool {
	return a&b != 0
}

// AttributeFromString returns the attribute for a name, or NoAttributes.
func AttributeFromString(name string) Attributes {
	for i, n := range attributeNames {
		if n == name {
			return 1 << i
		}
	}
	return NoAttributes
}

func (a Attributes) String() string {
	var names []string
	for i, n := range attributeNames {
		if a&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	return "{" + strings.Join(names, ", ") + "}"
}
