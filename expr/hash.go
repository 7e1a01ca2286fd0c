package expr

import (
	"github.com/cnf/structhash"
)

// hashNode is the serializable shadow of a node, fed to structhash.
type hashNode struct {
	Kind   string     `hash:"name:k"`
	Value  string     `hash:"name:v"`
	Head   []hashNode `hash:"name:h"`
	Leaves []hashNode `hash:"name:l"`
}

func shadow(n Node) hashNode {
	switch x := n.(type) {
	case Symbol:
		return hashNode{Kind: "Symbol", Value: x.name}
	case String:
		return hashNode{Kind: "String", Value: x.value}
	case Number:
		return hashNode{Kind: x.HeadName(), Value: x.n.String()}
	case *Expression:
		h := hashNode{Kind: "Expression", Head: []hashNode{shadow(x.head)}}
		h.Leaves = make([]hashNode, len(x.leaves))
		for i, l := range x.leaves {
			h.Leaves[i] = shadow(l)
		}
		return h
	}
	panic("unknown node type")
}

// Hash returns a structural content hash of n. Nodes which are the same
// (see Node.Same) and of the same numeric kinds hash to the same value.
// Memoization tokens do not contribute to the hash.
func Hash(n Node) (string, error) {
	h, err := structhash.Hash(shadow(n), 1)
	if err != nil {
		tracer().Errorf("cannot hash %s: %v", n, err)
		return "", err
	}
	return h, nil
}
