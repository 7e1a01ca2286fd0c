/*
Package symex is the evaluation core of a symbolic computation engine.

Expressions are trees of typed nodes, which are rewritten to a normal form
by a rule based term rewriting algorithm. Rewriting is governed by per-symbol
attributes like associativity (Flat), commutativity (Orderless) or the policy
for evaluating arguments (HoldAll and friends). Package structure is as follows:

■ num: Package num implements the numeric tower: exact integers and rationals,
machine reals, arbitrary precision reals and complex numbers.

■ expr: Package expr implements the node model, i.e. atoms and compound expressions,
together with canonical ordering, structural sharing and memoization tokens.

■ defs: Package defs is the symbol table, holding attributes and rules for symbols
and a logical clock to detect changes of definitions.

■ termr: Package termr implements rewrite rules and pattern matching.

■ subst: Package subst performs variable and slot substitution, aware of scoping
constructs.

■ eval: Package eval is the rewrite engine, driving expressions to a fixed point.

■ builtin: Package builtin provides a small core of structural builtins.

■ config: Package config holds the configuration of an evaluation engine.

Command xbench (in cmd/xbench) runs benchmarks for the engine.

The base package contains the condition types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symex
