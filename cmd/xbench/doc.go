/*
Command xbench runs benchmarks for the symex rewrite engine.

Benchmark expressions are built programmatically and evaluated repeatedly,
either a fixed number of times or until about one second has passed. For
every benchmark the number of loops, the average and the best time per loop
are printed as a table.

Usage:

    xbench [flags] [suite …]

Flags:

    --repeat n     repeat each benchmark n times (default: automatic)
    --trace level  trace level [Debug|Info|Error]
    --config file  engine configuration (YAML)
    --dump         print the normal form of each benchmark expression as a tree
    --list         list available suites

Without arguments, all suites are run.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.xbench'
func tracer() tracing.Trace {
	return tracing.Select("symex.xbench")
}
