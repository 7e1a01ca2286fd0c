/*
Package config holds the configuration of a symex evaluation engine.

A configuration may be read from YAML:

    iteration_limit: 4096
    recursion_limit: 1024
    workers: 4
    trace_level: Info

or taken from the global configuration of an application (see package
schuko/gconf), with keys prefixed by "symex.". Missing values are taken from
the defaults.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.config'.
func tracer() tracing.Trace {
	return tracing.Select("symex.config")
}
