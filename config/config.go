package config

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/go-playground/validator/v10"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// Config configures an evaluation engine.
type Config struct {
	IterationLimit int    `yaml:"iteration_limit" validate:"gte=0"`
	RecursionLimit int    `yaml:"recursion_limit" validate:"gte=0"`
	Workers        int    `yaml:"workers" validate:"gte=1,lte=1024"`
	TraceLevel     string `yaml:"trace_level" validate:"omitempty,oneof=Debug Info Error"`
}

// TraceKeys are the tracing keys of symex packages.
var TraceKeys = []string{
	"symex.num", "symex.expr", "symex.defs", "symex.termr", "symex.subst",
	"symex.eval", "symex.builtin", "symex.config",
}

var validate = validator.New()

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		IterationLimit: 4096,
		RecursionLimit: 1024,
		Workers:        min(runtime.GOMAXPROCS(0), 1024),
		TraceLevel:     "Error",
	}
}

// Load reads a configuration in YAML format. Values not present in the input
// are taken from the defaults.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads a configuration file in YAML format.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tracer().Debugf("loading configuration from %s", path)
	return Load(f)
}

// FromGlobal creates a configuration from the global application
// configuration. Keys are "symex.iteration-limit", "symex.recursion-limit",
// "symex.workers" and "symex.trace-level".
func FromGlobal() (*Config, error) {
	c := Default()
	if gconf.IsSet("symex.iteration-limit") {
		c.IterationLimit = gconf.GetInt("symex.iteration-limit")
	}
	if gconf.IsSet("symex.recursion-limit") {
		c.RecursionLimit = gconf.GetInt("symex.recursion-limit")
	}
	if gconf.IsSet("symex.workers") {
		c.Workers = gconf.GetInt("symex.workers")
	}
	if gconf.IsSet("symex.trace-level") {
		c.TraceLevel = gconf.GetString("symex.trace-level")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the ranges of configuration values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ConfigureTracing sets the trace level of all symex tracers.
func (c *Config) ConfigureTracing() {
	if c.TraceLevel == "" {
		return
	}
	level := tracing.TraceLevelFromString(c.TraceLevel)
	for _, key := range TraceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}
