package eval

import (
	"github.com/npillmayer/symex/config"
	"github.com/npillmayer/symex/termr"
)

// Option configures an Engine.
type Option func(*Engine)

// WithIterationLimit sets the maximum number of rewrite steps for a single
// expression. A limit ≤ 0 disables the check.
func WithIterationLimit(n int) Option {
	return func(en *Engine) {
		en.iterationLimit = n
	}
}

// WithRecursionLimit sets the maximum nesting depth of evaluations.
// A limit ≤ 0 disables the check.
func WithRecursionLimit(n int) Option {
	return func(en *Engine) {
		en.recursionLimit = n
	}
}

// WithMatcher replaces the default matcher.
func WithMatcher(m termr.Matcher) Option {
	return func(en *Engine) {
		if m != nil {
			en.matcher = m
		}
	}
}

// WithWorkers sets the number of goroutines used by EvaluateAll.
func WithWorkers(n int) Option {
	return func(en *Engine) {
		en.workers = n
	}
}

// WithConfig applies limits and worker count of a configuration.
func WithConfig(c *config.Config) Option {
	return func(en *Engine) {
		if c == nil {
			return
		}
		en.iterationLimit = c.IterationLimit
		en.recursionLimit = c.RecursionLimit
		en.workers = c.Workers
	}
}
