package symex

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

// --- Conditions ------------------------------------------------------------

// ConditionKind is a category type for conditions raised during evaluation.
type ConditionKind int8

// Kinds of conditions.
const (
	NoCondition            ConditionKind = iota
	NumericOverflow                      // non-finite machine number
	ThreadLengthMismatch                 // Listable arguments of unequal length
	IterationLimitExceeded               // rewrite loop did not reach a fixed point
	RecursionLimitExceeded               // evaluation frames nested too deep
	SlotArgumentInvalid                  // malformed Slot or SlotSequence
	EvaluationStopped                    // evaluation has been cancelled
)

var conditionNames = [...]string{
	"none", "overflow", "tdlen", "itlim", "reclim", "slot", "stopped",
}

func (k ConditionKind) String() string {
	if k < 0 || int(k) >= len(conditionNames) {
		return fmt.Sprintf("condition(%d)", int(k))
	}
	return conditionNames[k]
}

// Aborts is true for conditions which terminate the complete evaluation.
func (k ConditionKind) Aborts() bool {
	return k == IterationLimitExceeded || k == RecursionLimitExceeded || k == EvaluationStopped
}

// Condition is a domain error raised during evaluation. Conditions do not
// unwind the evaluation (with the exception of aborting conditions), but are
// collected and reported to the caller together with a result.
//
// Symbol is the name of the symbol the condition is attributed to, as in
// messages of the form
//
//    Thread::tdlen: Objects of unequal length cannot be combined.
//
type Condition struct {
	Kind    ConditionKind
	Symbol  string
	Message string
}

// Errorf creates a condition of a given kind, attributed to a symbol.
func Errorf(kind ConditionKind, symbol string, format string, args ...interface{}) *Condition {
	return &Condition{
		Kind:    kind,
		Symbol:  symbol,
		Message: fmt.Sprintf(format, args...),
	}
}

func (c *Condition) Error() string {
	if c.Symbol == "" {
		return fmt.Sprintf("%s: %s", c.Kind, c.Message)
	}
	return fmt.Sprintf("%s::%s: %s", c.Symbol, c.Kind, c.Message)
}

// Is makes conditions comparable by kind with errors.Is.
func (c *Condition) Is(target error) bool {
	var t *Condition
	if errors.As(target, &t) {
		return t.Kind == c.Kind && (t.Symbol == "" || t.Symbol == c.Symbol)
	}
	return false
}

// KindOf returns the kind of a condition wrapped in err, or NoCondition.
func KindOf(err error) ConditionKind {
	var c *Condition
	if errors.As(err, &c) {
		return c.Kind
	}
	return NoCondition
}

// Reporter is a type which receives conditions.
type Reporter interface {
	Report(c *Condition)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(c *Condition)

// Report calls f(c).
func (f ReporterFunc) Report(c *Condition) {
	f(c)
}
