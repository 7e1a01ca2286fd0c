package eval

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/npillmayer/symex/defs"
	"github.com/npillmayer/symex/expr"
	"github.com/npillmayer/symex/termr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// Default limits of an engine.
const (
	DefaultIterationLimit = 4096
	DefaultRecursionLimit = 1024
)

// Definitions is the view of the symbol table the engine needs.
// It is implemented by *defs.Definitions.
type Definitions interface {
	expr.Definitions
	Attributes(name string) defs.Attributes
	Values(name string, kind defs.ValueKind) []termr.Rule
	AnyUserDefined(names []string) bool
}

// Engine evaluates expressions with respect to a set of definitions.
// An Engine is safe for concurrent use, provided the definitions are.
type Engine struct {
	defs           Definitions
	matcher        termr.Matcher
	iterationLimit int
	recursionLimit int
	workers        int
}

// New creates an engine for a set of definitions.
func New(d Definitions, opts ...Option) *Engine {
	en := &Engine{
		defs:           d,
		matcher:        termr.DefaultMatcher{},
		iterationLimit: DefaultIterationLimit,
		recursionLimit: DefaultRecursionLimit,
		workers:        1,
	}
	for _, opt := range opts {
		opt(en)
	}
	return en
}

// Definitions returns the definitions of the engine.
func (en *Engine) Definitions() Definitions {
	return en.defs
}

// Session starts a new evaluation session. Clients usually call Evaluate
// instead; sessions are useful for driving rules directly, as an evaluation
// session implements termr.Context.
func (en *Engine) Session(ctx context.Context) *Evaluation {
	if ctx == nil {
		ctx = context.Background()
	}
	id := uuid.New()
	return &Evaluation{
		engine: en,
		ctx:    ctx,
		report: &Report{Session: id},
	}
}

// Evaluate evaluates n to normal form. It returns the result and a report of
// the session, which lists the conditions raised during evaluation.
//
// If evaluation is aborted (limits exceeded, or ctx cancelled), the result is
// $Aborted. An uncaught Return[x] results in x. A symbol whose own-values
// refer back to it, directly or through other symbols, runs into the recursion
// limit. An expression which keeps being rewritten on the same level, such as
// f[x_] :> f[x+1], runs into the iteration limit.
func (en *Engine) Evaluate(ctx context.Context, n expr.Node) (expr.Node, *Report) {
	return en.Session(ctx).Run(n)
}

// EvaluateAll evaluates a batch of independent expressions on up to as many
// goroutines as configured by WithWorkers. Results and reports are returned
// in input order. The error is non-nil if ctx has been cancelled.
func (en *Engine) EvaluateAll(ctx context.Context, nodes []expr.Node) ([]expr.Node, []*Report, error) {
	results := make([]expr.Node, len(nodes))
	reports := make([]*Report, len(nodes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, en.workers))
	for i, n := range nodes {
		i, n := i, n
		g.Go(func() error {
			results[i], reports[i] = en.Evaluate(gctx, n)
			return ctx.Err()
		})
	}
	err := g.Wait()
	return results, reports, err
}

// Run evaluates n within the session. See Engine.Evaluate.
func (ev *Evaluation) Run(n expr.Node) (expr.Node, *Report) {
	ctx, span := otel.Tracer("symex/eval").Start(ev.ctx, "Evaluate",
		trace.WithAttributes(attribute.String("symex.session", ev.report.Session.String())))
	defer span.End()
	ev.ctx = ctx
	start := time.Now()
	tracer().P("session", ev.report.Session.String()).Debugf("evaluate %s", n)
	result, sig := ev.eval(n)
	if sig != nil {
		switch sig.Kind {
		case termr.AbortSignal:
			result = expr.Aborted
		case termr.ReturnSignal:
			result = sig.Value
		}
	}
	ev.pending = nil
	ev.report.Stats.Duration = time.Since(start)
	evaluationSeconds.Observe(ev.report.Stats.Duration.Seconds())
	span.SetAttributes(
		attribute.Int("symex.steps", ev.report.Stats.Steps),
		attribute.Int("symex.conditions", len(ev.report.Conditions)),
	)
	if ev.report.Aborted() {
		span.SetStatus(codes.Error, "evaluation aborted")
	}
	tracer().P("session", ev.report.Session.String()).Debugf("result %s, %s", result, ev.report)
	return result, ev.report
}
