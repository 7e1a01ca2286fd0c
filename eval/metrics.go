package eval

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rewriteSteps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "symex_eval_rewrite_steps_total",
		Help: "Total number of rewrite steps performed",
	})

	ruleApplications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "symex_eval_rule_applications_total",
		Help: "Total number of rules tried, by kind of rule",
	}, []string{"kind"})

	tokenHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "symex_eval_token_hits_total",
		Help: "Total number of evaluations skipped for expressions already in normal form",
	})

	conditionsRaised = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "symex_eval_conditions_total",
		Help: "Total number of conditions raised, by kind",
	}, []string{"condition"})

	evaluationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "symex_eval_duration_seconds",
		Help:    "Duration of top-level evaluations",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	})
)
