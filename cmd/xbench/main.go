package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/symex/builtin"
	"github.com/npillmayer/symex/config"
	"github.com/npillmayer/symex/defs"
	"github.com/npillmayer/symex/eval"
	"github.com/npillmayer/symex/expr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var options struct {
	repeat     int
	traceLevel string
	configFile string
	dump       bool
	list       bool
}

var rootCmd = &cobra.Command{
	Use:   "xbench [suite …]",
	Short: "Run benchmarks for the symex rewrite engine",
	RunE:  run,
}

func init() {
	flags := rootCmd.Flags()
	flags.IntVar(&options.repeat, "repeat", 0, "repeat each benchmark n times (0 = automatic)")
	flags.StringVar(&options.traceLevel, "trace", "Error", "Trace level [Debug|Info|Error]")
	flags.StringVar(&options.configFile, "config", "", "engine configuration file (YAML)")
	flags.BoolVar(&options.dump, "dump", false, "print normal forms as trees")
	flags.BoolVar(&options.list, "list", false, "list available suites")
}

func main() {
	gtrace.SyntaxTracer = gologadapter.New()
	tracer().SetTraceLevel(tracing.LevelInfo)
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if options.list {
		for _, name := range suiteNames() {
			pterm.Println(name)
		}
		return nil
	}
	conf := config.Default()
	if options.configFile != "" {
		var err error
		if conf, err = config.LoadFile(options.configFile); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("trace") || options.configFile == "" {
		conf.TraceLevel = options.traceLevel
	}
	conf.ConfigureTracing()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(conf.TraceLevel))
	names := args
	if len(names) == 0 {
		names = suiteNames()
	}
	for _, name := range names {
		if _, ok := suites[name]; !ok {
			return fmt.Errorf("unknown benchmark suite %q", name)
		}
	}
	d := defs.New()
	builtin.Load(d)
	en := eval.New(d, eval.WithConfig(conf))
	pterm.Info.Println("Evaluation benchmarks")
	data := pterm.TableData{{"Suite", "Benchmark", "Loops", "Average", "Best", "Result"}}
	for _, name := range names {
		for _, b := range suites[name] {
			t, result := runBenchmark(en, b, options.repeat)
			tracer().Infof("%s: %s: %d loops", name, b.name, t.loops)
			data = append(data, []string{
				name, truncate(b.name), fmt.Sprint(t.loops),
				formatDuration(t.average()), formatDuration(t.best), truncate(result.String()),
			})
			if options.dump {
				pterm.Println(b.name)
				pterm.DefaultTree.WithRoot(treeOf(result)).Render()
			}
		}
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// --- Timing ----------------------------------------------------------------

type timing struct {
	loops int
	total time.Duration
	best  time.Duration
}

func (t timing) average() time.Duration {
	if t.loops == 0 {
		return 0
	}
	return t.total / time.Duration(t.loops)
}

// checkpoints are the loop counts after which automatic repetition checks
// if enough time has passed.
var checkpoints = []int{5, 10, 100, 1000, 5000}

const maxLoops = 10000

// runBenchmark evaluates a benchmark expression repeatedly. If repeat is 0,
// the number of loops is chosen automatically.
func runBenchmark(en *eval.Engine, b benchmark, repeat int) (timing, expr.Node) {
	n := b.build()
	result, report := en.Evaluate(context.Background(), n)
	if err := report.Err(); err != nil {
		tracer().Errorf("%s: %v", b.name, err)
	}
	if b.normal {
		n = result
	}
	loops := repeat
	if loops <= 0 {
		loops = maxLoops
	}
	t := timing{best: time.Duration(1<<63 - 1)}
	for i := 1; i <= loops; i++ {
		start := time.Now()
		en.Evaluate(context.Background(), n)
		elapsed := time.Since(start)
		t.loops++
		t.total += elapsed
		t.best = min(t.best, elapsed)
		if repeat <= 0 && isCheckpoint(i) && t.total > time.Second {
			break
		}
	}
	return t, result
}

func isCheckpoint(i int) bool {
	for _, c := range checkpoints {
		if i == c {
			return true
		}
	}
	return false
}

func formatDuration(d time.Duration) string {
	s := d.Seconds()
	switch {
	case s < 1e-6:
		return fmt.Sprintf("%4.3g ns", s*1e9)
	case s < 1e-3:
		return fmt.Sprintf("%4.3g µs", s*1e6)
	case s < 1:
		return fmt.Sprintf("%4.3g ms", s*1e3)
	}
	return fmt.Sprintf("%4.3g s", s)
}

func truncate(s string) string {
	if len(s) > 50 {
		return s[:50] + "…"
	}
	return s
}

// --- Tree display ----------------------------------------------------------

// treeOf creates a tree display of an expression.
func treeOf(n expr.Node) pterm.TreeNode {
	ll := leveledNode(n, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d", len(ll))
	return pterm.NewTreeFromLeveledList(ll)
}

func leveledNode(n expr.Node, ll pterm.LeveledList, level int) pterm.LeveledList {
	e, ok := n.(*expr.Expression)
	if !ok {
		return append(ll, pterm.LeveledListItem{Level: level, Text: n.String()})
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: e.Head().String()})
	for _, l := range e.Leaves() {
		ll = leveledNode(l, ll, level+1)
	}
	return ll
}
