package symex

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestConditionKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex")
	defer teardown()
	//
	assert.Equal(t, "tdlen", ThreadLengthMismatch.String())
	assert.Equal(t, "itlim", IterationLimitExceeded.String())
	assert.Equal(t, "condition(42)", ConditionKind(42).String())
	assert.True(t, RecursionLimitExceeded.Aborts())
	assert.True(t, EvaluationStopped.Aborts())
	assert.False(t, NumericOverflow.Aborts())
	assert.False(t, SlotArgumentInvalid.Aborts())
}

func TestConditionError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex")
	defer teardown()
	//
	c := Errorf(ThreadLengthMismatch, "Thread", "objects of unequal length")
	assert.Equal(t, "Thread::tdlen: objects of unequal length", c.Error())
	wrapped := fmt.Errorf("evaluating: %w", c)
	assert.True(t, errors.Is(wrapped, &Condition{Kind: ThreadLengthMismatch}))
	assert.True(t, errors.Is(wrapped, &Condition{Kind: ThreadLengthMismatch, Symbol: "Thread"}))
	assert.False(t, errors.Is(wrapped, &Condition{Kind: ThreadLengthMismatch, Symbol: "Plus"}))
	assert.False(t, errors.Is(wrapped, &Condition{Kind: NumericOverflow}))
	assert.Equal(t, ThreadLengthMismatch, KindOf(wrapped))
	assert.Equal(t, NoCondition, KindOf(errors.New("other")))
	joined := errors.Join(errors.New("other"), Errorf(NumericOverflow, "", "too big"))
	assert.Equal(t, NumericOverflow, KindOf(joined))
}

func TestReporterFunc(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex")
	defer teardown()
	//
	var got []*Condition
	var r Reporter = ReporterFunc(func(c *Condition) { got = append(got, c) })
	r.Report(Errorf(SlotArgumentInvalid, "Function", "Slot number %d cannot be filled", 3))
	assert.Len(t, got, 1)
	assert.Equal(t, "Slot number 3 cannot be filled", got[0].Message)
}
