package result_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trueprep/fact-graph/result"
	"github.com/trueprep/fact-graph/value"
)

func TestStatusOrdering(t *testing.T) {
	t.Parallel()

	assert.True(t, result.Incomplete < result.Placeholder)
	assert.True(t, result.Placeholder < result.Complete)
}

func TestResultAccessors(t *testing.T) {
	t.Parallel()

	c := result.OfComplete(value.Bool(true))
	assert.True(t, c.IsComplete())
	assert.True(t, c.HasValue())
	v, ok := c.Value()
	assert.True(t, ok)
	assert.Equal(t, value.Bool(true), v)

	p := result.OfPlaceholder(value.Int(1))
	assert.False(t, p.IsComplete())
	assert.True(t, p.HasValue())

	i := result.OfIncomplete()
	assert.False(t, i.IsComplete())
	assert.False(t, i.HasValue())
	assert.Panics(t, func() { i.MustValue() })
}

func TestDemoteToPlaceholder(t *testing.T) {
	t.Parallel()

	c := result.OfComplete(value.Int(5))
	d := c.DemoteToPlaceholder()
	assert.Equal(t, result.Placeholder, d.Status())
	assert.Equal(t, value.Int(5), d.MustValue())

	i := result.OfIncomplete()
	assert.Equal(t, result.Incomplete, i.DemoteToPlaceholder().Status())
}

func TestResultMap(t *testing.T) {
	t.Parallel()

	c := result.OfComplete(value.Int(5))
	doubled := c.Map(func(v value.Value) value.Value {
		n := v.(value.Int)
		return value.Int(int32(n) * 2)
	})
	assert.Equal(t, value.Int(10), doubled.MustValue())
	assert.True(t, doubled.IsComplete())

	i := result.OfIncomplete()
	called := false
	out := i.Map(func(value.Value) value.Value { called = true; return nil })
	assert.False(t, called)
	assert.False(t, out.HasValue())
}

func TestResultAndThen(t *testing.T) {
	t.Parallel()

	c := result.OfComplete(value.Int(5))
	chained := c.AndThen(func(v value.Value) result.Result {
		return result.OfPlaceholder(v)
	})
	assert.Equal(t, result.Placeholder, chained.Status())

	i := result.OfIncomplete()
	out := i.AndThen(func(value.Value) result.Result {
		t.Fatal("should not be called on Incomplete")
		return result.Result{}
	})
	assert.False(t, out.HasValue())
}

func TestCombine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, result.Complete, result.Combine(result.Complete, result.Complete))
	assert.Equal(t, result.Placeholder, result.Combine(result.Complete, result.Placeholder))
	assert.Equal(t, result.Incomplete, result.Combine(result.Complete, result.Incomplete, result.Placeholder))
	assert.Equal(t, result.Complete, result.Combine())
}
