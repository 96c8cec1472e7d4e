package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueprep/fact-graph/expr"
	"github.com/trueprep/fact-graph/value"
)

func TestEqualAndNotEqual(t *testing.T) {
	t.Parallel()

	eq := expr.Equal{Left: intConst(5), Right: intConst(5)}
	v, err := eq.Eval(newFakeCtx())
	require.NoError(t, err)
	assert.Equal(t, value.Bool(true), v.MustSingle().MustValue())

	ne := expr.NotEqual{Left: intConst(5), Right: intConst(6)}
	v, err = ne.Eval(newFakeCtx())
	require.NoError(t, err)
	assert.Equal(t, value.Bool(true), v.MustSingle().MustValue())
}

func TestGreaterLessThan(t *testing.T) {
	t.Parallel()

	gt := expr.GreaterThan{Left: intConst(5), Right: intConst(3)}
	v, err := gt.Eval(newFakeCtx())
	require.NoError(t, err)
	assert.Equal(t, value.Bool(true), v.MustSingle().MustValue())

	lt := expr.LessThan{Left: intConst(5), Right: intConst(3)}
	v, err = lt.Eval(newFakeCtx())
	require.NoError(t, err)
	assert.Equal(t, value.Bool(false), v.MustSingle().MustValue())
}

func TestGreaterOfLesserOf(t *testing.T) {
	t.Parallel()

	go_ := expr.GreaterOf{Left: intConst(5), Right: intConst(9)}
	v, err := go_.Eval(newFakeCtx())
	require.NoError(t, err)
	assert.Equal(t, value.Int(9), v.MustSingle().MustValue())

	lo := expr.LesserOf{Left: intConst(5), Right: intConst(9)}
	v, err = lo.Eval(newFakeCtx())
	require.NoError(t, err)
	assert.Equal(t, value.Int(5), v.MustSingle().MustValue())
}

func TestMaximumMinimum(t *testing.T) {
	t.Parallel()

	max := expr.Maximum{Operands: []expr.Node{intConst(3), intConst(9), intConst(1)}}
	v, err := max.Eval(newFakeCtx())
	require.NoError(t, err)
	assert.Equal(t, value.Int(9), v.MustSingle().MustValue())

	min := expr.Minimum{Operands: []expr.Node{intConst(3), intConst(9), intConst(1)}}
	v, err = min.Eval(newFakeCtx())
	require.NoError(t, err)
	assert.Equal(t, value.Int(1), v.MustSingle().MustValue())
}
