package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueprep/fact-graph/expr"
	"github.com/trueprep/fact-graph/result"
	"github.com/trueprep/fact-graph/value"
)

func TestNot(t *testing.T) {
	t.Parallel()

	v, err := expr.Not{Operand: boolConst(true)}.Eval(newFakeCtx())
	require.NoError(t, err)
	assert.Equal(t, value.Bool(false), v.MustSingle().MustValue())
}

func TestAllShortCircuitsOnFalseDespiteLaterIncomplete(t *testing.T) {
	t.Parallel()

	a := expr.All{Operands: []expr.Node{
		boolConst(true),
		boolConst(false),
		nodeOfResult(result.OfIncomplete()),
	}}
	v, err := a.Eval(newFakeCtx())
	require.NoError(t, err)
	r := v.MustSingle()
	assert.True(t, r.IsComplete())
	assert.Equal(t, value.Bool(false), r.MustValue())
}

func TestAllIncompleteWithoutShortCircuit(t *testing.T) {
	t.Parallel()

	a := expr.All{Operands: []expr.Node{
		boolConst(true),
		nodeOfResult(result.OfIncomplete()),
	}}
	v, err := a.Eval(newFakeCtx())
	require.NoError(t, err)
	assert.False(t, v.MustSingle().HasValue())
}

func TestAnyShortCircuitsOnTrueDespiteLaterIncomplete(t *testing.T) {
	t.Parallel()

	a := expr.Any{Operands: []expr.Node{
		boolConst(false),
		boolConst(true),
		nodeOfResult(result.OfIncomplete()),
	}}
	v, err := a.Eval(newFakeCtx())
	require.NoError(t, err)
	r := v.MustSingle()
	assert.True(t, r.IsComplete())
	assert.Equal(t, value.Bool(true), r.MustValue())
}

func TestAllPlaceholderDemotes(t *testing.T) {
	t.Parallel()

	a := expr.All{Operands: []expr.Node{
		boolConst(true),
		nodeOfResult(result.OfPlaceholder(value.Bool(true))),
	}}
	v, err := a.Eval(newFakeCtx())
	require.NoError(t, err)
	r := v.MustSingle()
	assert.False(t, r.IsComplete())
	assert.Equal(t, value.Bool(true), r.MustValue())
}
