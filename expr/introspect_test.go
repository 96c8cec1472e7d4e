package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueprep/fact-graph/expr"
	"github.com/trueprep/fact-graph/result"
	"github.com/trueprep/fact-graph/value"
)

func TestIsComplete(t *testing.T) {
	t.Parallel()

	c := expr.IsComplete{Operand: intConst(5)}
	v, err := c.Eval(newFakeCtx())
	require.NoError(t, err)
	assert.Equal(t, value.Bool(true), v.MustSingle().MustValue())
	assert.True(t, v.MustSingle().IsComplete())

	inc := expr.IsComplete{Operand: nodeOfResult(result.OfIncomplete())}
	v, err = inc.Eval(newFakeCtx())
	require.NoError(t, err)
	assert.Equal(t, value.Bool(false), v.MustSingle().MustValue())
	assert.True(t, v.MustSingle().IsComplete())
}
