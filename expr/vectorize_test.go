package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueprep/fact-graph/expr"
	"github.com/trueprep/fact-graph/fgpath"
	"github.com/trueprep/fact-graph/result"
	"github.com/trueprep/fact-graph/value"
)

func TestAddBroadcastsOverWildcardDep(t *testing.T) {
	t.Parallel()

	ctx := newFakeCtx()
	ctx.with("/a/x", result.Multiple([]result.Result{
		result.OfComplete(value.NewDollarCents(100)),
		result.OfComplete(value.NewDollarCents(200)),
	}, true))
	ctx.with("/fee", result.Single(result.OfComplete(value.NewDollarCents(10))))

	a := expr.Add{
		Left:  expr.Dep{Path: fgpath.MustParse("/a/x")},
		Right: expr.Dep{Path: fgpath.MustParse("/fee")},
	}
	v, err := a.Eval(ctx)
	require.NoError(t, err)
	require.True(t, v.IsMultiple())
	got := v.Flatten()
	assert.Equal(t, int64(110), got[0].MustValue().(value.Dollar).Cents())
	assert.Equal(t, int64(210), got[1].MustValue().(value.Dollar).Cents())
}

func TestAddShapeMismatchIsFatal(t *testing.T) {
	t.Parallel()

	ctx := newFakeCtx()
	ctx.with("/a/x", result.Multiple([]result.Result{
		result.OfComplete(value.NewDollarCents(100)),
		result.OfComplete(value.NewDollarCents(200)),
	}, true))
	ctx.with("/b/y", result.Multiple([]result.Result{
		result.OfComplete(value.NewDollarCents(1)),
		result.OfComplete(value.NewDollarCents(2)),
		result.OfComplete(value.NewDollarCents(3)),
	}, true))

	a := expr.Add{
		Left:  expr.Dep{Path: fgpath.MustParse("/a/x")},
		Right: expr.Dep{Path: fgpath.MustParse("/b/y")},
	}
	_, err := a.Eval(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, result.ErrShapeMismatch)
}
