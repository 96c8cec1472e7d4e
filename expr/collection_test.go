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

func TestCount(t *testing.T) {
	t.Parallel()

	ctx := newFakeCtx()
	ctx.with("/exp/amount", result.Multiple([]result.Result{
		result.OfComplete(value.Int(1)),
		result.OfIncomplete(),
		result.OfComplete(value.Int(3)),
	}, true))

	c := expr.Count{Path: fgpath.MustParse("/exp/amount")}
	v, err := c.Eval(ctx)
	require.NoError(t, err)
	assert.Equal(t, value.Int(2), v.MustSingle().MustValue())
}

func TestCollectionSumSkipsIncompleteDemotesOnPlaceholder(t *testing.T) {
	t.Parallel()

	ctx := newFakeCtx()
	ctx.with("/exp/amount", result.Multiple([]result.Result{
		result.OfComplete(value.NewDollarCents(10000)),
		result.OfIncomplete(),
		result.OfPlaceholder(value.NewDollarCents(500)),
	}, true))

	c := expr.CollectionSum{Path: fgpath.MustParse("/exp/amount")}
	v, err := c.Eval(ctx)
	require.NoError(t, err)
	r := v.MustSingle()
	assert.False(t, r.IsComplete())
	assert.Equal(t, int64(10500), r.MustValue().(value.Dollar).Cents())
}

func TestIndexOf(t *testing.T) {
	t.Parallel()

	ctx := newFakeCtx()
	c, err := value.NewCollection([]string{"a", "b", "c"})
	require.NoError(t, err)
	ctx.with("/exp", result.Single(result.OfComplete(c)))

	idx := expr.IndexOf{CollectionPath: fgpath.MustParse("/exp"), Index: intConst(1)}
	v, err := idx.Eval(ctx)
	require.NoError(t, err)
	assert.Equal(t, value.Str("b"), v.MustSingle().MustValue())

	oob := expr.IndexOf{CollectionPath: fgpath.MustParse("/exp"), Index: intConst(9)}
	v, err = oob.Eval(ctx)
	require.NoError(t, err)
	assert.False(t, v.MustSingle().HasValue())
}

func TestFilterAndFind(t *testing.T) {
	t.Parallel()

	ctx := newFakeCtx()
	c, err := value.NewCollection([]string{"a", "b", "c"})
	require.NoError(t, err)
	ctx.with("/exp", result.Single(result.OfComplete(c)))
	ctx.with("/exp/#a/flag", result.Single(result.OfComplete(value.Bool(true))))
	ctx.with("/exp/#b/flag", result.Single(result.OfComplete(value.Bool(false))))
	ctx.with("/exp/#c/flag", result.Single(result.OfComplete(value.Bool(true))))

	pred := expr.Dep{Path: fgpath.MustParse("./flag")}

	filter := expr.Filter{CollectionPath: fgpath.MustParse("/exp"), Predicate: pred}
	v, err := filter.Eval(ctx)
	require.NoError(t, err)
	got := v.MustSingle().MustValue().(value.Collection)
	assert.Equal(t, []string{"a", "c"}, got.Members())

	find := expr.Find{CollectionPath: fgpath.MustParse("/exp"), Predicate: pred}
	v, err = find.Eval(ctx)
	require.NoError(t, err)
	assert.Equal(t, value.Str("a"), v.MustSingle().MustValue())
}
