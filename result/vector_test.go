package result_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueprep/fact-graph/result"
	"github.com/trueprep/fact-graph/value"
)

func intResult(n int32) result.Result { return result.OfComplete(value.Int(n)) }

func addAll(args ...result.Result) result.Result {
	status := result.Complete
	var sum int32
	for _, a := range args {
		status = result.Combine(status, a.Status())
		if v, ok := a.Value(); ok {
			sum += int32(v.(value.Int))
		}
	}
	if status == result.Incomplete {
		return result.OfIncomplete()
	}
	if status == result.Placeholder {
		return result.OfPlaceholder(value.Int(sum))
	}
	return result.OfComplete(value.Int(sum))
}

func TestVectorizeAllSingle(t *testing.T) {
	t.Parallel()

	out, err := result.VectorizeN(addAll, result.Single(intResult(2)), result.Single(intResult(3)))
	require.NoError(t, err)
	assert.True(t, out.IsSingle())
	assert.Equal(t, value.Int(5), out.MustSingle().MustValue())
}

func TestVectorizeBroadcastsSingleOverMultiple(t *testing.T) {
	t.Parallel()

	multi := result.Multiple([]result.Result{intResult(1), intResult(2), intResult(3)}, true)
	single := result.Single(intResult(10))

	out, err := result.VectorizeN(addAll, multi, single)
	require.NoError(t, err)
	require.True(t, out.IsMultiple())
	require.Equal(t, 3, out.Len())

	got := out.Flatten()
	assert.Equal(t, value.Int(11), got[0].MustValue())
	assert.Equal(t, value.Int(12), got[1].MustValue())
	assert.Equal(t, value.Int(13), got[2].MustValue())
	assert.True(t, out.CollectionComplete())
}

func TestVectorizeMultipleCompleteFlagIsAnded(t *testing.T) {
	t.Parallel()

	a := result.Multiple([]result.Result{intResult(1), intResult(2)}, true)
	b := result.Multiple([]result.Result{intResult(3), intResult(4)}, false)

	out, err := result.VectorizeN(addAll, a, b)
	require.NoError(t, err)
	assert.False(t, out.CollectionComplete())
}

func TestVectorizeShapeMismatchIsFatal(t *testing.T) {
	t.Parallel()

	a := result.Multiple([]result.Result{intResult(1), intResult(2)}, true)
	b := result.Multiple([]result.Result{intResult(3), intResult(4), intResult(5)}, true)

	_, err := result.VectorizeN(addAll, a, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, result.ErrShapeMismatch)
}

func TestVectorizePropagatesIncompleteElementwise(t *testing.T) {
	t.Parallel()

	multi := result.Multiple([]result.Result{intResult(1), result.OfIncomplete()}, true)
	single := result.Single(intResult(1))

	out, err := result.VectorizeN(addAll, multi, single)
	require.NoError(t, err)
	got := out.Flatten()
	assert.True(t, got[0].IsComplete())
	assert.False(t, got[1].HasValue())
}

func TestVectorizeList(t *testing.T) {
	t.Parallel()

	sum := func(rs []result.Result) result.Result { return addAll(rs...) }

	out, err := result.VectorizeList(sum, []result.Vector{
		result.Single(intResult(1)),
		result.Single(intResult(2)),
		result.Single(intResult(3)),
	})
	require.NoError(t, err)
	assert.Equal(t, value.Int(6), out.MustSingle().MustValue())
}
