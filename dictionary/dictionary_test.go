package dictionary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueprep/fact-graph/dictionary"
	"github.com/trueprep/fact-graph/expr"
	"github.com/trueprep/fact-graph/fgpath"
	"github.com/trueprep/fact-graph/value"
)

func TestBuilderDefineAndLookup(t *testing.T) {
	t.Parallel()

	d, err := dictionary.NewBuilder().
		Define(dictionary.FactDefinition{
			AbstractPath: "/age",
			DeclaredType: value.KindInt,
			IsWritable:   true,
		}).
		Define(dictionary.FactDefinition{
			AbstractPath: "/isAdult",
			DeclaredType: value.KindBool,
			Expression: expr.GreaterThanOrEqual{
				Left:  expr.Dep{Path: fgpath.MustParse("/age")},
				Right: expr.Const{Value: value.Int(18)},
			},
		}).
		Freeze()
	require.NoError(t, err)

	def, ok := d.Lookup("/age")
	require.True(t, ok)
	assert.True(t, def.IsWritable)

	def, ok = d.Lookup("/isAdult")
	require.True(t, ok)
	assert.NotNil(t, def.Expression)

	_, ok = d.Lookup("/nope")
	assert.False(t, ok)
}

func TestHasAbstractAndAbstractPathsSorted(t *testing.T) {
	t.Parallel()

	d, err := dictionary.NewBuilder().
		Define(dictionary.FactDefinition{AbstractPath: "/b", IsWritable: true, DeclaredType: value.KindInt}).
		Define(dictionary.FactDefinition{AbstractPath: "/a", IsWritable: true, DeclaredType: value.KindInt}).
		Freeze()
	require.NoError(t, err)

	assert.True(t, d.HasAbstract("/a"))
	assert.False(t, d.HasAbstract("/z"))
	assert.Equal(t, []string{"/a", "/b"}, d.AbstractPaths())
}

func TestModuleResolution(t *testing.T) {
	t.Parallel()

	d, err := dictionary.NewBuilder().
		Module("federal", fgpath.MustParse("/federal")).
		Freeze()
	require.NoError(t, err)

	p, ok := d.ResolveModule("federal")
	require.True(t, ok)
	assert.Equal(t, "/federal", p.String())

	_, ok = d.ResolveModule("state")
	assert.False(t, ok)
}

func TestDefineRejectsDuplicatePath(t *testing.T) {
	t.Parallel()

	_, err := dictionary.NewBuilder().
		Define(dictionary.FactDefinition{AbstractPath: "/a", IsWritable: true, DeclaredType: value.KindInt}).
		Define(dictionary.FactDefinition{AbstractPath: "/a", IsWritable: true, DeclaredType: value.KindInt}).
		Freeze()
	require.Error(t, err)
	assert.ErrorIs(t, err, dictionary.ErrDictionary)
}

func TestDefineRejectsRelativeAbstractPath(t *testing.T) {
	t.Parallel()

	_, err := dictionary.NewBuilder().
		Define(dictionary.FactDefinition{AbstractPath: "age", IsWritable: true, DeclaredType: value.KindInt}).
		Freeze()
	require.Error(t, err)
}

func TestDefineRejectsDerivedFactWithoutExpression(t *testing.T) {
	t.Parallel()

	_, err := dictionary.NewBuilder().
		Define(dictionary.FactDefinition{AbstractPath: "/derived", IsWritable: false, DeclaredType: value.KindBool}).
		Freeze()
	require.Error(t, err)
}

func TestDefineRejectsWritableWithExpression(t *testing.T) {
	t.Parallel()

	_, err := dictionary.NewBuilder().
		Define(dictionary.FactDefinition{
			AbstractPath: "/a",
			IsWritable:   true,
			DeclaredType: value.KindInt,
			Expression:   expr.Const{Value: value.Int(1)},
		}).
		Freeze()
	require.Error(t, err)
}

func TestDefineRejectsDuplicateModule(t *testing.T) {
	t.Parallel()

	_, err := dictionary.NewBuilder().
		Module("federal", fgpath.MustParse("/federal")).
		Module("federal", fgpath.MustParse("/other")).
		Freeze()
	require.Error(t, err)
}
