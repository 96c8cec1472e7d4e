package fgpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueprep/fact-graph/fgpath"
)

func TestParseAbsolute(t *testing.T) {
	t.Parallel()

	p, err := fgpath.Parse("/exp/*/amount")
	require.NoError(t, err)
	require.True(t, p.Absolute)
	require.Len(t, p.Segments, 3)
	assert.Equal(t, fgpath.Child, p.Segments[0].Kind)
	assert.Equal(t, "exp", p.Segments[0].Name)
	assert.Equal(t, fgpath.Wildcard, p.Segments[1].Kind)
	assert.Equal(t, fgpath.Child, p.Segments[2].Kind)
	assert.True(t, p.IsAbstract())
	assert.False(t, p.IsConcrete())
}

func TestParseMember(t *testing.T) {
	t.Parallel()

	p, err := fgpath.Parse("/exp/#a/amount")
	require.NoError(t, err)
	require.Len(t, p.Segments, 3)
	assert.Equal(t, fgpath.Member, p.Segments[1].Kind)
	assert.Equal(t, "a", p.Segments[1].Name)
	assert.False(t, p.IsAbstract())
	assert.True(t, p.IsConcrete())

	abstract := p.ToAbstract()
	assert.Equal(t, "/exp/*/amount", abstract.String())
}

func TestParseRelative(t *testing.T) {
	t.Parallel()

	p, err := fgpath.Parse("../sibling")
	require.NoError(t, err)
	require.False(t, p.Absolute)
	require.Len(t, p.Segments, 2)
	assert.Equal(t, fgpath.Parent, p.Segments[0].Kind)
	assert.Equal(t, "sibling", p.Segments[1].Name)
}

func TestParseDotSelf(t *testing.T) {
	t.Parallel()

	p, err := fgpath.Parse("./amount")
	require.NoError(t, err)
	require.Len(t, p.Segments, 1)
	assert.Equal(t, "amount", p.Segments[0].Name)
}

func TestParseRoot(t *testing.T) {
	t.Parallel()

	p, err := fgpath.Parse("/")
	require.NoError(t, err)
	assert.True(t, p.Absolute)
	assert.Empty(t, p.Segments)
	assert.Equal(t, "/", p.String())
}

func TestParseInvalidHashWithoutId(t *testing.T) {
	t.Parallel()

	_, err := fgpath.Parse("/exp/#")
	require.Error(t, err)
	assert.ErrorIs(t, err, fgpath.ErrInvalidPath)
}

func TestNormalizeFoldsDotDot(t *testing.T) {
	t.Parallel()

	p, err := fgpath.Parse("/exp/#a/../amount")
	require.NoError(t, err)
	norm, err := p.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "/exp/amount", norm.String())
}

func TestNormalizeRejectsEscapeAboveRoot(t *testing.T) {
	t.Parallel()

	p, err := fgpath.Parse("/..")
	require.NoError(t, err)
	_, err = p.Normalize()
	require.Error(t, err)
}

func TestNormalizeRelativeDotDotPreserved(t *testing.T) {
	t.Parallel()

	p, err := fgpath.Parse("../../sibling")
	require.NoError(t, err)
	norm, err := p.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "../../sibling", norm.String())
}

func TestResolve(t *testing.T) {
	t.Parallel()

	base, err := fgpath.Parse("/exp/#a")
	require.NoError(t, err)
	rel, err := fgpath.Parse("../amount")
	require.NoError(t, err)

	resolved, err := base.Resolve(rel)
	require.NoError(t, err)
	assert.Equal(t, "/exp/amount", resolved.String())
}

func TestResolveAbsoluteIgnoresBase(t *testing.T) {
	t.Parallel()

	base, err := fgpath.Parse("/exp/#a")
	require.NoError(t, err)
	abs, err := fgpath.Parse("/other")
	require.NoError(t, err)

	resolved, err := base.Resolve(abs)
	require.NoError(t, err)
	assert.Equal(t, "/other", resolved.String())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a, _ := fgpath.Parse("/exp/#a/amount")
	b, _ := fgpath.Parse("/exp/#a/amount")
	c, _ := fgpath.Parse("/exp/#b/amount")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
