package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueprep/fact-graph/value"
)

func TestEnum(t *testing.T) {
	t.Parallel()

	e, err := value.NewEnum("/filingStatus/options", "single", []string{"single", "mfj", "mfs"})
	require.NoError(t, err)
	assert.Equal(t, "single", e.String())
	assert.Equal(t, "/filingStatus/options", e.OptionsPath())

	_, err = value.NewEnum("/filingStatus/options", "bogus", []string{"single", "mfj"})
	require.ErrorIs(t, err, value.ErrInvalidValue)

	other, err := value.NewEnum("/filingStatus/options", "single", []string{"single", "mfj"})
	require.NoError(t, err)
	assert.True(t, e.Equal(other))

	diffPath, err := value.NewEnum("/other/options", "single", []string{"single"})
	require.NoError(t, err)
	assert.False(t, e.Equal(diffPath))
}

func TestMultiEnum(t *testing.T) {
	t.Parallel()

	opts := []string{"a", "b", "c"}
	m1, err := value.NewMultiEnum("/opts", []string{"a", "b"}, opts)
	require.NoError(t, err)
	m2, err := value.NewMultiEnum("/opts", []string{"b", "a"}, opts)
	require.NoError(t, err)

	assert.True(t, m1.Equal(m2), "MultiEnum equality is order-insensitive")

	_, err = value.NewMultiEnum("/opts", []string{"z"}, opts)
	require.ErrorIs(t, err, value.ErrInvalidValue)
}
