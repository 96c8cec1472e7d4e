package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueprep/fact-graph/value"
)

func TestRationalToDollarBankersRounding(t *testing.T) {
	t.Parallel()

	// 0.5 cents rounds to even: 0.125 -> 12.5 cents -> 12 (even)
	r, err := value.NewRational(125, 1000) // 0.125
	require.NoError(t, err)
	d := value.RationalToDollar(r)
	assert.Equal(t, int64(12), d.Cents()) // 0.125 * 100 = 12.5 cents, half-to-even rounds down to 12

	r2, err := value.NewRational(135, 1000) // 0.135 -> 13.5 cents -> rounds to 14 (even)
	require.NoError(t, err)
	d2 := value.RationalToDollar(r2)
	assert.Equal(t, int64(14), d2.Cents())
}

func TestMultiplyDollarRational(t *testing.T) {
	t.Parallel()

	d, err := value.NewDollar("10.00")
	require.NoError(t, err)
	half, err := value.NewRational(1, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(500), value.MultiplyDollarRational(d, half).Cents())

	out, ok := value.DivideDollarRational(d, half)
	require.True(t, ok)
	assert.Equal(t, int64(2000), out.Cents())

	_, ok = value.DivideDollarRational(d, value.Rational{})
	assert.False(t, ok)
}
