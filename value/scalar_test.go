package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueprep/fact-graph/value"
)

func TestDollar(t *testing.T) {
	t.Parallel()

	d, err := value.NewDollar("500.00")
	require.NoError(t, err)
	assert.Equal(t, int64(50000), d.Cents())
	assert.Equal(t, "500.00", d.String())

	d2, err := value.NewDollar("-5")
	require.NoError(t, err)
	assert.Equal(t, int64(-500), d2.Cents())
	assert.Equal(t, "-5.00", d2.String())

	_, err = value.NewDollar("1.234")
	require.ErrorIs(t, err, value.ErrInvalidValue)
}

func TestRational(t *testing.T) {
	t.Parallel()

	r, err := value.NewRational(4, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.Num())
	assert.Equal(t, int64(2), r.Den())
	assert.Equal(t, "1/2", r.String())

	r2, err := value.NewRational(3, -4)
	require.NoError(t, err)
	assert.Equal(t, "-3/4", r2.String())

	_, err = value.NewRational(1, 0)
	require.ErrorIs(t, err, value.ErrInvalidValue)

	parsed, err := value.ParseRational("3/4")
	require.NoError(t, err)
	assert.True(t, r2.Equal(parsed))
}

func TestDay(t *testing.T) {
	t.Parallel()

	d, err := value.ParseDay("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())
	assert.True(t, d.IsLastDayOfMonth())

	next := d.AddDays(1)
	assert.Equal(t, "2024-03-01", next.String())
	assert.True(t, next.After(d))
	assert.True(t, d.Before(next))

	last := value.NewDay(2023, 2, 1).LastDayOfMonth()
	assert.Equal(t, "2023-02-28", last.String())

	assert.Equal(t, int64(1), next.Sub(d))
}

func TestIntOverflow(t *testing.T) {
	t.Parallel()

	_, err := value.NewInt("99999999999")
	require.ErrorIs(t, err, value.ErrInvalidValue)

	n, err := value.NewInt("42")
	require.NoError(t, err)
	assert.Equal(t, "42", n.String())
}

func TestEqualAcrossKinds(t *testing.T) {
	t.Parallel()

	n, err := value.NewInt("1")
	require.NoError(t, err)
	assert.False(t, n.Equal(value.Str("1")))
}
