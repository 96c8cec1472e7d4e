package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueprep/fact-graph/value"
)

func TestAddress(t *testing.T) {
	t.Parallel()

	a, err := value.NewAddress(value.Address{
		Street: "1 Main St", City: "Springfield", Region: "IL", Postal: "62701",
	})
	require.NoError(t, err)
	assert.Equal(t, "US", a.Country)
	assert.Contains(t, a.String(), "Springfield")

	_, err = value.NewAddress(value.Address{Street: "1 Main St", City: "X", Region: "illinois", Postal: "62701"})
	require.ErrorIs(t, err, value.ErrInvalidValue)

	_, err = value.NewAddress(value.Address{Street: "1 Main St", City: "X", Region: "IL", Postal: "bad"})
	require.ErrorIs(t, err, value.ErrInvalidValue)
}

func TestBankAccount(t *testing.T) {
	t.Parallel()

	ba, err := value.NewBankAccount(value.BankAccount{
		Type: value.BankAccountChecking, Routing: "021000021", Account: "000123456789",
	})
	require.NoError(t, err)
	assert.Contains(t, ba.String(), "...6789")

	_, err = value.NewBankAccount(value.BankAccount{Routing: "000000000", Account: "1"})
	require.ErrorIs(t, err, value.ErrInvalidValue)

	_, err = value.NewBankAccount(value.BankAccount{Routing: "021000021", Account: ""})
	require.ErrorIs(t, err, value.ErrInvalidValue)
}

func TestCollection(t *testing.T) {
	t.Parallel()

	c, err := value.NewCollection([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Contains("a"))

	_, err = value.NewCollection([]string{"a", "a"})
	require.ErrorIs(t, err, value.ErrInvalidValue)

	c2, err := c.Add("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, c2.Members())

	_, err = c2.Add("a")
	require.ErrorIs(t, err, value.ErrInvalidValue)

	c3 := c2.Remove("b")
	assert.Equal(t, []string{"a", "c"}, c3.Members())
}
