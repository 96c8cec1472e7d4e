package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueprep/fact-graph/value"
)

func TestTin(t *testing.T) {
	t.Parallel()

	tin, err := value.NewTin("123-45-6789")
	require.NoError(t, err)
	assert.Equal(t, "123-45-6789", tin.String())

	tin2, err := value.NewTin("123456789")
	require.NoError(t, err)
	assert.Equal(t, tin, tin2)

	for _, bad := range []string{"000-45-6789", "666-45-6789", "900-45-6789", "123-00-6789", "123-45-0000", "12"} {
		_, err := value.NewTin(bad)
		assert.ErrorIsf(t, err, value.ErrInvalidValue, "expected %q to be invalid", bad)
	}
}

func TestEin(t *testing.T) {
	t.Parallel()

	ein, err := value.NewEin("12-3456789")
	require.NoError(t, err)
	assert.Equal(t, "12-3456789", ein.String())

	_, err = value.NewEin("12345")
	require.ErrorIs(t, err, value.ErrInvalidValue)
}

func TestPhone(t *testing.T) {
	t.Parallel()

	p, err := value.NewPhone("1-415-555-0100")
	require.NoError(t, err)
	assert.Equal(t, "(415) 555-0100", p.String())

	_, err = value.NewPhone("555-0100")
	require.ErrorIs(t, err, value.ErrInvalidValue)
}

func TestEmail(t *testing.T) {
	t.Parallel()

	e, err := value.NewEmail("Person@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "person@example.com", e.String())

	_, err = value.NewEmail("not an email")
	require.ErrorIs(t, err, value.ErrInvalidValue)
}

func TestPin(t *testing.T) {
	t.Parallel()

	_, err := value.NewPin("00000")
	require.ErrorIs(t, err, value.ErrInvalidValue)

	p, err := value.NewPin("12345")
	require.NoError(t, err)
	assert.Equal(t, "12345", p.String())
}

func TestIpPin(t *testing.T) {
	t.Parallel()

	p, err := value.NewIpPin("123456")
	require.NoError(t, err)
	assert.Equal(t, "123456", p.String())

	_, err = value.NewIpPin("1234")
	require.ErrorIs(t, err, value.ErrInvalidValue)
}
