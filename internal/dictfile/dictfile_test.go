package dictfile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueprep/fact-graph/internal/dictfile"
	"github.com/trueprep/fact-graph/value"
)

func TestLoadDeclaresWritableFacts(t *testing.T) {
	t.Parallel()

	raw := []byte(`[{"path":"/income","type":"Dollar"},{"path":"/name","type":"Str"}]`)
	dict, err := dictfile.Load(raw)
	require.NoError(t, err)

	def, ok := dict.Lookup("/income")
	require.True(t, ok)
	assert.True(t, def.IsWritable)
	assert.Equal(t, value.KindDollar, def.DeclaredType)

	_, ok = dict.Lookup("/missing")
	assert.False(t, ok)
}

func TestLoadRejectsUnknownType(t *testing.T) {
	t.Parallel()

	_, err := dictfile.Load([]byte(`[{"path":"/x","type":"NotAType"}]`))
	assert.Error(t, err)
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := dictfile.Load([]byte(`not json`))
	assert.Error(t, err)
}
