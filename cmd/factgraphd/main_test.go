package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoDictionaryFreezesAndResolvesTotal(t *testing.T) {
	t.Parallel()

	dict, err := demoDictionary()
	require.NoError(t, err)

	def, ok := dict.Lookup("/total")
	require.True(t, ok)
	assert.False(t, def.IsWritable)

	deps, err := dict.ForwardDeps("/total")
	require.NoError(t, err)
	require.Len(t, deps, 2)
	assert.Equal(t, "/bonus", deps[0].Path)
	assert.Equal(t, "/income", deps[1].Path)
}

func TestServeCmdAddrFlagDefault(t *testing.T) {
	t.Parallel()

	cmd := serveCmd()
	addr, err := cmd.Flags().GetString("addr")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)
}
