package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundleCommandFlagDefaults(t *testing.T) {
	source := bundleCmd.Flags().Lookup("source")
	require.NotNil(t, source)
	assert.Equal(t, "src", source.DefValue)

	output := bundleCmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "Code_Bundle.txt", output.DefValue)

	tree := bundleCmd.Flags().Lookup("tree")
	require.NotNil(t, tree)
	assert.Equal(t, "", tree.DefValue)
}

func TestBundleCommandIsRegistered(t *testing.T) {
	names := make([]string, 0, len(RootCmd.Commands()))
	for _, c := range RootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "bundle")
	assert.Contains(t, names, "version")
}
