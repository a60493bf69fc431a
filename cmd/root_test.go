package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	// Collect subcommand names.
	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	// Verify expected subcommands are registered.
	expected := []string{"lookup", "prefetch", "serve"}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "addressdata", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestLookupCommand_Flags(t *testing.T) {
	require.NotNil(t, lookupCmd.Flags().Lookup("language"))
	require.NotNil(t, lookupCmd.Flags().Lookup("output"))
	require.NotNil(t, lookupCmd.Flags().Lookup("offline"))
}

func TestServeCommand_Flags(t *testing.T) {
	require.NotNil(t, serveCmd.Flags().Lookup("port"))
	require.NotNil(t, serveCmd.Flags().Lookup("offline"))
}

func TestPrefetchCommand_Flags(t *testing.T) {
	require.NotNil(t, prefetchCmd.Flags().Lookup("regions"))
	require.NotNil(t, prefetchCmd.Flags().Lookup("concurrency"))
}
