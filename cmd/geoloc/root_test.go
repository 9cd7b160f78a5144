package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/geoloc/internal/config"
	"github.com/Aleph-Alpha/geoloc/v1/geoindex"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"import", "search", "stats"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "geoloc", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestImportCommand_Flags(t *testing.T) {
	input := importCmd.Flags().Lookup("input")
	require.NotNil(t, input, "import command should have --input flag")
	assert.Equal(t, "", input.DefValue)

	key := importCmd.Flags().Lookup("key")
	require.NotNil(t, key, "import command should have --key flag")
	assert.Equal(t, "", key.DefValue)
}

func TestSearchCommand_Flags(t *testing.T) {
	for _, name := range []string{"lon", "lat", "key"} {
		assert.NotNil(t, searchCmd.Flags().Lookup(name), "search command should have --%s flag", name)
	}

	radius := searchCmd.Flags().Lookup("radius")
	require.NotNil(t, radius)
	assert.Equal(t, "40075", radius.DefValue)

	limit := searchCmd.Flags().Lookup("limit")
	require.NotNil(t, limit)
	assert.Equal(t, "5", limit.DefValue)
}

func TestStatsCommand_Flags(t *testing.T) {
	sample := statsCmd.Flags().Lookup("sample")
	require.NotNil(t, sample, "stats command should have --sample flag")
	assert.Equal(t, "10", sample.DefValue)
	assert.NotNil(t, statsCmd.Flags().Lookup("key"))
}

func TestImportCommand_RequiresInput(t *testing.T) {
	orig := cfg
	t.Cleanup(func() { cfg = orig })
	cfg = &config.Config{}

	err := importCmd.RunE(importCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input location is required")
}

func TestSearchCommand_RequiresPoint(t *testing.T) {
	orig := cfg
	t.Cleanup(func() { cfg = orig })
	cfg = &config.Config{}

	err := searchCmd.RunE(searchCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--lon and --lat are required")
}

func TestAppOptions(t *testing.T) {
	c := &config.Config{Index: config.IndexConfig{WriteMode: "transactional"}}
	opts, err := appOptions(c)
	require.NoError(t, err)
	withoutMinio := len(opts)

	c.Minio.Endpoint = "minio:9000"
	opts, err = appOptions(c)
	require.NoError(t, err)
	assert.Greater(t, len(opts), withoutMinio)

	c.Index.WriteMode = "bogus"
	_, err = appOptions(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, geoindex.ErrInvalidWriteMode)
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, []geoindex.SearchResult{}))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, printJSON(&buf, &geoindex.IndexStats{Key: "k", Members: 2, Sample: []string{"loc:1"}}))
	assert.JSONEq(t, `{"key":"k","members":2,"sample":["loc:1"]}`, buf.String())
}
