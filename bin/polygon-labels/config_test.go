package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnownHash/polygon-labels/labeler"
)

func newFlagSet(t *testing.T, args ...string) *flag.FlagSet {
	t.Helper()

	flagSet := flag.NewFlagSet("test", flag.ContinueOnError)
	defineFlags(flagSet)
	require.NoError(t, flagSet.Parse(args))
	return flagSet
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	filename := filepath.Join(t.TempDir(), "polygon-labels.toml")
	require.NoError(t, os.WriteFile(filename, []byte(contents), 0o644))
	return filename
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("", newFlagSet(t))
	require.NoError(t, err)

	assert.Equal(t, 0.001, cfg.Labels.Precision)
	assert.Equal(t, labeler.StyleExplode, cfg.Labels.ParsedStyle)
	assert.Equal(t, labeler.LabelPolylabel, cfg.Labels.ParsedLabel)
	assert.Nil(t, cfg.Labels.MinzoomBound)
	assert.False(t, cfg.IO.NDJSON)
	assert.False(t, cfg.Logging.Debug)
	assert.False(t, cfg.Pyroscope.Enabled())
}

func TestLoadConfigFileAndFlags(t *testing.T) {
	filename := writeConfig(t, `
[labels]
style = "largest"
label = "centroid"
include_area = true
include_minzoom = "4-12"

[io]
ndjson = true
`)

	cfg, err := LoadConfig(filename, newFlagSet(t))
	require.NoError(t, err)
	assert.Equal(t, labeler.StyleLargest, cfg.Labels.ParsedStyle)
	assert.Equal(t, labeler.LabelCentroid, cfg.Labels.ParsedLabel)
	assert.True(t, cfg.Labels.IncludeArea)
	assert.Equal(t, &labeler.ZoomBound{Min: 4, Max: 12}, cfg.Labels.MinzoomBound)
	assert.True(t, cfg.IO.NDJSON)

	cfg, err = LoadConfig(filename, newFlagSet(t, "-style", "combine", "-include-area=false", "-verbose", "-precision", "0.5"))
	require.NoError(t, err)
	assert.Equal(t, labeler.StyleCombine, cfg.Labels.ParsedStyle)
	assert.False(t, cfg.Labels.IncludeArea)
	assert.True(t, cfg.Logging.Debug)
	assert.Equal(t, 0.5, cfg.Labels.Precision)
	// untouched by flags
	assert.Equal(t, labeler.LabelCentroid, cfg.Labels.ParsedLabel)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("", newFlagSet(t, "-style", "smallest"))
	assert.ErrorIs(t, err, labeler.ErrUnknownStyle)

	_, err = LoadConfig("", newFlagSet(t, "-include-minzoom", "5"))
	assert.ErrorIs(t, err, labeler.ErrBadMinzoom)

	_, err = LoadConfig("", newFlagSet(t, "-ndjson", "-osm"))
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"), nil)
	assert.Error(t, err)

	filename := writeConfig(t, `
[pyroscope]
server_address = "http://localhost:4040"
`)
	_, err = LoadConfig(filename, nil)
	assert.Error(t, err)
}

func TestEveryFlagReachesConfig(t *testing.T) {
	cfg, err := LoadConfig("", newFlagSet(t,
		"-precision", "0.25",
		"-include-area",
		"-include-bbox",
		"-include-minzoom", "3-9",
		"-label", "center-of-mass",
		"-style", "largest",
		"-ndjson",
		"-verbose",
		"-log-file", filepath.Join(t.TempDir(), "labels.log"),
	))
	require.NoError(t, err)

	assert.Equal(t, 0.25, cfg.Labels.Precision)
	assert.True(t, cfg.Labels.IncludeArea)
	assert.True(t, cfg.Labels.IncludeBbox)
	assert.Equal(t, &labeler.ZoomBound{Min: 3, Max: 9}, cfg.Labels.MinzoomBound)
	assert.Equal(t, labeler.LabelCenterOfMass, cfg.Labels.ParsedLabel)
	assert.Equal(t, labeler.StyleLargest, cfg.Labels.ParsedStyle)
	assert.True(t, cfg.IO.NDJSON)
	assert.True(t, cfg.Logging.Debug)
	assert.NotEmpty(t, cfg.Logging.Filename)

	cfg, err = LoadConfig("", newFlagSet(t, "-osm"))
	require.NoError(t, err)
	assert.True(t, cfg.IO.OSM)
}
