package labeler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseZoomBound(t *testing.T) {
	bound, err := ParseZoomBound("5-10")
	require.NoError(t, err)
	assert.Equal(t, ZoomBound{Min: 5, Max: 10}, bound)
	assert.Equal(t, "5-10", bound.String())

	for _, bad := range []string{"5", "", "5-", "-5", "a-b", "1-2-3", "10-5", "5.5-10"} {
		_, err := ParseZoomBound(bad)
		assert.ErrorIs(t, err, ErrBadMinzoom, "bound %q", bad)
	}
}

func TestConfigValidate(t *testing.T) {
	config := GetDefaultConfig()
	require.NoError(t, config.Validate())
	assert.Equal(t, StyleExplode, config.ParsedStyle)
	assert.Equal(t, LabelPolylabel, config.ParsedLabel)
	assert.Nil(t, config.MinzoomBound)

	config.IncludeMinzoom = "false"
	require.NoError(t, config.Validate())
	assert.Nil(t, config.MinzoomBound)

	config.IncludeMinzoom = "0-14"
	config.Style = "combine"
	config.Label = "center-of-mass"
	require.NoError(t, config.Validate())
	assert.Equal(t, &ZoomBound{Min: 0, Max: 14}, config.MinzoomBound)
	assert.Equal(t, StyleCombine, config.ParsedStyle)
	assert.Equal(t, LabelCenterOfMass, config.ParsedLabel)

	config = GetDefaultConfig()
	config.IncludeMinzoom = "5"
	assert.ErrorIs(t, config.Validate(), ErrBadMinzoom)

	config = GetDefaultConfig()
	config.Label = "middle"
	assert.ErrorIs(t, config.Validate(), ErrUnknownLabel)

	config = GetDefaultConfig()
	config.Style = ""
	assert.ErrorIs(t, config.Validate(), ErrUnknownStyle)

	config = GetDefaultConfig()
	config.Precision = 0
	assert.Error(t, config.Validate())
}

func TestAreaToZoom(t *testing.T) {
	bound := ZoomBound{Min: 0, Max: 24}

	// 13.967 - 0.4287*10 = 9.68
	assert.Equal(t, 10, AreaToZoom(1024, bound))
	assert.Equal(t, 14, AreaToZoom(1, bound))
	assert.Equal(t, 24, AreaToZoom(0, bound))

	assert.Equal(t, 5, AreaToZoom(1e30, ZoomBound{Min: 5, Max: 10}))
	assert.Equal(t, 10, AreaToZoom(1, ZoomBound{Min: 5, Max: 10}))

	larger := AreaToZoom(1e9, bound)
	smaller := AreaToZoom(1e3, bound)
	assert.Less(t, larger, smaller)
}

func TestStyleDescription(t *testing.T) {
	for _, style := range []Style{StyleExplode, StyleLargest, StyleCombine} {
		assert.NotEqual(t, "unknown style", style.Description())
	}
}
