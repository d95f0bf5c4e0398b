package resources

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorPresets(t *testing.T) {
	presets, err := ColorPresets()
	require.NoError(t, err)
	require.NotEmpty(t, presets)

	seen := map[string]bool{}
	for _, preset := range presets {
		require.NotEmpty(t, preset.Name)
		require.False(t, seen[preset.Name], "duplicate preset %q", preset.Name)
		seen[preset.Name] = true

		require.NotEmpty(t, preset.Work)
		require.NotEmpty(t, preset.Rest)
		require.NotEmpty(t, preset.Background)
		require.NotEmpty(t, preset.Text)
	}
}

func TestClassicPresetMatchesDefaults(t *testing.T) {
	presets := MustColorPresets()

	var classic *ColorPreset
	for i := range presets {
		if presets[i].Name == "Classic" {
			classic = &presets[i]
			break
		}
	}
	require.NotNil(t, classic, "catalog is missing the Classic scheme")
	require.Equal(t, "#00FF00", classic.Work)
	require.Equal(t, "#FF0000", classic.Rest)
	require.Equal(t, "#000000", classic.Background)
	require.Equal(t, "#FFFFFF", classic.Text)
}

func TestIcon(t *testing.T) {
	icon := Icon()
	require.NotNil(t, icon)
	require.NotEmpty(t, icon.Content())
	require.Equal(t, "icon.svg", icon.Name())
}
