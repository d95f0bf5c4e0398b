package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"gopkg.in/yaml.v3"
)

//go:embed icon.svg
var iconFS embed.FS

//go:embed presets.yaml
var presetFS embed.FS

// ColorPreset is a built-in color scheme offered in the settings dialog.
type ColorPreset struct {
	Name       string `yaml:"name"`
	Work       string `yaml:"work"`
	Rest       string `yaml:"rest"`
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
}

type presetCatalog struct {
	Presets []ColorPreset `yaml:"presets"`
}

var (
	iconOnce     sync.Once
	iconResource fyne.Resource

	presetOnce sync.Once
	presets    []ColorPreset
	presetErr  error
)

// Icon returns the application icon.
func Icon() fyne.Resource {
	iconOnce.Do(func() {
		data, err := iconFS.ReadFile("icon.svg")
		if err != nil {
			panic(err)
		}
		iconResource = fyne.NewStaticResource("icon.svg", data)
	})
	return iconResource
}

// ColorPresets returns the embedded color scheme catalog.
func ColorPresets() ([]ColorPreset, error) {
	presetOnce.Do(func() {
		data, err := presetFS.ReadFile("presets.yaml")
		if err != nil {
			presetErr = fmt.Errorf("load presets: %w", err)
			return
		}
		var catalog presetCatalog
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			presetErr = fmt.Errorf("parse presets yaml: %w", err)
			return
		}
		presets = catalog.Presets
	})
	return presets, presetErr
}

// MustColorPresets returns the catalog or panics on error.
func MustColorPresets() []ColorPreset {
	loaded, err := ColorPresets()
	if err != nil {
		panic(err)
	}
	return loaded
}
