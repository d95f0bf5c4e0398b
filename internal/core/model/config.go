package model

// Bounds restricts an integer duration field to an inclusive range.
type Bounds struct {
	Min int
	Max int
}

// Clamp forces value into the bounds.
func (bounds Bounds) Clamp(value int) int {
	if value < bounds.Min {
		return bounds.Min
	}
	if value > bounds.Max {
		return bounds.Max
	}
	return value
}

// Declared ranges for the editable duration fields.
var (
	WorkBounds  = Bounds{Min: 1, Max: 3600}
	RestBounds  = Bounds{Min: 1, Max: 3600}
	TotalBounds = Bounds{Min: 1, Max: 60}
	PrepBounds  = Bounds{Min: 1, Max: 10}
)

// Config contains the editable timer settings.
//
// Color fields hold whatever string the user typed; they are not
// validated here. Rendering parses them best-effort with a fallback
// shade while the stored value stays untouched.
type Config struct {
	WorkSeconds  int
	RestSeconds  int
	TotalMinutes int
	PrepSeconds  int

	WorkColor       string
	RestColor       string
	BackgroundColor string
	TextColor       string
}

// DefaultConfig returns the out-of-the-box settings.
func DefaultConfig() Config {
	return Config{
		WorkSeconds:  40,
		RestSeconds:  20,
		TotalMinutes: 8,
		PrepSeconds:  3,

		WorkColor:       "#00FF00",
		RestColor:       "#FF0000",
		BackgroundColor: "#000000",
		TextColor:       "#FFFFFF",
	}
}

// SessionSeconds returns the total session budget in seconds.
func (config Config) SessionSeconds() int {
	return config.TotalMinutes * 60
}
