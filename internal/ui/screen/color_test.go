package screen

import (
	"image/color"
	"testing"
)

var gray = color.NRGBA{R: 128, G: 128, B: 128, A: 255}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  color.NRGBA
	}{
		{"six digit", "#00FF00", color.NRGBA{G: 255, A: 255}},
		{"lowercase", "#ff8000", color.NRGBA{R: 255, G: 128, A: 255}},
		{"three digit", "#F0A", color.NRGBA{R: 255, G: 0, B: 170, A: 255}},
		{"black", "#000000", color.NRGBA{A: 255}},
		{"empty falls back", "", gray},
		{"no hash falls back", "00FF00", gray},
		{"bad digits fall back", "#GGGGGG", gray},
		{"wrong length falls back", "#1234", gray},
		{"free text falls back", "tomato", gray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseColor(tt.value, gray); got != tt.want {
				t.Fatalf("ParseColor(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{7, "00:07"},
		{60, "01:00"},
		{480, "08:00"},
		{3599, "59:59"},
		{-3, "00:00"},
	}

	for _, tt := range tests {
		if got := formatClock(tt.seconds); got != tt.want {
			t.Fatalf("formatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestSessionLine(t *testing.T) {
	if got := sessionLine(75, 480); got != "01:15 / 08:00" {
		t.Fatalf("sessionLine = %q", got)
	}
}
