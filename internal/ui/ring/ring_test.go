package ring

import (
	"image"
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"
)

var (
	sweepColor = color.RGBA{R: 255, A: 255}
	trackColor = color.RGBA{B: 255, A: 255}
)

func countColor(img *image.RGBA, want color.RGBA) int {
	bounds := img.Bounds()
	count := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.RGBAAt(x, y) == want {
				count++
			}
		}
	}
	return count
}

func TestDrawEmptySweep(t *testing.T) {
	img := Draw(100, 100, 0, sweepColor, trackColor)

	if got := countColor(img, sweepColor); got != 0 {
		t.Fatalf("progress 0 painted %d sweep pixels", got)
	}
	if got := countColor(img, trackColor); got == 0 {
		t.Fatalf("progress 0 painted no track")
	}
}

func TestDrawFullSweep(t *testing.T) {
	img := Draw(100, 100, 1, sweepColor, trackColor)

	if got := countColor(img, trackColor); got != 0 {
		t.Fatalf("progress 1 left %d track pixels", got)
	}
	if got := countColor(img, sweepColor); got == 0 {
		t.Fatalf("progress 1 painted no sweep")
	}
}

func TestDrawHalfSweepIsClockwiseFromTop(t *testing.T) {
	img := Draw(100, 100, 0.5, sweepColor, trackColor)

	// Right of center sits inside the first (clockwise) half.
	if got := img.RGBAAt(97, 50); got != sweepColor {
		t.Fatalf("right side of annulus = %v", got)
	}
	// Left of center sits in the untouched half.
	if got := img.RGBAAt(2, 50); got != trackColor {
		t.Fatalf("left side of annulus = %v", got)
	}

	sweep := countColor(img, sweepColor)
	track := countColor(img, trackColor)
	if sweep == 0 || track == 0 {
		t.Fatalf("half sweep missing a side: sweep=%d track=%d", sweep, track)
	}
	diff := sweep - track
	if diff < 0 {
		diff = -diff
	}
	if diff > (sweep+track)/10 {
		t.Fatalf("half sweep unbalanced: sweep=%d track=%d", sweep, track)
	}
}

func TestDrawLeavesCenterTransparent(t *testing.T) {
	img := Draw(100, 100, 0.5, sweepColor, trackColor)

	if got := img.RGBAAt(50, 50); got != (color.RGBA{}) {
		t.Fatalf("center pixel painted: %v", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Fatalf("corner pixel painted: %v", got)
	}
}

func TestDrawDegenerateSizes(t *testing.T) {
	if img := Draw(0, 0, 0.5, sweepColor, trackColor); img == nil {
		t.Fatalf("zero size returned nil image")
	}
	if img := Draw(-5, 10, 0.5, sweepColor, trackColor); img == nil {
		t.Fatalf("negative size returned nil image")
	}
}

func TestSetProgressClamps(t *testing.T) {
	test.NewApp()
	ring := New(sweepColor, trackColor)

	ring.SetProgress(-0.5)
	if got := ring.Progress(); got != 0 {
		t.Fatalf("negative progress = %v", got)
	}
	ring.SetProgress(1.7)
	if got := ring.Progress(); got != 1 {
		t.Fatalf("overshoot progress = %v", got)
	}
	ring.SetProgress(0.25)
	if got := ring.Progress(); got != 0.25 {
		t.Fatalf("progress = %v", got)
	}
}
