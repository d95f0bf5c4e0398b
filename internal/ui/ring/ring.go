package ring

import (
	"image"
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const thicknessFraction = 0.12

// Widget renders a phase countdown as an annular sweep. The sweep starts
// at twelve o'clock and grows clockwise: empty at the start of a phase,
// full when the phase completes.
type Widget struct {
	widget.BaseWidget

	mu       sync.Mutex
	progress float64
	sweep    color.Color
	track    color.Color
}

// New creates a ring with the given sweep and track colors.
func New(sweep, track color.Color) *Widget {
	ring := &Widget{
		sweep: sweep,
		track: track,
	}
	ring.ExtendBaseWidget(ring)
	return ring
}

// SetProgress updates the sweep fraction, clamped to [0, 1].
func (ring *Widget) SetProgress(progress float64) {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	ring.mu.Lock()
	ring.progress = progress
	ring.mu.Unlock()
	ring.Refresh()
}

// SetColors updates the sweep and track colors.
func (ring *Widget) SetColors(sweep, track color.Color) {
	ring.mu.Lock()
	ring.sweep = sweep
	ring.track = track
	ring.mu.Unlock()
	ring.Refresh()
}

// Progress returns the current sweep fraction.
func (ring *Widget) Progress() float64 {
	ring.mu.Lock()
	defer ring.mu.Unlock()
	return ring.progress
}

// CreateRenderer implements fyne.Widget.
func (ring *Widget) CreateRenderer() fyne.WidgetRenderer {
	raster := canvas.NewRaster(ring.rasterize)
	return &ringRenderer{ring: ring, raster: raster}
}

func (ring *Widget) rasterize(width, height int) image.Image {
	ring.mu.Lock()
	progress := ring.progress
	sweep := ring.sweep
	track := ring.track
	ring.mu.Unlock()
	return Draw(width, height, progress, sweep, track)
}

// Draw rasterizes the annulus into an RGBA image. Pixels whose clockwise
// angle from twelve o'clock lies below progress get the sweep color, the
// rest of the annulus gets the track color, everything else stays
// transparent.
func Draw(width, height int, progress float64, sweep, track color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}

	centerX := float64(width) / 2
	centerY := float64(height) / 2
	outer := math.Min(centerX, centerY)
	thickness := outer * thicknessFraction
	if thickness < 2 {
		thickness = 2
	}
	inner := outer - thickness
	if inner < 0 {
		inner = 0
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := float64(x) + 0.5 - centerX
			dy := float64(y) + 0.5 - centerY
			radius := math.Hypot(dx, dy)
			if radius < inner || radius > outer {
				continue
			}
			angle := math.Atan2(dx, -dy)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			if angle/(2*math.Pi) < progress {
				img.Set(x, y, sweep)
			} else {
				img.Set(x, y, track)
			}
		}
	}
	return img
}

type ringRenderer struct {
	ring   *Widget
	raster *canvas.Raster
}

func (renderer *ringRenderer) Layout(size fyne.Size) {
	renderer.raster.Resize(size)
}

func (renderer *ringRenderer) MinSize() fyne.Size {
	return fyne.NewSize(160, 160)
}

func (renderer *ringRenderer) Refresh() {
	renderer.raster.Refresh()
}

func (renderer *ringRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{renderer.raster}
}

func (renderer *ringRenderer) Destroy() {}
