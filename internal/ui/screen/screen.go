package screen

import (
	"fmt"
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/zak-droid/WorkoutTimer/internal/core/engine"
	"github.com/zak-droid/WorkoutTimer/internal/ui/animation"
	"github.com/zak-droid/WorkoutTimer/internal/ui/ring"
	"github.com/zak-droid/WorkoutTimer/internal/ui/settings"
	"github.com/zak-droid/WorkoutTimer/resources"
)

// Fallbacks for unparseable configured colors.
var (
	fallbackWork       = color.NRGBA{G: 255, A: 255}
	fallbackRest       = color.NRGBA{R: 255, A: 255}
	fallbackBackground = color.NRGBA{A: 255}
	fallbackText       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Screen composes the single timer screen.
type Screen struct {
	window fyne.Window
	timer  *engine.Engine
	flash  *animation.Engine

	background     *canvas.Rectangle
	phaseLabel     *canvas.Text
	countLabel     *canvas.Text
	sessionLabel   *canvas.Text
	progressRing   *ring.Widget
	startButton    *widget.Button
	settingsDialog *settings.Dialog

	lastPhase engine.Phase
}

// New builds the timer screen for the given engine.
func New(app fyne.App, timer *engine.Engine, presets []resources.ColorPreset) *Screen {
	window := app.NewWindow("Workout Timer")
	config := timer.Config()

	view := &Screen{
		window:    window,
		timer:     timer,
		lastPhase: engine.PhaseWork,
	}

	textColor := ParseColor(config.TextColor, fallbackText)

	view.background = canvas.NewRectangle(ParseColor(config.BackgroundColor, fallbackBackground))
	view.flash = animation.New(animation.DefaultConfig(), view.paintBackground)

	view.phaseLabel = canvas.NewText("WORK", textColor)
	view.phaseLabel.Alignment = fyne.TextAlignCenter
	view.phaseLabel.TextStyle = fyne.TextStyle{Bold: true}
	view.phaseLabel.TextSize = 26

	view.countLabel = canvas.NewText(strconv.Itoa(config.WorkSeconds), textColor)
	view.countLabel.Alignment = fyne.TextAlignCenter
	view.countLabel.TextStyle = fyne.TextStyle{Bold: true}
	view.countLabel.TextSize = 72

	view.sessionLabel = canvas.NewText(sessionLine(0, config.SessionSeconds()), textColor)
	view.sessionLabel.Alignment = fyne.TextAlignCenter
	view.sessionLabel.TextSize = 16

	workColor := ParseColor(config.WorkColor, fallbackWork)
	view.progressRing = ring.New(workColor, trackColor(workColor))

	view.startButton = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), timer.Toggle)
	resetButton := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), timer.Reset)
	settingsButton := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		view.settingsDialog.Show()
	})

	view.settingsDialog = settings.New(window, config, presets, settings.Handlers{
		OnWorkSeconds:     timer.SetWorkSeconds,
		OnRestSeconds:     timer.SetRestSeconds,
		OnTotalMinutes:    timer.SetTotalMinutes,
		OnPrepSeconds:     timer.SetPrepSeconds,
		OnWorkColor:       timer.SetWorkColor,
		OnRestColor:       timer.SetRestColor,
		OnBackgroundColor: timer.SetBackgroundColor,
		OnTextColor:       timer.SetTextColor,
	})

	readout := container.NewVBox(
		layout.NewSpacer(),
		view.phaseLabel,
		view.countLabel,
		view.sessionLabel,
		layout.NewSpacer(),
	)
	dial := container.NewStack(view.progressRing, readout)
	buttons := container.NewHBox(
		layout.NewSpacer(),
		view.startButton,
		resetButton,
		settingsButton,
		layout.NewSpacer(),
	)
	root := container.NewStack(
		view.background,
		container.NewBorder(nil, container.NewPadded(buttons), nil, nil, dial),
	)

	window.SetContent(root)
	window.Resize(fyne.NewSize(420, 520))
	window.CenterOnScreen()
	return view
}

// Window returns the underlying Fyne window.
func (view *Screen) Window() fyne.Window {
	return view.window
}

// ShowSettings opens the settings dialog.
func (view *Screen) ShowSettings() {
	view.settingsDialog.Show()
}

// Show displays the screen.
func (view *Screen) Show() {
	view.window.Show()
}

// Teardown stops any flash in flight.
func (view *Screen) Teardown() {
	view.flash.Stop()
}

// HandleEvent applies an engine event to the screen. Safe to call from
// the event fan-out goroutine.
func (view *Screen) HandleEvent(event engine.Event) {
	snapshot := event.Snapshot

	if event.Type == engine.EventStateChange && snapshot.Active && !snapshot.Preparing &&
		snapshot.Phase != view.lastPhase {
		config := view.timer.Config()
		highlight := ParseColor(config.WorkColor, fallbackWork)
		if snapshot.Phase == engine.PhaseRest {
			highlight = ParseColor(config.RestColor, fallbackRest)
		}
		view.flash.Flash(highlight, ParseColor(config.BackgroundColor, fallbackBackground))
	}
	view.lastPhase = snapshot.Phase

	fyne.Do(func() {
		view.apply(snapshot)
	})
}

func (view *Screen) apply(snapshot engine.Snapshot) {
	config := view.timer.Config()
	textColor := ParseColor(config.TextColor, fallbackText)
	phaseColor := ParseColor(config.WorkColor, fallbackWork)
	if snapshot.Phase == engine.PhaseRest {
		phaseColor = ParseColor(config.RestColor, fallbackRest)
	}

	switch {
	case snapshot.Preparing:
		view.phaseLabel.Text = "GET READY"
		view.countLabel.Text = strconv.Itoa(snapshot.PrepRemaining)
	case snapshot.Phase == engine.PhaseRest:
		view.phaseLabel.Text = "REST"
		view.countLabel.Text = strconv.Itoa(snapshot.PhaseRemaining)
	default:
		view.phaseLabel.Text = "WORK"
		view.countLabel.Text = strconv.Itoa(snapshot.PhaseRemaining)
	}
	view.phaseLabel.Color = phaseColor
	view.countLabel.Color = textColor

	// Elapsed time is the one mm:ss readout; the phase countdown above
	// stays a raw seconds integer.
	view.sessionLabel.Text = sessionLine(snapshot.SessionElapsed, snapshot.SessionTotal)
	view.sessionLabel.Color = textColor

	view.background.FillColor = ParseColor(config.BackgroundColor, fallbackBackground)

	if snapshot.Active {
		view.startButton.SetIcon(theme.MediaPauseIcon())
	} else {
		view.startButton.SetIcon(theme.MediaPlayIcon())
	}

	view.progressRing.SetColors(phaseColor, trackColor(phaseColor))
	view.progressRing.SetProgress(snapshot.Progress)

	view.background.Refresh()
	view.phaseLabel.Refresh()
	view.countLabel.Refresh()
	view.sessionLabel.Refresh()
}

func (view *Screen) paintBackground(fill color.Color) {
	fyne.Do(func() {
		view.background.FillColor = fill
		view.background.Refresh()
	})
}

func sessionLine(elapsed, total int) string {
	return fmt.Sprintf("%s / %s", formatClock(elapsed), formatClock(total))
}

func formatClock(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func trackColor(sweep color.NRGBA) color.NRGBA {
	return color.NRGBA{R: sweep.R, G: sweep.G, B: sweep.B, A: 56}
}
