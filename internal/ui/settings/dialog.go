package settings

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/zak-droid/WorkoutTimer/internal/core/model"
	"github.com/zak-droid/WorkoutTimer/resources"
)

// Handlers receives live edits. Every keystroke commits; there is no
// save or cancel step.
type Handlers struct {
	OnWorkSeconds     func(int)
	OnRestSeconds     func(int)
	OnTotalMinutes    func(int)
	OnPrepSeconds     func(int)
	OnWorkColor       func(string)
	OnRestColor       func(string)
	OnBackgroundColor func(string)
	OnTextColor       func(string)
}

// Dialog handles the settings UI.
type Dialog struct {
	parent   fyne.Window
	handlers Handlers
	dialog   *dialog.CustomDialog

	workEntry  *widget.Entry
	restEntry  *widget.Entry
	totalEntry *widget.Entry
	prepEntry  *widget.Entry

	workColor       *widget.Entry
	restColor       *widget.Entry
	backgroundColor *widget.Entry
	textColor       *widget.Entry

	presetSelect *widget.Select
}

// New creates the settings dialog over the given window, pre-filled from
// config.
func New(parent fyne.Window, config model.Config, presets []resources.ColorPreset, handlers Handlers) *Dialog {
	editor := &Dialog{
		parent:   parent,
		handlers: handlers,
	}

	editor.workEntry = newDurationEntry(config.WorkSeconds, model.WorkBounds, handlers.OnWorkSeconds)
	editor.restEntry = newDurationEntry(config.RestSeconds, model.RestBounds, handlers.OnRestSeconds)
	editor.totalEntry = newDurationEntry(config.TotalMinutes, model.TotalBounds, handlers.OnTotalMinutes)
	editor.prepEntry = newDurationEntry(config.PrepSeconds, model.PrepBounds, handlers.OnPrepSeconds)

	editor.workColor = newColorEntry(config.WorkColor, handlers.OnWorkColor)
	editor.restColor = newColorEntry(config.RestColor, handlers.OnRestColor)
	editor.backgroundColor = newColorEntry(config.BackgroundColor, handlers.OnBackgroundColor)
	editor.textColor = newColorEntry(config.TextColor, handlers.OnTextColor)

	names := make([]string, 0, len(presets))
	for _, preset := range presets {
		names = append(names, preset.Name)
	}
	editor.presetSelect = widget.NewSelect(names, func(selected string) {
		for _, preset := range presets {
			if preset.Name == selected {
				editor.applyPreset(preset)
				return
			}
		}
	})
	editor.presetSelect.PlaceHolder = "Color scheme..."

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		labeledRow("Work", editor.workEntry, "sec"),
		labeledRow("Rest", editor.restEntry, "sec"),
		labeledRow("Session length", editor.totalEntry, "min"),
		labeledRow("Preparation", editor.prepEntry, "sec"),
		widget.NewLabelWithStyle("Colors", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		labeledRow("Work color", editor.workColor, ""),
		labeledRow("Rest color", editor.restColor, ""),
		labeledRow("Background", editor.backgroundColor, ""),
		labeledRow("Text", editor.textColor, ""),
		editor.presetSelect,
	)

	editor.dialog = dialog.NewCustom("Settings", "Close", form, parent)
	editor.dialog.Resize(fyne.NewSize(380, 460))
	return editor
}

// Show displays the dialog.
func (editor *Dialog) Show() {
	editor.dialog.Show()
}

// Hide closes the dialog.
func (editor *Dialog) Hide() {
	editor.dialog.Hide()
}

func (editor *Dialog) applyPreset(preset resources.ColorPreset) {
	// SetText runs each entry's OnChanged, so the four colors commit the
	// same way typed edits do.
	editor.workColor.SetText(preset.Work)
	editor.restColor.SetText(preset.Rest)
	editor.backgroundColor.SetText(preset.Background)
	editor.textColor.SetText(preset.Text)
}

func newDurationEntry(value int, bounds model.Bounds, commit func(int)) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(fmt.Sprintf("%d", value))
	entry.OnChanged = func(text string) {
		if commit != nil {
			commit(ParseDuration(text, bounds))
		}
	}
	return entry
}

func newColorEntry(value string, commit func(string)) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(value)
	entry.OnChanged = func(text string) {
		if commit != nil {
			commit(text)
		}
	}
	return entry
}

func labeledRow(label string, entry *widget.Entry, unit string) fyne.CanvasObject {
	if unit == "" {
		return container.NewBorder(nil, nil, widget.NewLabel(label), nil, entry)
	}
	return container.NewBorder(nil, nil, widget.NewLabel(label), widget.NewLabel(unit), entry)
}

// ParseDuration converts entry text into a duration value. Non-numeric
// input maps to the field minimum; numeric input is clamped to bounds.
func ParseDuration(text string, bounds model.Bounds) int {
	value, err := strconv.Atoi(text)
	if err != nil {
		return bounds.Min
	}
	return bounds.Clamp(value)
}
