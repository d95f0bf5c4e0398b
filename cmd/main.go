package main

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/zak-droid/WorkoutTimer/internal/core/engine"
	"github.com/zak-droid/WorkoutTimer/internal/core/model"
	"github.com/zak-droid/WorkoutTimer/internal/platform"
	"github.com/zak-droid/WorkoutTimer/internal/ui/screen"
	"github.com/zak-droid/WorkoutTimer/internal/ui/tray"
	"github.com/zak-droid/WorkoutTimer/resources"
)

const appName = "WorkoutTimer"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.zakdroid.workouttimer")
	fyneApp.SetIcon(resources.Icon())

	presets, err := resources.ColorPresets()
	if err != nil {
		log.Printf("color presets: %v", err)
	}

	timer := engine.New(model.DefaultConfig(), engine.Options{TickInterval: time.Second})
	view := screen.New(fyneApp, timer, presets)

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnOpen: func() {
				view.Show()
				view.Window().RequestFocus()
			},
			OnToggle:   timer.Toggle,
			OnReset:    timer.Reset,
			OnSettings: view.ShowSettings,
			OnQuit: func() {
				view.Teardown()
				timer.Stop()
				fyneApp.Quit()
			},
		})
	}

	events := timer.Subscribe(8)
	go func() {
		for event := range events {
			view.HandleEvent(event)
			if trayManager != nil {
				updateTray(trayManager, event)
			}
		}
	}()

	view.Window().SetOnClosed(func() {
		view.Teardown()
		timer.Stop()
	})

	view.Show()
	fyneApp.Run()
}

func updateTray(manager *tray.Manager, event engine.Event) {
	snapshot := event.Snapshot
	switch {
	case snapshot.Preparing:
		manager.SetStatus(fmt.Sprintf("get ready, %ds", snapshot.PrepRemaining))
	case snapshot.Active && snapshot.Phase == engine.PhaseRest:
		manager.SetStatus(fmt.Sprintf("rest, %ds left", snapshot.PhaseRemaining))
	case snapshot.Active:
		manager.SetStatus(fmt.Sprintf("work, %ds left", snapshot.PhaseRemaining))
	case snapshot.SessionElapsed > 0:
		manager.SetStatus("paused")
	default:
		manager.SetStatus("idle")
	}
	manager.SetActive(snapshot.Active)
}
