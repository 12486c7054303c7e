// Package tray owns the system-tray menu of the desktop host.
package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const menuTitle = "Tick clock"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowCard    func()
	OnEdit        func()
	OnToggleSweep func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	statusItem *fyne.MenuItem
	sweepItem  *fyne.MenuItem
	callbacks  Callbacks
	menu       *fyne.Menu
}

// New creates a tray manager with the provided callbacks. app may be nil
// on platforms without a tray; the manager then only tracks state.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.sweepItem = fyne.NewMenuItem("Seconds sweep", func() {
		call(manager.callbacks.OnToggleSweep)
	})

	manager.menu = fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItem("Show card", func() {
			call(manager.callbacks.OnShowCard)
		}),
		fyne.NewMenuItem("Edit card...", func() {
			call(manager.callbacks.OnEdit)
		}),
		manager.sweepItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			call(manager.callbacks.OnQuit)
		}),
	)
	manager.refreshMenu()

	return manager
}

// Menu returns the tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

// SetStatus shows the entity and its current value.
func (manager *Manager) SetStatus(entity, value string) {
	manager.statusItem.Label = fmt.Sprintf("%s: %s", entity, value)
	manager.refreshMenu()
}

// SetSweep reflects whether the seconds sweep is enabled.
func (manager *Manager) SetSweep(enabled bool) {
	manager.sweepItem.Checked = enabled
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu)
	}
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}
