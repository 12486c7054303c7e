// Package cardwindow hosts a clock card in its own desktop window.
package cardwindow

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"tickclock/internal/core/model"
	"tickclock/internal/ui/clockwidget"
)

const (
	defaultWidth  = float32(320)
	defaultHeight = float32(160)
)

// Config defines window chrome.
type Config struct {
	Title       string
	Undecorated bool
}

// Window shows one ClockCard.
type Window struct {
	window fyne.Window
	clock  *clockwidget.ClockCard
	config Config
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates a hidden window around clock.
func New(app fyne.App, clock *clockwidget.ClockCard, config Config) *Window {
	if config.Title == "" {
		config.Title = "Tick clock"
	}
	window := app.NewWindow(config.Title)
	if driver, ok := app.Driver().(splashWindowDriver); ok && config.Undecorated {
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)
	window.SetContent(container.NewStack(clock))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	cardWindow := &Window{
		window: window,
		clock:  clock,
		config: config,
	}
	cardWindow.FitConfig()
	return cardWindow
}

// Show displays the window.
func (cardWindow *Window) Show() {
	cardWindow.window.Show()
	cardWindow.window.RequestFocus()
}

// Hide hides the window without stopping the card.
func (cardWindow *Window) Hide() {
	cardWindow.window.Hide()
}

// FitConfig resizes the window to the card's preferred size.
func (cardWindow *Window) FitConfig() {
	size := PreferredSize(cardWindow.clock.Card().Config())
	minSize := cardWindow.clock.MinSize()
	size = size.Max(minSize)
	cardWindow.window.Resize(size)
}

// Fyne returns the underlying window.
func (cardWindow *Window) Fyne() fyne.Window {
	return cardWindow.window
}

// PreferredSize is the legacy grid size in grid mode and a wide default in
// fluid mode, never shorter than the configured minimum height.
func PreferredSize(config model.ClockConfig) fyne.Size {
	if config.Sizing == model.SizingGrid {
		if width, height, ok := model.GridSize(config.Cols, config.Rows); ok {
			return fyne.NewSize(float32(width), float32(height))
		}
	}
	height := defaultHeight
	if minHeight := float32(config.MinHeightPx); minHeight > height {
		height = minHeight
	}
	return fyne.NewSize(defaultWidth, height)
}
