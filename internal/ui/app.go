// Package ui is the fyne desktop display.
package ui

import (
	"image/color"

	"VectorDisplay/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type App struct {
	fyneApp fyne.App
	window  fyne.Window
	display *DisplayWidget
	status  *widget.Label
}

// NewApp creates the display window on a new fyne application.
func NewApp(cfg config.RenderConfig, title string) *App {
	return NewAppWith(app.New(), cfg, title)
}

// NewAppWith creates the display window on an existing fyne application.
func NewAppWith(fyneApp fyne.App, cfg config.RenderConfig, title string) *App {
	a := &App{
		fyneApp: fyneApp,
		window:  fyneApp.NewWindow(title),
		display: NewDisplayWidget(cfg),
		status:  widget.NewLabel("Ready"),
	}

	// holds the display at the minimum window size
	floor := canvas.NewRectangle(color.Transparent)
	floor.SetMinSize(fyne.NewSize(float32(cfg.MinWinSize[0]), float32(cfg.MinWinSize[1])))

	content := container.NewBorder(
		NewToolbar(a),
		a.status,
		nil, nil,
		container.NewStack(floor, a.display),
	)
	a.window.SetContent(content)
	a.window.Resize(fyne.NewSize(float32(cfg.MinWinSize[0]), float32(cfg.MinWinSize[1])))
	return a
}

func (a *App) Display() *DisplayWidget { return a.display }

func (a *App) Window() fyne.Window { return a.window }

// SetStatus is safe to call from any goroutine.
func (a *App) SetStatus(text string) {
	fyne.Do(func() {
		a.status.SetText(text)
	})
}

// Run shows the window and blocks until it is closed.
func (a *App) Run() {
	defer a.display.renderer.Close()
	a.window.ShowAndRun()
}

// Quit is safe to call from any goroutine.
func (a *App) Quit() {
	fyne.Do(a.fyneApp.Quit)
}
