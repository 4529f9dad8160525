package ui

import (
	"fmt"

	"VectorDisplay/internal/export"
	"VectorDisplay/internal/log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var logger = log.New("ui")

// NewToolbar builds the toggle and export controls for display.
func NewToolbar(a *App) fyne.CanvasObject {
	d := a.display

	fringing := widget.NewCheck("Color fringing", nil)
	fringing.Checked = d.renderer.Fringing()
	fringing.OnChanged = d.SetFringing

	hotspots := widget.NewCheck("Hotspots", nil)
	hotspots.Checked = d.renderer.Hotspots()
	hotspots.OnChanged = d.SetHotspots

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.FileImageIcon(), func() {
			a.showExport(export.PNG)
		}), // PNG
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() {
			a.showExport(export.PDF)
		}), // PDF
	)

	return container.NewHBox(
		fringing,
		hotspots,
		widget.NewSeparator(),
		widget.NewLabel("Export:"),
		tb,
		layout.NewSpacer(),
	)
}

func (a *App) showExport(format export.Format) {
	name, ext := "frame.png", ".png"
	if format == export.PDF {
		name, ext = "frame.pdf", ".pdf"
	}

	dlg := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return // cancelled
		}
		a.exportTo(writer, format)
	}, a.window)
	dlg.SetFileName(name)
	dlg.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	dlg.Show()
}

// exportTo writes the current frame at the display's surface size.
func (a *App) exportTo(writer fyne.URIWriteCloser, format export.Format) {
	defer func() {
		if err := writer.Close(); err != nil {
			logger.Errorf("could not close %s: %v", writer.URI(), err)
		}
	}()

	r := a.display.renderer
	if err := export.Write(writer, format, r, r.Surface().Size()); err != nil {
		logger.Errorf("export to %s failed: %v", writer.URI(), err)
		a.SetStatus("Export failed")
		return
	}
	a.SetStatus(fmt.Sprintf("Exported %d commands to %s", len(r.Frame()), writer.URI().Name()))
}
