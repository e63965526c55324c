package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"prototype-creator/export"
	"prototype-creator/i18n"
	"prototype-creator/model"
	"prototype-creator/supabase"
	"prototype-creator/utils"
)

// ShowPrototypeDetail opens a window with the prototype's metadata and the
// preview, export and favorite actions. The record is fetched fresh so the
// HTML content is current.
func ShowPrototypeDetail(app *App, id string) {
	win := app.fyneApp.NewWindow(app.tr(i18n.GalleryTitle))
	win.Resize(fyne.NewSize(600, 500))

	loading := widget.NewLabel(app.tr(i18n.Loading))
	win.SetContent(container.NewCenter(loading))
	win.Show()

	utils.SafeGo(app.logger, "prototype detail", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		p, err := app.prototypes.Get(ctx, id)

		fyne.Do(func() {
			if err != nil {
				app.logger.Error("Detail load failed: %v", err)
				msg := app.tr(i18n.ConnectionError)
				if errors.Is(err, supabase.ErrNotFound) {
					msg = app.tr(i18n.PrototypeMissing)
				}
				win.SetContent(container.NewVBox(
					widget.NewLabel(msg),
					widget.NewButton(app.tr(i18n.Back), func() { win.Close() }),
				))
				return
			}
			win.SetTitle(p.Name)
			win.SetContent(detailContent(app, win, p))
		})
	})
}

func detailContent(app *App, win fyne.Window, p model.Prototype) fyne.CanvasObject {
	title := widget.NewLabelWithStyle(p.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	created := widget.NewLabel(app.tr(i18n.CreatedOn) + ": " + p.CreatedTime().Format("2006-01-02 15:04"))

	var description fyne.CanvasObject = widget.NewLabel("")
	if p.Description != "" {
		desc := widget.NewLabel(p.Description)
		desc.Wrapping = fyne.TextWrapWord
		description = desc
	}

	favoriteLabel := func() string {
		if app.prototypes.IsFavorite(p.ID) {
			return "★ " + app.tr(i18n.RemoveFavorite)
		}
		return "☆ " + app.tr(i18n.AddFavorite)
	}
	var favoriteBtn *widget.Button
	favoriteBtn = widget.NewButton(favoriteLabel(), func() {
		if _, err := app.prototypes.ToggleFavorite(p.ID); err != nil {
			app.logger.Error("Favorite toggle failed: %v", err)
			app.showError(err.Error())
			return
		}
		favoriteBtn.SetText(favoriteLabel())
	})

	previewBtn := widget.NewButton(app.tr(i18n.Preview), func() {
		if err := app.viewer.Preview(p.HTMLContent, app.settings.DarkTheme()); err != nil {
			app.logger.Error("Preview failed: %v", err)
			app.showError(err.Error())
		}
	})

	exportHTMLBtn := widget.NewButton(app.tr(i18n.ExportHTML), func() {
		runExport(app, func() export.Result {
			return app.exporter.ExportHTML(p.HTMLContent, p.Name)
		})
	})
	exportPDFBtn := widget.NewButton(app.tr(i18n.ExportPDF), func() {
		runExport(app, func() export.Result {
			return app.exporter.ExportPDF(p.HTMLContent, p.Name)
		})
	})

	backBtn := widget.NewButton(app.tr(i18n.Back), func() {
		win.Close()
	})

	actions := container.NewHBox(previewBtn, exportHTMLBtn, exportPDFBtn)
	return container.NewVBox(title, created, description, favoriteBtn, actions, backBtn)
}

// runExport executes an export off the UI thread and reports the result.
func runExport(app *App, doExport func() export.Result) {
	utils.SafeGo(app.logger, "export", func() {
		result := doExport()

		fyne.Do(func() {
			switch result.Status {
			case export.StatusSuccess:
				app.showSuccess(fmt.Sprintf(app.tr(i18n.ExportSuccess), result.Path))
			case export.StatusCancelled:
				app.showInfo(app.tr(i18n.ExportCancelled))
			default:
				app.showError(fmt.Sprintf(app.tr(i18n.ExportError), result.Message))
			}
		})
	})
}
