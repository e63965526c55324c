package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"prototype-creator/export"
	"prototype-creator/utils"
)

// DialogExporter asks the user where to save through the platform file
// dialog, then writes the chosen format. It must be called off the UI
// thread; the dialog itself is dispatched back via fyne.Do and the caller
// blocks until the user answers.
type DialogExporter struct {
	window fyne.Window
	logger *utils.Logger
}

// NewDialogExporter creates a save-dialog exporter bound to the main window.
func NewDialogExporter(window fyne.Window, logger *utils.Logger) *DialogExporter {
	return &DialogExporter{window: window, logger: logger}
}

// ExportHTML writes the prototype HTML to a user-chosen location.
func (e *DialogExporter) ExportHTML(html, name string) export.Result {
	return e.save([]byte(html), name, export.FormatHTML)
}

// ExportPDF converts the prototype to PDF and writes it to a user-chosen
// location. Conversion happens before the dialog closes the result channel,
// so a converter failure surfaces as an error, not a broken file.
func (e *DialogExporter) ExportPDF(html, name string) export.Result {
	data, err := export.RenderPDF(html)
	if err != nil {
		e.logger.Error("PDF conversion failed: %v", err)
		return export.Errorf("pdf conversion failed: %v", err)
	}
	return e.save(data, name, export.FormatPDF)
}

func (e *DialogExporter) save(data []byte, name string, format export.Format) export.Result {
	results := make(chan export.Result, 1)
	suggested := export.Filename(name, format)

	fyne.Do(func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				results <- export.Errorf("save dialog failed: %v", err)
				return
			}
			if writer == nil {
				results <- export.Cancelled()
				return
			}
			defer writer.Close()

			if _, err := writer.Write(data); err != nil {
				results <- export.Errorf("failed to write file: %v", err)
				return
			}
			results <- export.Success(writer.URI().Path())
		}, e.window)

		d.SetFileName(suggested)
		d.SetFilter(storage.NewExtensionFileFilter([]string{"." + format.Extension()}))
		d.Show()
	})

	result := <-results
	if result.Status == export.StatusSuccess {
		e.logger.Info("Exported %s to %s", strings.ToLower(format.DisplayName()), result.Path)
	}
	return result
}
