package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"prototype-creator/i18n"
	"prototype-creator/model"
)

// SettingsView exposes the persisted preferences: theme, language and a
// read-only summary of the configured AI backend.
type SettingsView struct {
	app     *App
	content *fyne.Container
}

// NewSettingsView builds the settings tab.
func NewSettingsView(app *App) *SettingsView {
	v := &SettingsView{app: app}

	darkCheck := widget.NewCheck(app.tr(i18n.DarkMode), func(dark bool) {
		if err := app.settings.SetDarkTheme(dark); err != nil {
			app.logger.Error("Failed to save theme: %v", err)
			app.showError(err.Error())
			return
		}
		app.applyTheme()
	})
	darkCheck.SetChecked(app.settings.DarkTheme())

	languages := model.Languages()
	names := make([]string, len(languages))
	for i, l := range languages {
		names[i] = l.NativeName
	}
	langSelect := widget.NewSelect(names, func(selected string) {
		for _, l := range languages {
			if l.NativeName == selected {
				if l.Code == app.lang.Code {
					return
				}
				if err := app.settings.SetLanguage(l.Code); err != nil {
					app.logger.Error("Failed to save language: %v", err)
					app.showError(err.Error())
					return
				}
				app.lang = l
				app.rebuildUI()
				return
			}
		}
	})
	langSelect.SetSelected(app.lang.NativeName)

	backend := widget.NewLabel(app.tr(i18n.BackendSection) + ": " + app.aiService.Name())

	v.content = container.NewVBox(
		widget.NewLabelWithStyle(app.tr(i18n.SettingsTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		darkCheck,
		container.NewHBox(widget.NewLabel(app.tr(i18n.LanguageLabel)), langSelect),
		widget.NewSeparator(),
		backend,
	)
	return v
}

// Content returns the root canvas object of the view.
func (v *SettingsView) Content() fyne.CanvasObject {
	return v.content
}
