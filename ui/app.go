// Package ui is the Fyne desktop front end: a tabbed window with the
// prototype gallery, the AI chat and the settings screen.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"prototype-creator/ai"
	"prototype-creator/export"
	"prototype-creator/i18n"
	"prototype-creator/model"
	"prototype-creator/repo"
	"prototype-creator/store"
	"prototype-creator/utils"
	"prototype-creator/viewer"
)

// App represents the main application
type App struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     *utils.Config
	configPath string
	logger     *utils.Logger

	settings   *store.Settings
	prototypes *repo.PrototypeRepository
	chatStore  *repo.ChatSessionStore
	aiService  ai.Service
	exporter   export.Exporter
	viewer     *viewer.BrowserViewer

	lang model.Language

	tabs         *container.AppTabs
	galleryView  *GalleryView
	chatView     *ChatView
	settingsView *SettingsView
}

// NewApp creates a new application instance
func NewApp(
	config *utils.Config,
	configPath string,
	settings *store.Settings,
	prototypes *repo.PrototypeRepository,
	chatStore *repo.ChatSessionStore,
	aiService ai.Service,
	exporter export.Exporter,
	viewer *viewer.BrowserViewer,
	logger *utils.Logger,
) *App {
	fyneApp := app.NewWithID("prototype-creator")
	window := fyneApp.NewWindow("Prototype Creator")

	window.Resize(fyne.NewSize(
		float32(config.UI.WindowWidth),
		float32(config.UI.WindowHeight),
	))

	lang := model.LanguageFromCode(settings.Language())

	application := &App{
		fyneApp:    fyneApp,
		window:     window,
		config:     config,
		configPath: configPath,
		logger:     logger,
		settings:   settings,
		prototypes: prototypes,
		chatStore:  chatStore,
		aiService:  aiService,
		exporter:   exporter,
		viewer:     viewer,
		lang:       lang,
	}

	if application.exporter == nil {
		application.exporter = NewDialogExporter(window, logger)
	}

	window.SetOnClosed(func() {
		size := window.Canvas().Size()
		application.config.UI.WindowWidth = int(size.Width)
		application.config.UI.WindowHeight = int(size.Height)
		if err := utils.SaveConfig(application.configPath, application.config); err != nil {
			application.logger.Error("Failed to save window size: %v", err)
		}
	})

	application.applyTheme()
	application.buildUI()

	return application
}

// tr resolves a string table entry against the current language.
func (a *App) tr(e i18n.Entry) string {
	return e.Get(a.lang)
}

func (a *App) applyTheme() {
	isDark := a.settings.DarkTheme()
	fontSize := a.config.UI.FontSize
	if fontSize < 10 {
		fontSize = 14
	}

	a.fyneApp.Settings().SetTheme(newAppTheme(fontSize, isDark))
	a.logger.Info("Applied theme dark=%v fontSize=%d", isDark, fontSize)
}

func (a *App) buildUI() {
	a.galleryView = NewGalleryView(a)
	a.chatView = NewChatView(a)
	a.settingsView = NewSettingsView(a)

	a.tabs = container.NewAppTabs(
		container.NewTabItem(a.tr(i18n.GalleryTitle), a.galleryView.Content()),
		container.NewTabItem(a.tr(i18n.ChatTitle), a.chatView.Content()),
		container.NewTabItem(a.tr(i18n.SettingsTitle), a.settingsView.Content()),
	)
	a.tabs.SetTabLocation(container.TabLocationTop)

	a.tabs.OnSelected = func(item *container.TabItem) {
		if item.Text == a.tr(i18n.GalleryTitle) {
			a.galleryView.Refresh()
		}
	}

	a.window.SetContent(a.tabs)
}

// rebuildUI replaces every view after a language or theme change.
func (a *App) rebuildUI() {
	selected := a.tabs.SelectedIndex()
	a.buildUI()
	if selected >= 0 && selected < len(a.tabs.Items) {
		a.tabs.SelectIndex(selected)
	}
}

// switchToChat activates the chat tab.
func (a *App) switchToChat() {
	a.tabs.SelectIndex(1)
}

// openPrototype shows the detail view for the given prototype identifier.
func (a *App) openPrototype(id string) {
	ShowPrototypeDetail(a, id)
}

// showError shows an error dialog
func (a *App) showError(message string) {
	var dialog *widget.PopUp
	dialog = widget.NewModalPopUp(
		container.NewVBox(
			widget.NewLabel("❌ "+a.tr(i18n.ErrorTitle)),
			widget.NewLabel(message),
			widget.NewButton("OK", func() {
				dialog.Hide()
			}),
		),
		a.window.Canvas(),
	)
	dialog.Show()
}

// showSuccess shows a success dialog
func (a *App) showSuccess(message string) {
	var dialog *widget.PopUp
	dialog = widget.NewModalPopUp(
		container.NewVBox(
			widget.NewLabel("✅"),
			widget.NewLabel(message),
			widget.NewButton("OK", func() {
				dialog.Hide()
			}),
		),
		a.window.Canvas(),
	)
	dialog.Show()
}

// showInfo shows an info dialog
func (a *App) showInfo(message string) {
	var dialog *widget.PopUp
	dialog = widget.NewModalPopUp(
		container.NewVBox(
			widget.NewLabel("ℹ️"),
			widget.NewLabel(message),
			widget.NewButton("OK", func() {
				dialog.Hide()
			}),
		),
		a.window.Canvas(),
	)
	dialog.Show()
}

// Run shows the window and enters the event loop.
func (a *App) Run() {
	a.window.ShowAndRun()
}
