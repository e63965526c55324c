package ui

import (
	"context"
	"sort"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"prototype-creator/i18n"
	"prototype-creator/model"
	"prototype-creator/utils"
)

// GalleryView lists the saved prototypes with search, sorting and favorite
// toggles. Data loads in the background; the view shows loading, error and
// empty states while it settles.
type GalleryView struct {
	app *App

	prototypes []model.Prototype
	searchTerm string
	sortMode   string

	searchEntry *widget.Entry
	sortSelect  *widget.Select
	list        *fyne.Container
	status      *widget.Label
	retryButton *widget.Button
	content     *fyne.Container
}

// NewGalleryView builds the gallery tab. The first load starts immediately.
func NewGalleryView(app *App) *GalleryView {
	v := &GalleryView{app: app, sortMode: app.tr(i18n.SortNewest)}

	v.searchEntry = widget.NewEntry()
	v.searchEntry.SetPlaceHolder(app.tr(i18n.SearchHint))
	v.searchEntry.OnChanged = func(term string) {
		v.searchTerm = term
		v.renderList()
	}

	sortOptions := []string{
		app.tr(i18n.SortNewest),
		app.tr(i18n.SortOldest),
		app.tr(i18n.SortName),
		app.tr(i18n.SortFavorites),
	}
	v.sortSelect = widget.NewSelect(sortOptions, func(mode string) {
		v.sortMode = mode
		v.renderList()
	})
	v.sortSelect.SetSelected(v.sortMode)

	v.status = widget.NewLabel("")
	v.retryButton = widget.NewButton(app.tr(i18n.Retry), func() {
		v.Refresh()
	})
	v.retryButton.Hide()

	v.list = container.NewVBox()

	header := container.NewBorder(nil, nil, nil, v.sortSelect, v.searchEntry)
	v.content = container.NewBorder(
		header,
		container.NewVBox(v.status, v.retryButton),
		nil, nil,
		container.NewVScroll(v.list),
	)

	v.Refresh()
	return v
}

// Content returns the root canvas object of the view.
func (v *GalleryView) Content() fyne.CanvasObject {
	return v.content
}

// Refresh reloads the prototype list from the backend.
func (v *GalleryView) Refresh() {
	v.status.SetText(v.app.tr(i18n.Loading))
	v.retryButton.Hide()

	utils.SafeGo(v.app.logger, "gallery refresh", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		prototypes, err := v.app.prototypes.List(ctx)

		fyne.Do(func() {
			if err != nil {
				v.app.logger.Error("Gallery load failed: %v", err)
				v.status.SetText(v.app.tr(i18n.ConnectionError))
				v.retryButton.Show()
				return
			}
			v.prototypes = prototypes
			v.status.SetText("")
			v.renderList()
		})
	})
}

// visiblePrototypes applies the search filter and sort mode.
func (v *GalleryView) visiblePrototypes() []model.Prototype {
	term := strings.ToLower(strings.TrimSpace(v.searchTerm))

	out := make([]model.Prototype, 0, len(v.prototypes))
	for _, p := range v.prototypes {
		if term == "" ||
			strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			out = append(out, p)
		}
	}

	switch v.sortMode {
	case v.app.tr(i18n.SortOldest):
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	case v.app.tr(i18n.SortName):
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case v.app.tr(i18n.SortFavorites):
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].IsFavorite != out[j].IsFavorite {
				return out[i].IsFavorite
			}
			return out[i].CreatedAt > out[j].CreatedAt
		})
	default:
		// Newest first is the backend's order already; keep it stable anyway
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	}

	return out
}

func (v *GalleryView) renderList() {
	v.list.Objects = nil

	visible := v.visiblePrototypes()
	if len(visible) == 0 {
		empty := widget.NewLabel(v.app.tr(i18n.NoPrototypes))
		hint := widget.NewLabel(v.app.tr(i18n.CreateFirst))
		goChat := widget.NewButton(v.app.tr(i18n.GoToChat), func() {
			v.app.switchToChat()
		})
		v.list.Add(container.NewVBox(empty, hint, goChat))
		v.list.Refresh()
		return
	}

	for _, p := range visible {
		v.list.Add(v.prototypeCard(p))
	}
	v.list.Refresh()
}

func (v *GalleryView) prototypeCard(p model.Prototype) fyne.CanvasObject {
	title := widget.NewLabelWithStyle(p.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	created := p.CreatedTime().Format("2006-01-02 15:04")
	subtitle := widget.NewLabel(v.app.tr(i18n.CreatedOn) + ": " + created)

	star := "☆"
	if p.IsFavorite {
		star = "★"
	}
	id := p.ID
	favoriteBtn := widget.NewButton(star, func() {
		if _, err := v.app.prototypes.ToggleFavorite(id); err != nil {
			v.app.logger.Error("Favorite toggle failed: %v", err)
			v.app.showError(err.Error())
			return
		}
		for i := range v.prototypes {
			if v.prototypes[i].ID == id {
				v.prototypes[i].IsFavorite = !v.prototypes[i].IsFavorite
			}
		}
		v.renderList()
	})

	deleteBtn := widget.NewButton("🗑", func() {
		v.confirmDelete(id)
	})

	openBtn := widget.NewButton(v.app.tr(i18n.TapToView), func() {
		v.app.openPrototype(id)
	})

	buttons := container.NewHBox(favoriteBtn, deleteBtn, openBtn)
	return widget.NewCard("", "", container.NewVBox(title, subtitle, buttons))
}

func (v *GalleryView) confirmDelete(id string) {
	var dialog *widget.PopUp
	dialog = widget.NewModalPopUp(
		container.NewVBox(
			widget.NewLabel(v.app.tr(i18n.DeleteConfirm)),
			container.NewHBox(
				widget.NewButton(v.app.tr(i18n.Cancel), func() {
					dialog.Hide()
				}),
				widget.NewButton(v.app.tr(i18n.Delete), func() {
					dialog.Hide()
					v.deletePrototype(id)
				}),
			),
		),
		v.app.window.Canvas(),
	)
	dialog.Show()
}

func (v *GalleryView) deletePrototype(id string) {
	utils.SafeGo(v.app.logger, "gallery delete", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		err := v.app.prototypes.Delete(ctx, id)

		fyne.Do(func() {
			if err != nil {
				v.app.logger.Error("Delete failed: %v", err)
				v.app.showError(err.Error())
				return
			}
			v.Refresh()
		})
	})
}
