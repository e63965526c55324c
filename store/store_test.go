package store

import (
	"path/filepath"
	"testing"

	"prototype-creator/utils"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	logger, err := utils.NewLogger(filepath.Join(dir, "test.log"))
	if err != nil {
		t.Fatalf("create logger: %v", err)
	}
	t.Cleanup(func() { logger.Close() })

	s, err := Open(filepath.Join(dir, "prefs.db"), logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreRoundtrip(t *testing.T) {
	s := testStore(t)

	if v, err := s.Get("missing"); err != nil || v != "" {
		t.Errorf("missing key: got (%q, %v), want empty", v, err)
	}

	if err := s.Set("k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set("k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	v, err := s.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != "v2" {
		t.Errorf("got %q, want v2", v)
	}

	if err := s.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if v, _ := s.Get("k"); v != "" {
		t.Errorf("deleted key still returns %q", v)
	}
}

func TestFavoritesToggleIsInvolution(t *testing.T) {
	f := NewFavorites(testStore(t))

	on, err := f.Toggle("abc")
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if !on || !f.IsFavorite("abc") {
		t.Error("first toggle should favorite the prototype")
	}

	off, err := f.Toggle("abc")
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if off || f.IsFavorite("abc") {
		t.Error("second toggle should restore the original state")
	}
	if len(f.All()) != 0 {
		t.Errorf("expected empty set, got %v", f.All())
	}
}

func TestFavoritesMultipleIDs(t *testing.T) {
	f := NewFavorites(testStore(t))

	for _, id := range []string{"b", "a", "c"} {
		if _, err := f.Toggle(id); err != nil {
			t.Fatalf("toggle %s: %v", id, err)
		}
	}

	set := f.All()
	if len(set) != 3 {
		t.Fatalf("expected 3 favorites, got %d", len(set))
	}
	for _, id := range []string{"a", "b", "c"} {
		if !set[id] {
			t.Errorf("expected %s to be favorite", id)
		}
	}
}

func TestFavoritesCorruptValueYieldsEmptySet(t *testing.T) {
	s := testStore(t)
	if err := s.Set("favorite_prototypes", "{not json"); err != nil {
		t.Fatalf("seed corrupt value: %v", err)
	}

	f := NewFavorites(s)
	if len(f.All()) != 0 {
		t.Errorf("corrupt value should yield the empty set, got %v", f.All())
	}
	// Recovery: toggling after corruption starts from empty.
	if _, err := f.Toggle("abc"); err != nil {
		t.Fatalf("toggle after corruption: %v", err)
	}
	if !f.IsFavorite("abc") {
		t.Error("toggle after corruption should favorite the prototype")
	}
}

func TestSettingsPersistence(t *testing.T) {
	s := testStore(t)
	settings := NewSettings(s)

	if settings.DarkTheme() {
		t.Error("dark theme should default to false")
	}
	if err := settings.SetDarkTheme(true); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if !settings.DarkTheme() {
		t.Error("dark theme should persist")
	}

	if settings.Language() != "" {
		t.Errorf("language should default to empty, got %q", settings.Language())
	}
	if err := settings.SetLanguage("en"); err != nil {
		t.Fatalf("set language: %v", err)
	}
	if settings.Language() != "en" {
		t.Errorf("language = %q, want en", settings.Language())
	}
}
