package repo

import (
	"context"
	"errors"
	"testing"

	"prototype-creator/model"
)

type fakeService struct {
	prototypes []model.Prototype
	listErr    error
	deleted    []string
}

func (f *fakeService) ListPrototypes(ctx context.Context) ([]model.Prototype, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.Prototype, len(f.prototypes))
	copy(out, f.prototypes)
	return out, nil
}

func (f *fakeService) GetPrototype(ctx context.Context, id string) (model.Prototype, error) {
	for _, p := range f.prototypes {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Prototype{}, errors.New("not found")
}

func (f *fakeService) SavePrototype(ctx context.Context, p model.Prototype) (model.Prototype, error) {
	if p.ID == "" {
		p.ID = "generated"
	}
	return p, nil
}

func (f *fakeService) DeletePrototype(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeFavorites struct {
	set map[string]bool
}

func (f *fakeFavorites) All() map[string]bool {
	out := make(map[string]bool, len(f.set))
	for k, v := range f.set {
		out[k] = v
	}
	return out
}

func (f *fakeFavorites) IsFavorite(id string) bool { return f.set[id] }

func (f *fakeFavorites) Toggle(id string) (bool, error) {
	if f.set[id] {
		delete(f.set, id)
		return false, nil
	}
	f.set[id] = true
	return true, nil
}

func TestListMergesFavoritesAndPreservesOrder(t *testing.T) {
	service := &fakeService{prototypes: []model.Prototype{
		{ID: "newer", Name: "Newer"},
		{ID: "older", Name: "Older"},
	}}
	favs := &fakeFavorites{set: map[string]bool{"older": true}}
	r := NewPrototypeRepository(service, favs)

	got, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if got[0].ID != "newer" || got[1].ID != "older" {
		t.Errorf("order changed: %s, %s", got[0].ID, got[1].ID)
	}
	if got[0].IsFavorite {
		t.Error("newer should not be favorite")
	}
	if !got[1].IsFavorite {
		t.Error("older should be favorite")
	}
}

func TestListErrorPropagates(t *testing.T) {
	service := &fakeService{listErr: errors.New("backend down")}
	r := NewPrototypeRepository(service, &fakeFavorites{set: map[string]bool{}})

	got, err := r.List(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if got != nil {
		t.Errorf("expected nil slice on error, got %v", got)
	}
}

func TestGetAppliesFavoriteFlag(t *testing.T) {
	service := &fakeService{prototypes: []model.Prototype{{ID: "abc", Name: "App"}}}
	favs := &fakeFavorites{set: map[string]bool{"abc": true}}
	r := NewPrototypeRepository(service, favs)

	p, err := r.Get(context.Background(), "abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !p.IsFavorite {
		t.Error("favorite flag should be applied")
	}
}

func TestToggleFavoriteRoundtrip(t *testing.T) {
	r := NewPrototypeRepository(&fakeService{}, &fakeFavorites{set: map[string]bool{}})

	on, err := r.ToggleFavorite("abc")
	if err != nil || !on {
		t.Fatalf("first toggle: on=%v err=%v", on, err)
	}
	if !r.IsFavorite("abc") {
		t.Error("should be favorite after toggle")
	}
	off, err := r.ToggleFavorite("abc")
	if err != nil || off {
		t.Fatalf("second toggle: on=%v err=%v", off, err)
	}
}

func TestChatSessionStore(t *testing.T) {
	s := NewChatSessionStore()
	id := s.NewSession()

	s.Append(id, model.NewChatMessage("hola", true))
	s.Append(id, model.NewChatMessage("¿en qué te ayudo?", false))

	msgs := s.Messages(id)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if !msgs[0].IsFromUser || msgs[1].IsFromUser {
		t.Error("message roles out of order")
	}

	// The returned slice is a copy; mutating it must not affect the store.
	msgs[0].Content = "mutated"
	if s.Messages(id)[0].Content != "hola" {
		t.Error("transcript should be isolated from caller mutation")
	}

	s.Clear(id)
	if len(s.Messages(id)) != 0 {
		t.Error("clear should empty the transcript")
	}
}
