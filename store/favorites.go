package store

import (
	"encoding/json"
	"sort"
)

const favoritesKey = "favorite_prototypes"

// Favorites tracks which prototype identifiers the user has starred. The
// whole set lives under a single key as a JSON array of strings.
type Favorites struct {
	store *Store
}

// NewFavorites creates a favorites view over the preference store.
func NewFavorites(store *Store) *Favorites {
	return &Favorites{store: store}
}

// All returns the current favorite set. A missing or corrupt stored value
// yields the empty set; corruption is logged, never surfaced.
func (f *Favorites) All() map[string]bool {
	raw, err := f.store.Get(favoritesKey)
	if err != nil {
		f.store.logger.Error("Failed to read favorites: %v", err)
		return map[string]bool{}
	}
	if raw == "" {
		return map[string]bool{}
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		f.store.logger.Warn("Corrupt favorites value, resetting: %v", err)
		return map[string]bool{}
	}

	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// IsFavorite reports whether the given prototype is starred.
func (f *Favorites) IsFavorite(id string) bool {
	return f.All()[id]
}

// Toggle flips the favorite state of the given prototype and returns the new
// state. Toggling twice restores the original set.
func (f *Favorites) Toggle(id string) (bool, error) {
	set := f.All()
	nowFavorite := !set[id]
	if nowFavorite {
		set[id] = true
	} else {
		delete(set, id)
	}

	ids := make([]string, 0, len(set))
	for v := range set {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	data, err := json.Marshal(ids)
	if err != nil {
		return false, err
	}
	if err := f.store.Set(favoritesKey, string(data)); err != nil {
		return false, err
	}
	return nowFavorite, nil
}
