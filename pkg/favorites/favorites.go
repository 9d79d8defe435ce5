// Package favorites keeps the set of item ids the user starred. Like the
// cart it lives on a single UI goroutine.
package favorites

import (
	"sort"

	"Bomb-Kitchen-Backend/pkg/localstore"
)

const storageKey = "favorites"

type Favorites struct {
	ids   map[int]struct{}
	store localstore.Store
}

// New rehydrates the set from the store; missing or corrupt state yields
// an empty set.
func New(store localstore.Store) *Favorites {
	f := &Favorites{ids: make(map[int]struct{}), store: store}
	if store != nil {
		var saved []int
		if store.Load(storageKey, &saved) {
			for _, id := range saved {
				f.ids[id] = struct{}{}
			}
		}
	}
	return f
}

// Toggle adds the id when absent and removes it when present, so a double
// toggle restores the original state.
func (f *Favorites) Toggle(itemID int) {
	if _, ok := f.ids[itemID]; ok {
		delete(f.ids, itemID)
	} else {
		f.ids[itemID] = struct{}{}
	}
	f.persist()
}

func (f *Favorites) IsFavorite(itemID int) bool {
	_, ok := f.ids[itemID]
	return ok
}

func (f *Favorites) Count() int {
	return len(f.ids)
}

func (f *Favorites) persist() {
	if f.store == nil {
		return
	}
	ids := make([]int, 0, len(f.ids))
	for id := range f.ids {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	_ = f.store.Save(storageKey, ids)
}
