package collection

import (
	"slices"

	"waifulist/core/reconcile"
)

// View holds the selections of one collection view and memoizes its result.
// It is not safe for concurrent use.
type View struct {
	primary    reconcile.User
	characters []reconcile.Character
	owned      []reconcile.Character
	compare    []reconcile.User
	mediaID    int64
	roster     []reconcile.Character
	search     string
	sort       reconcile.Sort
	cap        reconcile.DisplayCap

	memo reconcile.Memo
}

// NewView creates a view over the given primary user and character list,
// sorted by date with the default display cap. The list may be the user's
// collection or wishlist; ownership always comes from primary.Characters.
func NewView(primary reconcile.User, characters []reconcile.Character) *View {
	owned := primary.Characters
	if owned == nil {
		owned = []reconcile.Character{}
	}
	return &View{
		primary:    primary,
		characters: characters,
		owned:      owned,
		sort:       reconcile.Sort{Key: reconcile.SortDate},
		cap:        reconcile.DefaultDisplayCap,
	}
}

// Primary returns the viewed user.
func (v *View) Primary() reconcile.User { return v.primary }

// Compare returns the compare users in selection order.
func (v *View) Compare() []reconcile.User { return v.compare }

// MediaID returns the selected media, or 0.
func (v *View) MediaID() int64 { return v.mediaID }

// Sort returns the current sort selection.
func (v *View) Sort() reconcile.Sort { return v.sort }

// Cap returns the display cap.
func (v *View) Cap() reconcile.DisplayCap { return v.cap }

// Search returns the search text.
func (v *View) Search() string { return v.search }

// ChooseSort selects key. Choosing the current key again flips the direction;
// choosing another key resets it.
func (v *View) ChooseSort(key reconcile.SortKey) {
	if v.sort.Key == key {
		v.sort.Reversed = !v.sort.Reversed
		return
	}
	v.sort = reconcile.Sort{Key: key}
}

// SetSort replaces the sort selection.
func (v *View) SetSort(s reconcile.Sort) { v.sort = s }

// SetSearch replaces the search text.
func (v *View) SetSearch(s string) { v.search = s }

// SetCap replaces the display cap.
func (v *View) SetCap(c reconcile.DisplayCap) { v.cap = c }

// SetMedia selects a media and its roster.
func (v *View) SetMedia(id int64, roster []reconcile.Character) {
	v.mediaID = id
	v.roster = roster
	if v.roster == nil {
		v.roster = []reconcile.Character{}
	}
}

// ClearMedia drops the media selection.
func (v *View) ClearMedia() {
	v.mediaID = 0
	v.roster = nil
}

// AddCompare appends u to the compare users. It reports false when u is the
// primary user or already selected.
func (v *View) AddCompare(u reconcile.User) bool {
	if u.ID == v.primary.ID {
		return false
	}
	if slices.ContainsFunc(v.compare, func(c reconcile.User) bool { return c.ID == u.ID }) {
		return false
	}
	v.compare = append(v.compare, u)
	return true
}

// RemoveCompare drops the compare user with the given id.
func (v *View) RemoveCompare(id string) bool {
	before := len(v.compare)
	v.compare = slices.DeleteFunc(v.compare, func(c reconcile.User) bool { return c.ID == id })
	return len(v.compare) != before
}

// Input returns the engine input for the current selections.
func (v *View) Input() reconcile.Input {
	return reconcile.Input{
		PrimaryID:    v.primary.ID,
		Characters:   v.characters,
		PrimaryOwned: v.owned,
		Compare:      v.compare,
		Roster:       v.roster,
		Search:       v.search,
		Sort:         v.sort,
		Cap:          v.cap,
	}
}

// Render returns the result for the current selections and whether it was
// recomputed.
func (v *View) Render() (reconcile.Result, bool) {
	return v.memo.Compute(v.Input())
}
