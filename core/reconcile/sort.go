package reconcile

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator orders two entries: negative when a sorts first, positive when b
// does, zero when they tie.
type Comparator func(a, b OwnedCharacter) int

// comparators builds a fresh comparator per key. Collators keep internal
// buffers, so a comparator must not be shared between goroutines.
var comparators = map[SortKey]func() Comparator{
	SortDate: func() Comparator { return byDate },
	SortName: func() Comparator { return byName(language.Und) },
	SortID:   func() Comparator { return byID },
}

// ComparatorFor returns the comparator for s, reversed when s.Reversed is set.
func ComparatorFor(s Sort) Comparator {
	build, ok := comparators[s.Key]
	if !ok {
		build = comparators[SortDate]
	}
	c := build()
	if s.Reversed {
		return Reverse(c)
	}
	return c
}

// Reverse swaps the operands of c.
func Reverse(c Comparator) Comparator {
	return func(a, b OwnedCharacter) int {
		return c(b, a)
	}
}

// byDate puts later acquisitions first. Entries without a date are never
// later than dated ones and tie among themselves, so they keep their input
// order after every dated entry.
func byDate(a, b OwnedCharacter) int {
	switch {
	case a.HasDate() && b.HasDate():
		return b.Date.Compare(*a.Date)
	case a.HasDate():
		return -1
	case b.HasDate():
		return 1
	default:
		return 0
	}
}

func byName(tag language.Tag) Comparator {
	col := collate.New(tag)
	return func(a, b OwnedCharacter) int {
		return col.CompareString(a.Name, b.Name)
	}
}

func byID(a, b OwnedCharacter) int {
	return cmp.Compare(a.ID.Int(), b.ID.Int())
}

// SortAndPaginate stably sorts a copy of list with c and keeps the first
// limit entries. ShowAll (or any non-positive cap) keeps everything.
func SortAndPaginate(list []OwnedCharacter, c Comparator, limit DisplayCap) []OwnedCharacter {
	sorted := slices.Clone(list)
	if sorted == nil {
		sorted = []OwnedCharacter{}
	}
	slices.SortStableFunc(sorted, c)

	if limit > 0 && int(limit) < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}
