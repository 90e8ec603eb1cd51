package reconcile

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func owned(chars ...Character) []OwnedCharacter {
	out := make([]OwnedCharacter, 0, len(chars))
	for _, c := range chars {
		out = append(out, OwnedCharacter{Character: c})
	}
	return out
}

func TestComparators(t *testing.T) {
	base := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	oldest := dated("10", "Rem", base)
	newest := dated("2", "felt", base.Add(time.Hour))
	undated := char("7", "Emilia")
	missing := OwnedCharacter{Character: char("1", "Beatrice"), Missing: true}

	list := append(owned(oldest, undated, newest), missing)

	tests := []struct {
		name string
		sort Sort
		want []CharacterID
	}{
		{"date, later first, undated keep order", Sort{Key: SortDate}, []CharacterID{"2", "10", "7", "1"}},
		{"date reversed", Sort{Key: SortDate, Reversed: true}, []CharacterID{"7", "1", "10", "2"}},
		{"name collation ignores case", Sort{Key: SortName}, []CharacterID{"1", "7", "2", "10"}},
		{"name reversed", Sort{Key: SortName, Reversed: true}, []CharacterID{"10", "2", "7", "1"}},
		{"id numeric", Sort{Key: SortID}, []CharacterID{"1", "2", "7", "10"}},
		{"id reversed", Sort{Key: SortID, Reversed: true}, []CharacterID{"10", "7", "2", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortAndPaginate(list, ComparatorFor(tt.sort), ShowAll)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSortAndPaginate_Idempotent(t *testing.T) {
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	list := owned(
		char("5", "Ram"),
		dated("3", "Rem", base),
		char("1", "Emilia"),
		dated("4", "Felt", base.Add(time.Minute)),
		char("2", "Beatrice"),
	)

	for key := range sortKeyNames {
		for _, reversed := range []bool{false, true} {
			c := ComparatorFor(Sort{Key: key, Reversed: reversed})
			once := SortAndPaginate(list, c, ShowAll)
			twice := SortAndPaginate(once, c, ShowAll)
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("%s reversed=%v not idempotent (-once +twice):\n%s", key, reversed, diff)
			}
		}
	}
}

func TestReverse_Twice(t *testing.T) {
	list := owned(char("3", "c"), char("1", "a"), char("2", "b"))
	c := ComparatorFor(Sort{Key: SortID})

	assert.Equal(t,
		ids(SortAndPaginate(list, c, ShowAll)),
		ids(SortAndPaginate(list, Reverse(Reverse(c)), ShowAll)),
	)
}

func TestSortAndPaginate_Cap(t *testing.T) {
	list := owned(char("3", "c"), char("1", "a"), char("2", "b"))
	c := ComparatorFor(Sort{Key: SortID})

	tests := []struct {
		name  string
		limit DisplayCap
		want  []CharacterID
	}{
		{"cap one", 1, []CharacterID{"1"}},
		{"cap larger than list", 500, []CharacterID{"1", "2", "3"}},
		{"show all", ShowAll, []CharacterID{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(SortAndPaginate(list, c, tt.limit)))
		})
	}

	assert.Equal(t, []CharacterID{"3", "1", "2"}, ids(list), "input must not be reordered")
}

func TestSortAndPaginate_Empty(t *testing.T) {
	got := SortAndPaginate(nil, ComparatorFor(Sort{}), 100)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestComparatorFor_UnknownKeyFallsBackToDate(t *testing.T) {
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	list := owned(dated("1", "a", base), dated("2", "b", base.Add(time.Hour)))

	got := SortAndPaginate(list, ComparatorFor(Sort{Key: SortKey(42)}), ShowAll)
	assert.Equal(t, []CharacterID{"2", "1"}, ids(got))
}
