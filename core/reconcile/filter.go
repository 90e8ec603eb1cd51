package reconcile

import (
	"strings"
	"unicode/utf8"
)

// minSearchLen is the shortest search that filters anything.
const minSearchLen = 2

// Predicate decides whether a character is kept.
type Predicate func(Character) bool

// All composes predicates with logical AND, stopping at the first failure.
// Callers should pass the cheapest predicates first.
func All(preds ...Predicate) Predicate {
	return func(c Character) bool {
		for _, p := range preds {
			if !p(c) {
				return false
			}
		}
		return true
	}
}

// MatchText matches the id as a substring or the name as a case-insensitive
// substring. Searches shorter than two characters match everything.
func MatchText(search string) Predicate {
	if utf8.RuneCountInString(search) < minSearchLen {
		return func(Character) bool { return true }
	}

	lowered := strings.ToLower(search)
	return func(c Character) bool {
		return strings.Contains(string(c.ID), search) ||
			strings.Contains(strings.ToLower(c.Name), lowered)
	}
}

// InRoster keeps characters whose id appears in roster.
// An empty roster keeps everything.
func InRoster(roster []Character) Predicate {
	if len(roster) == 0 {
		return func(Character) bool { return true }
	}

	ids := make(map[CharacterID]struct{}, len(roster))
	for _, c := range roster {
		ids[c.ID] = struct{}{}
	}
	return func(c Character) bool {
		_, ok := ids[c.ID]
		return ok
	}
}

// ComposeFilter builds the predicate applied to owned and roster characters.
func ComposeFilter(search string, roster []Character) Predicate {
	var preds []Predicate
	if len(roster) > 0 {
		preds = append(preds, InRoster(roster))
	}
	if utf8.RuneCountInString(search) >= minSearchLen {
		preds = append(preds, MatchText(search))
	}
	return All(preds...)
}

// Filter returns the characters of in that satisfy pred, in order.
func Filter(in []Character, pred Predicate) []Character {
	out := make([]Character, 0, len(in))
	for _, c := range in {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}
