package reconcile

// DeriveMissing returns the roster entries that pass pred and are not in
// covered, annotated with annotate and flagged Missing. A nil roster yields an
// empty list.
func DeriveMissing(
	roster []Character,
	covered map[CharacterID]struct{},
	pred Predicate,
	annotate func(Character) OwnedCharacter,
) []OwnedCharacter {
	if roster == nil {
		return []OwnedCharacter{}
	}

	missing := make([]OwnedCharacter, 0, len(roster))
	for _, c := range roster {
		if !pred(c) {
			continue
		}
		if _, ok := covered[c.ID]; ok {
			continue
		}
		entry := annotate(c)
		entry.Missing = true
		missing = append(missing, entry)
	}

	return missing
}

// coveredIDs collects the ids of list.
func coveredIDs(list []OwnedCharacter) map[CharacterID]struct{} {
	ids := make(map[CharacterID]struct{}, len(list))
	for _, c := range list {
		ids[c.ID] = struct{}{}
	}
	return ids
}
