package reconcile

// OwnerIndex maps a character id to the users owning it, in supply order.
// Characters nobody in scope owns have no entry.
type OwnerIndex map[CharacterID][]string

// ResolveOwners builds the ownership index for the primary user and the
// compare users. The primary user is listed first, then compare users in the
// order given. A user is listed at most once per character even when its
// character list contains duplicates or the same user is supplied twice.
func ResolveOwners(primaryID string, primary []Character, compare []User) OwnerIndex {
	index := make(OwnerIndex)

	add := func(userID string, chars []Character) {
		for _, c := range chars {
			owners := index[c.ID]
			if containsOwner(owners, userID) {
				continue
			}
			index[c.ID] = append(owners, userID)
		}
	}

	add(primaryID, primary)
	for _, u := range compare {
		add(u.ID, u.Characters)
	}

	return index
}

// Owners returns the owners of id, or nil.
func (idx OwnerIndex) Owners(id CharacterID) []string {
	return idx[id]
}

// Annotate wraps c with its owners. Owners is left nil when nobody owns the
// character or when the primary user is its only owner, so a non-nil Owners
// always means "shared with a compare user".
func (idx OwnerIndex) Annotate(c Character, primaryID string) OwnedCharacter {
	owned := OwnedCharacter{Character: c}

	owners := idx[c.ID]
	if len(owners) == 0 || (len(owners) == 1 && owners[0] == primaryID) {
		return owned
	}

	owned.Owners = append([]string(nil), owners...)
	return owned
}

// Annotator returns Annotate bound to primaryID.
func (idx OwnerIndex) Annotator(primaryID string) func(Character) OwnedCharacter {
	return func(c Character) OwnedCharacter {
		return idx.Annotate(c, primaryID)
	}
}

func containsOwner(owners []string, id string) bool {
	for _, o := range owners {
		if o == id {
			return true
		}
	}
	return false
}
