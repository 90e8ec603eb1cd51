package reconcile

// Reconcile computes the annotated, filtered, sorted and capped character list
// for one view. It is pure: the same input always yields the same result.
//
// Owned characters that pass the filters come first, then roster characters
// the primary user lacks, and the whole list is then sorted and capped.
func Reconcile(in Input) Result {
	index := ResolveOwners(in.PrimaryID, in.owned(), in.Compare)
	annotate := index.Annotator(in.PrimaryID)
	pred := ComposeFilter(in.Search, in.Roster)

	owned := make([]OwnedCharacter, 0, len(in.Characters))
	for _, c := range in.Characters {
		if pred(c) {
			owned = append(owned, annotate(c))
		}
	}

	missing := DeriveMissing(in.Roster, coveredIDs(owned), pred, annotate)

	merged := make([]OwnedCharacter, 0, len(owned)+len(missing))
	merged = append(merged, owned...)
	merged = append(merged, missing...)

	shown := SortAndPaginate(merged, ComparatorFor(in.Sort), in.Cap)

	return Result{
		Characters: shown,
		Summary:    summarize(owned, missing, shown),
	}
}

func summarize(owned, missing, shown []OwnedCharacter) Summary {
	s := Summary{
		Owned:   len(owned),
		Missing: len(missing),
		Total:   len(owned) + len(missing),
		Shown:   len(shown),
	}
	for _, list := range [][]OwnedCharacter{owned, missing} {
		for _, c := range list {
			if c.Owners != nil {
				s.Shared++
			}
		}
	}
	return s
}
