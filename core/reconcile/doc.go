// Package reconcile turns a user's characters, a set of compare users and an
// optional media roster into the ordered list of cards a collection view
// renders.
//
// Everything in this package is pure and synchronous: it never performs I/O,
// never returns errors for well-formed input and keeps no package-level state.
// Fetching users and rosters is the job of the feature packages.
//
// # Pipeline
//
//  1. Ownership: ResolveOwners indexes which users own which character ids.
//  2. Filtering: ComposeFilter ANDs a text predicate and a roster-membership
//     predicate.
//  3. Missing characters: DeriveMissing lists roster entries the primary user
//     does not own, flagged Missing.
//  4. Ordering: SortAndPaginate sorts owned and missing entries together with
//     a comparator from ComparatorFor and applies the display cap.
//
// Reconcile runs the whole pipeline; Memo skips it when the input is
// unchanged.
//
// # Usage
//
//	res := reconcile.Reconcile(reconcile.Input{
//	    PrimaryID:  user.ID,
//	    Characters: user.Characters,
//	    Compare:    compareUsers,
//	    Roster:     roster, // nil when no media is selected
//	    Search:     "rem",
//	    Sort:       reconcile.Sort{Key: reconcile.SortName},
//	    Cap:        reconcile.ShowAll,
//	})
package reconcile
