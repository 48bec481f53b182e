package visibility

// Publishable is the slice element contract for Visible: anything with an
// owning creator and a published flag.
type Publishable interface {
	OwnerID() string
	Published() bool
}

// Visible selects the subsequence of items a viewer may see: items whose
// owner is in hiddenOwners are dropped, and unpublished items are dropped
// unless includeUnpublished is set (management views of the caller's own
// drafts, admin listings).
//
// Input order is preserved and nothing is duplicated; re-filtering an
// already filtered list with the same hidden set returns an equal list.
func Visible[T Publishable](items []T, hiddenOwners map[string]bool, includeUnpublished bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if hiddenOwners[it.OwnerID()] {
			continue
		}
		if !includeUnpublished && !it.Published() {
			continue
		}
		out = append(out, it)
	}
	return out
}
