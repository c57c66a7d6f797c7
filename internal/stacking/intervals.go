package stacking

import "sort"

// DepthRanged is any child record bounded by a depth range. Records with an
// absent start or end never overlap anything; a lot of historical data is
// missing one or both bounds and must still stack cleanly.
type DepthRanged interface {
	DepthRange() (start, end *float64)
}

// Overlaps reports whether two depth ranges intersect or share an exact
// endpoint.
func Overlaps(a, b DepthRanged) bool {
	as, ae := a.DepthRange()
	bs, be := b.DepthRange()
	if as == nil || ae == nil || bs == nil || be == nil {
		return false
	}
	intersects := *as < *be && *bs < *ae
	touches := *as == *bs || *ae == *be
	return intersects || touches
}

// MergeIntervals reconciles an incoming set of depth-ranged records against
// the existing set: every existing record that overlaps any incoming record
// is discarded whole (never split), the incoming records are kept verbatim,
// and the result is sorted ascending by (start, end).
func MergeIntervals[T DepthRanged](existing, incoming []T) []T {
	merged := make([]T, 0, len(existing)+len(incoming))
	for _, prev := range existing {
		if !overlapsAny(prev, incoming) {
			merged = append(merged, prev)
		}
	}
	merged = append(merged, incoming...)
	sortByDepth(merged)
	return merged
}

func overlapsAny[T DepthRanged](record T, set []T) bool {
	for _, other := range set {
		if Overlaps(record, other) {
			return true
		}
	}
	return false
}

func sortByDepth[T DepthRanged](set []T) {
	sort.SliceStable(set, func(i, j int) bool {
		is, ie := set[i].DepthRange()
		js, je := set[j].DepthRange()
		if c := compareBound(is, js); c != 0 {
			return c < 0
		}
		return compareBound(ie, je) < 0
	})
}

// Absent bounds sort ahead of any concrete depth.
func compareBound(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}
