package ranking

import (
	"sort"

	"github.com/cheapeats/cheapeats/internal/restaurant"
)

// FilterOpen keeps records whose open status is not exactly false.
// Unknown status is kept; this is the tolerant soft-ranking reading, not the
// hard filter's conservative one.
func FilterOpen(list []restaurant.Restaurant) []restaurant.Restaurant {
	out := make([]restaurant.Restaurant, 0, len(list))
	for _, r := range list {
		if !r.Closed() {
			out = append(out, r)
		}
	}
	return out
}

// FilterCheap keeps flexibly-cheap records: numeric price below the limit,
// or price unknown. Unknowns are kept as a fallback; rejecting every
// unknown-priced candidate could empty the result set.
func FilterCheap(list []restaurant.Restaurant) []restaurant.Restaurant {
	out := make([]restaurant.Restaurant, 0, len(list))
	for _, r := range list {
		if r.FlexiblyCheap() {
			out = append(out, r)
		}
	}
	return out
}

// SortOption selects an ordering for SortBy.
type SortOption string

// Valid sort option constants.
const (
	SortByScore  SortOption = "score"  // Composite ranking order
	SortByPrice  SortOption = "price"  // Ascending price, unknown last
	SortByRating SortOption = "rating" // Descending rating
	SortByWalk   SortOption = "walk"   // Ascending walk time, unknown last
)

// SortBy returns the candidates reordered by the given option. SortByScore
// delegates to Rank with the given options and returns the restaurants in
// ranked order; the other options sort on a single attribute with unknown
// values last. The input list is never mutated. Unrecognized options return
// a copy in input order.
func SortBy(list []restaurant.Restaurant, opt SortOption, opts Options) []restaurant.Restaurant {
	if opt == SortByScore {
		ranked := Rank(list, opts)
		out := make([]restaurant.Restaurant, 0, len(ranked))
		for _, rr := range ranked {
			out = append(out, rr.Restaurant)
		}
		return out
	}

	out := make([]restaurant.Restaurant, len(list))
	copy(out, list)

	switch opt {
	case SortByPrice:
		sort.SliceStable(out, func(i, j int) bool {
			return lessByOptionalFloat(out[i].AvgPrice, out[j].AvgPrice)
		})
	case SortByRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case SortByWalk:
		sort.SliceStable(out, func(i, j int) bool {
			return lessByOptionalInt(out[i].WalkMinutes, out[j].WalkMinutes)
		})
	}
	return out
}

// ReorderRanked re-sorts already-ranked results by a single attribute,
// keeping each record's score and explanation intact. SortByScore and
// unrecognized options return a copy in the existing order. Attribute sorts
// place unknown values last. The input list is never mutated.
func ReorderRanked(list []restaurant.Ranked, opt SortOption) []restaurant.Ranked {
	out := make([]restaurant.Ranked, len(list))
	copy(out, list)

	switch opt {
	case SortByPrice:
		sort.SliceStable(out, func(i, j int) bool {
			return lessByOptionalFloat(out[i].Restaurant.AvgPrice, out[j].Restaurant.AvgPrice)
		})
	case SortByRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Restaurant.Rating > out[j].Restaurant.Rating
		})
	case SortByWalk:
		sort.SliceStable(out, func(i, j int) bool {
			return lessByOptionalInt(out[i].Restaurant.WalkMinutes, out[j].Restaurant.WalkMinutes)
		})
	}
	return out
}

// lessByOptionalFloat orders known values ascending and unknown values last.
func lessByOptionalFloat(a, b *float64) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a < *b
}

// lessByOptionalInt orders known values ascending and unknown values last.
func lessByOptionalInt(a, b *int) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a < *b
}
