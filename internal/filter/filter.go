// Package filter enforces user-declared hard constraints on restaurant
// candidates. Hard filters form a closed admission gate evaluated before any
// scoring happens; they are never weakened by ranking weights, favorites, or
// trust tier.
package filter

import (
	"github.com/cheapeats/cheapeats/internal/restaurant"
)

// Admit decides whether a single restaurant satisfies every active hard
// constraint. Pure function, no side effects. The second return value is
// false when any active constraint rejects the record.
//
// Constraint semantics:
//   - RequireOpen rejects unless open status is exactly true. Unknown status
//     is treated as not safely open, a deliberately conservative default
//     distinct from soft ranking, which tolerates unknowns.
//   - RequireVerifiedCheap rejects unless the numeric price is verified and
//     below the limit. Provenance-checked, not just numerically satisfying.
//   - RequireNearTransit rejects unless the near-transit flag is set.
//   - MaxWalkMinutes rejects when the walk time exceeds the bound. A missing
//     walk time is effectively infinite and always fails this check.
func Admit(r restaurant.Restaurant, f restaurant.HardFilters) (restaurant.Restaurant, bool) {
	if f.RequireOpen && !r.Open() {
		return restaurant.Restaurant{}, false
	}
	if f.RequireVerifiedCheap && !r.VerifiedCheap() {
		return restaurant.Restaurant{}, false
	}
	if f.RequireNearTransit && !r.NearTransit {
		return restaurant.Restaurant{}, false
	}
	if f.MaxWalkMinutes != nil {
		if r.WalkMinutes == nil || *r.WalkMinutes > *f.MaxWalkMinutes {
			return restaurant.Restaurant{}, false
		}
	}
	return r, true
}

// Apply maps Admit over the candidate list and drops rejected records,
// preserving input order for survivors. An empty or nil input yields an
// empty, non-nil result.
func Apply(list []restaurant.Restaurant, f restaurant.HardFilters) []restaurant.Restaurant {
	out := make([]restaurant.Restaurant, 0, len(list))
	for _, r := range list {
		if admitted, ok := Admit(r, f); ok {
			out = append(out, admitted)
		}
	}
	return out
}
