package ranking

import (
	"sort"
	"time"

	"github.com/cheapeats/cheapeats/internal/restaurant"
	"github.com/cheapeats/cheapeats/internal/trust"
)

// Options controls a single Rank invocation.
type Options struct {
	// ExcludeClosed drops records whose open status is exactly false.
	// Records with unknown status are kept; soft ranking tolerates unknowns,
	// unlike the hard filter.
	ExcludeClosed bool

	// RequireCheap keeps only flexibly-cheap candidates (price below the
	// limit, or unknown).
	RequireCheap bool

	// DisableLunchWeights forces the base weight triple regardless of hour.
	DisableLunchWeights bool

	// Now supplies the current time for lunch-window selection and trust
	// label rendering. Nil means time.Now. Tests inject a frozen clock here.
	Now func() time.Time

	// Table supplies the weight tables. Nil means DefaultWeightTable.
	Table *WeightTable

	// Metrics, when non-nil, records rank invocation counters.
	Metrics *Metrics
}

// DefaultOptions returns the options a plain ranking call uses:
// closed records excluded, no price pre-filter, wall clock, default weights.
func DefaultOptions() Options {
	return Options{ExcludeClosed: true}
}

// Rank filters, scores, and orders the candidate list, wrapping each
// survivor into a Ranked record with its final score, a short canned-phrase
// explanation, and a trust label. The input list is never mutated; an empty
// input yields an empty result.
//
// Ordering is descending by final score with an ascending-ID tiebreak, then
// adjusted by the trust guard: the #1 slot is never an unknown-tier record
// while a known-tier alternative exists.
func Rank(list []restaurant.Restaurant, opts Options) []restaurant.Ranked {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	table := opts.Table
	if table == nil {
		table = DefaultWeightTable()
	}

	candidates := list
	if opts.ExcludeClosed {
		candidates = FilterOpen(candidates)
	}
	if opts.RequireCheap {
		candidates = FilterCheap(candidates)
	}

	at := now()
	weights := table.Base
	if !opts.DisableLunchWeights {
		weights = table.For(at.Hour())
	}

	ranked := make([]restaurant.Ranked, 0, len(candidates))
	for _, r := range candidates {
		score := CompositeScore(ScoreParams{
			Value:   ValueScore(r.AvgPrice),
			Transit: TransitScore(r.WalkMinutes),
			Rating:  RatingScore(r.Rating),
		}, weights)

		// A favorite that is closed or clearly overpriced is never
		// artificially promoted.
		if r.IsFavorite && !r.Closed() && r.FlexiblyCheap() {
			score *= FavoriteBoost
			if opts.Metrics != nil {
				opts.Metrics.IncFavoriteBoosts()
			}
		}

		ranked = append(ranked, restaurant.Ranked{
			Restaurant:  r,
			Score:       score,
			Explanation: Summarize(r),
			TrustLabel:  trust.Label(r.Freshness, r.LastVerified, at),
		})
	}

	sortRanked(ranked)
	ranked = applyTrustGuard(ranked, opts.Metrics)

	if opts.Metrics != nil {
		opts.Metrics.IncRankTotal()
		opts.Metrics.AddCandidates(len(list), len(ranked))
	}

	return ranked
}

// sortRanked orders in place by descending score, breaking exact ties by
// ascending restaurant ID so the ordering is deterministic regardless of
// sort implementation.
func sortRanked(ranked []restaurant.Ranked) {
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Restaurant.ID < ranked[j].Restaurant.ID
	})
}

// applyTrustGuard keeps an unknown-tier record out of the top slot whenever
// a known-tier alternative exists: the top record is swapped with the first
// known-tier record found scanning forward. If every record is unknown-tier,
// the ordering stands. Returns a new slice; the input is not mutated.
func applyTrustGuard(ranked []restaurant.Ranked, metrics *Metrics) []restaurant.Ranked {
	if len(ranked) < 2 || ranked[0].Restaurant.Freshness.Known() {
		return ranked
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Restaurant.Freshness.Known() {
			out := make([]restaurant.Ranked, len(ranked))
			copy(out, ranked)
			out[0], out[i] = out[i], out[0]
			if metrics != nil {
				metrics.IncTrustGuardSwaps()
			}
			return out
		}
	}
	return ranked
}
