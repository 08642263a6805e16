// Package reasons derives structured "why this pick" tags for a ranked
// restaurant and renders them into a compact explanation sentence.
//
// This is the second of the two explanation strategies: the ranking package
// produces a free-form canned-phrase summary, while this package produces an
// ordered tag list plus a tag-derived sentence. Callers pick one depending on
// whether they need the structured tags.
package reasons

import (
	"strings"
	"time"
	"unicode"

	"github.com/cheapeats/cheapeats/internal/restaurant"
	"github.com/cheapeats/cheapeats/internal/trust"
)

// MaxReasons caps how many tags a single result carries.
const MaxReasons = 4

// nearTransitWalkLimit is the walk time in minutes at or under which the
// near-transit tag applies. Deliberately stricter than the hard filter's
// caller-configurable walk bound: "steps from transit" has to mean it.
const nearTransitWalkLimit = 5

// highRatingFloor is the rating at or above which the high-rating tag applies.
const highRatingFloor = 4.3

// fallbackExplanation is returned when no tags matched.
const fallbackExplanation = "Nearby option"

// explanationPhrases maps each reason tag to its fixed lowercase phrase used
// in rendered explanations.
var explanationPhrases = map[restaurant.Reason]string{
	restaurant.ReasonOpenNow:         "open now",
	restaurant.ReasonVerifiedCheap:   "verified cheap",
	restaurant.ReasonEstimatedCheap:  "cheap eats",
	restaurant.ReasonNearTransit:     "steps from transit",
	restaurant.ReasonHighRating:      "highly rated",
	restaurant.ReasonQueryMatch:      "matches your search",
	restaurant.ReasonStudentDiscount: "student discount",
	restaurant.ReasonQuickService:    "quick service",
	restaurant.ReasonLunchSpecial:    "lunch special",
	restaurant.ReasonFastestOption:   "fastest option",
}

// Generate derives the recommendation tags for a restaurant given the active
// filter context and an optional search query. Conditions are evaluated in a
// fixed priority order and the result is truncated to the first MaxReasons
// matches; it is not re-sorted after truncation.
func Generate(r restaurant.Restaurant, f restaurant.HardFilters, query string) []restaurant.Reason {
	var tags []restaurant.Reason

	if r.Open() {
		tags = append(tags, restaurant.ReasonOpenNow)
	}

	// The two price tags are mutually exclusive: verified wins, and the
	// estimated tag applies only to genuinely estimated prices, not
	// unknown or user-reported ones.
	if r.VerifiedCheap() {
		tags = append(tags, restaurant.ReasonVerifiedCheap)
	} else if r.FlexiblyCheap() && r.PriceSource == trust.SourceEstimated {
		tags = append(tags, restaurant.ReasonEstimatedCheap)
	}

	if r.NearTransit && r.WalkMinutes != nil && *r.WalkMinutes <= nearTransitWalkLimit {
		tags = append(tags, restaurant.ReasonNearTransit)
	}

	if r.Rating >= highRatingFloor {
		tags = append(tags, restaurant.ReasonHighRating)
	}

	if q := strings.TrimSpace(query); q != "" && matchesQuery(r, q) {
		tags = append(tags, restaurant.ReasonQueryMatch)
	}

	if r.HasStudentDiscount {
		tags = append(tags, restaurant.ReasonStudentDiscount)
	}

	if len(tags) > MaxReasons {
		tags = tags[:MaxReasons]
	}
	return tags
}

// matchesQuery reports whether the query case-insensitively matches the
// restaurant's name or cuisine.
func matchesQuery(r restaurant.Restaurant, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Cuisine), q)
}

// Explanation renders a tag list into one compact sentence fragment: the
// first two tags mapped to their fixed lowercase phrases, joined with ", ",
// with only the first character capitalized. An empty tag list yields the
// "Nearby option" fallback.
func Explanation(tags []restaurant.Reason) string {
	if len(tags) == 0 {
		return fallbackExplanation
	}

	take := tags
	if len(take) > 2 {
		take = take[:2]
	}

	phrases := make([]string, 0, len(take))
	for _, tag := range take {
		phrases = append(phrases, explanationPhrases[tag])
	}

	return capitalizeFirst(strings.Join(phrases, ", "))
}

// capitalizeFirst upper-cases only the first rune of s.
func capitalizeFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// RankWithReasons wraps a scored restaurant into a Ranked record carrying
// the generated tags and the tag-based explanation, for callers that want
// structured reasons instead of the ranking package's canned-phrase summary.
func RankWithReasons(r restaurant.Restaurant, score float64, f restaurant.HardFilters, query string) restaurant.Ranked {
	tags := Generate(r, f, query)
	return restaurant.Ranked{
		Restaurant:  r,
		Score:       score,
		Reasons:     tags,
		Explanation: Explanation(tags),
		TrustLabel:  trust.Label(r.Freshness, r.LastVerified, time.Now()),
	}
}
