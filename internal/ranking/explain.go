package ranking

import (
	"fmt"
	"strings"

	"github.com/cheapeats/cheapeats/internal/restaurant"
)

// maxSummaryLen caps the canned-phrase explanation length in characters.
const maxSummaryLen = 60

// summaryRatingCallout is the rating at or above which the summary mentions
// the rating. Separate from the reason generator's high-rating floor; the
// two explanation strategies are independent.
const summaryRatingCallout = 4.3

// Summarize builds the scoring engine's short-form explanation: up to a few
// canned phrases (price, transit with the station name, rating, open-now)
// joined with ", " and truncated to maxSummaryLen characters. When nothing
// applies it falls back to the cuisine name in lowercase.
//
// This is one of two independent explanation strategies; callers wanting
// structured reason tags use the reasons package instead.
func Summarize(r restaurant.Restaurant) string {
	var parts []string

	if r.VerifiedCheap() {
		parts = append(parts, "verified under $15")
	} else if r.AvgPrice != nil && r.FlexiblyCheap() {
		parts = append(parts, fmt.Sprintf("around $%.0f", *r.AvgPrice))
	}

	if r.NearTransit && r.StationName != "" {
		parts = append(parts, "near "+r.StationName)
	}

	if r.Rating >= summaryRatingCallout {
		parts = append(parts, fmt.Sprintf("rated %.1f", r.Rating))
	}

	if r.Open() {
		parts = append(parts, "open now")
	}

	if len(parts) == 0 {
		return truncateSummary(strings.ToLower(r.Cuisine))
	}
	return truncateSummary(strings.Join(parts, ", "))
}

// truncateSummary bounds a summary to maxSummaryLen characters, rune-safe.
func truncateSummary(s string) string {
	runes := []rune(s)
	if len(runes) <= maxSummaryLen {
		return s
	}
	return string(runes[:maxSummaryLen])
}
