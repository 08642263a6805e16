// Package trust classifies how reliable restaurant data is: a coarse
// freshness tier for whole records and a finer-grained source tag for
// numeric price estimates.
package trust

import (
	"fmt"
	"time"
)

// PriceSource identifies where a restaurant's numeric price estimate came from.
// Sources are ordered by descending trust:
// - verified: confirmed via a places provider API
// - user_reported: submitted by a user
// - estimated: derived from the discrete price tier
// - unknown: no provenance at all
type PriceSource string

// Valid price source constants.
const (
	SourceVerified     PriceSource = "verified"
	SourceUserReported PriceSource = "user_reported"
	SourceEstimated    PriceSource = "estimated"
	SourceUnknown      PriceSource = "unknown"
)

// sourceLabels maps each price source to its fixed display label.
// Unknown maps to the empty string so untrusted prices add no display noise.
var sourceLabels = map[PriceSource]string{
	SourceVerified:     "Verified price",
	SourceUserReported: "User reported",
	SourceEstimated:    "Estimated",
	SourceUnknown:      "",
}

// Label returns the display label for the price source.
// Unrecognized sources behave like SourceUnknown and return the empty string.
func (s PriceSource) Label() string {
	return sourceLabels[s]
}

// DataFreshness is the coarse trust tier of an entire restaurant record.
type DataFreshness string

// Valid freshness tier constants.
const (
	FreshnessVerified DataFreshness = "verified"
	FreshnessCached   DataFreshness = "cached"
	FreshnessUnknown  DataFreshness = "unknown"
)

// freshnessLabels maps each freshness tier to its fixed display label.
var freshnessLabels = map[DataFreshness]string{
	FreshnessVerified: "Verified",
	FreshnessCached:   "Cached",
	FreshnessUnknown:  "Unverified",
}

// Label returns the display label for the freshness tier.
// Unrecognized tiers behave like FreshnessUnknown.
func (f DataFreshness) Label() string {
	if label, ok := freshnessLabels[f]; ok {
		return label
	}
	return freshnessLabels[FreshnessUnknown]
}

// Known reports whether the record carries a usable trust tier.
// The zero value and unrecognized tiers count as unknown.
func (f DataFreshness) Known() bool {
	return f == FreshnessVerified || f == FreshnessCached
}

// Price thresholds for the "cheap eats" checks. The flex ceiling only applies
// to estimated or unknown-sourced prices under flexible matching; verified
// prices always use the strict limit.
const (
	PriceLimit       = 15.0
	FlexPriceCeiling = 17.0

	// CheapTierMax is the highest discrete price tier (0-4 scale) still
	// considered cheap when no numeric price is available.
	CheapTierMax = 1
)

// PriceFilterMode governs how "under $15" checks treat unverified or
// estimated prices.
type PriceFilterMode string

// Valid price filter mode constants.
const (
	ModeStrict   PriceFilterMode = "strict"
	ModeFlexible PriceFilterMode = "flexible"
)

// VerifiedUnderLimit reports whether a price is provenance-checked cheap:
// the numeric price must be known, strictly below the limit, and verified.
// Estimated or unknown-sourced prices never pass, however low.
func VerifiedUnderLimit(price *float64, source PriceSource) bool {
	return source == SourceVerified && price != nil && *price < PriceLimit
}

// FlexiblyUnderLimit reports whether a price is cheap under the
// fallback-inclusive reading: numerically below the limit, or unknown.
// Unknown prices pass so that sparse data never empties a candidate set.
func FlexiblyUnderLimit(price *float64) bool {
	return price == nil || *price < PriceLimit
}

// UnderPriceLimit reports whether a restaurant's price satisfies the
// "under $15" check for the given mode.
//
// Strict mode accepts a price tier at or below CheapTierMax, or a known
// numeric price strictly below the limit; estimated prices get no extra
// tolerance. Flexible mode widens the numeric ceiling to FlexPriceCeiling
// (inclusive) for estimated or unknown-sourced prices, while verified and
// user-reported prices keep the strict boundary.
//
// Restaurants with no numeric price fall back to the tier check in both modes.
func UnderPriceLimit(mode PriceFilterMode, tier int, price *float64, source PriceSource) bool {
	if price == nil {
		return tier <= CheapTierMax
	}

	if mode == ModeFlexible {
		if source == SourceEstimated || source == SourceUnknown {
			return *price <= FlexPriceCeiling
		}
		return *price < PriceLimit
	}

	return tier <= CheapTierMax || *price < PriceLimit
}

// Label renders the user-facing trust label for a record.
// Verified and unknown tiers map to their fixed labels. Cached records with a
// known last-verified time render the age ("Cached 3h ago", "Cached 2d ago");
// cached records verified within the hour, or with no timestamp, render the
// bare "Cached".
func Label(f DataFreshness, lastVerified *time.Time, now time.Time) string {
	if f != FreshnessCached {
		return f.Label()
	}
	if lastVerified == nil {
		return freshnessLabels[FreshnessCached]
	}

	age := now.Sub(*lastVerified)
	hours := int(age.Hours())
	switch {
	case hours < 1:
		return freshnessLabels[FreshnessCached]
	case hours < 24:
		return fmt.Sprintf("Cached %dh ago", hours)
	default:
		return fmt.Sprintf("Cached %dd ago", hours/24)
	}
}
