// Package restaurant defines the records exchanged by the ranking core:
// candidate restaurants, per-request hard filters, recommendation reason
// tags, and the ranked output wrapper.
//
// All records are created fresh per ranking invocation from caller-supplied
// input and are read-only afterward; the core holds no shared mutable state.
package restaurant

import (
	"errors"
	"time"

	"github.com/cheapeats/cheapeats/internal/trust"
)

// Validation errors for caller-supplied records.
var (
	ErrInvalidPriceTier = errors.New("invalid price tier: must be between 0 and 4")
	ErrInvalidRating    = errors.New("invalid rating: must be between 0.0 and 5.0")
)

// Restaurant is a single candidate record, immutable per ranking pass.
// Optional fields use pointers: a nil AvgPrice means the numeric price is
// unknown, a nil WalkMinutes means walking time to transit is unknown, and a
// nil IsOpenNow means open status is unknown (the tri-state third value).
// NearTransit with an unknown walk time is legal; walk time is advisory only.
type Restaurant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Cuisine string `json:"cuisine"`

	// PriceTier is the discrete 0-4 price bucket.
	PriceTier   int               `json:"price_tier"`
	AvgPrice    *float64          `json:"avg_price,omitempty"`
	PriceSource trust.PriceSource `json:"price_source"`

	// Rating is the average rating in [0, 5].
	Rating float64 `json:"rating"`

	DistanceMeters float64 `json:"distance_meters"`
	WalkMinutes    *int    `json:"walk_minutes,omitempty"`
	StationName    string  `json:"station_name,omitempty"`
	NearTransit    bool    `json:"near_transit"`

	IsOpenNow *bool `json:"is_open_now,omitempty"`

	Freshness    trust.DataFreshness `json:"freshness"`
	LastVerified *time.Time          `json:"last_verified,omitempty"`

	IsFavorite         bool `json:"is_favorite"`
	HasStudentDiscount bool `json:"has_student_discount"`
}

// Open reports whether the restaurant is known to be open right now.
// Unknown open status counts as not open.
func (r *Restaurant) Open() bool {
	return r.IsOpenNow != nil && *r.IsOpenNow
}

// Closed reports whether the restaurant is known to be closed right now.
// Unknown open status counts as not closed.
func (r *Restaurant) Closed() bool {
	return r.IsOpenNow != nil && !*r.IsOpenNow
}

// VerifiedCheap reports whether the record carries a verified sub-limit price.
func (r *Restaurant) VerifiedCheap() bool {
	return trust.VerifiedUnderLimit(r.AvgPrice, r.PriceSource)
}

// FlexiblyCheap reports whether the record is cheap under the
// fallback-inclusive reading (price below the limit, or unknown).
func (r *Restaurant) FlexiblyCheap() bool {
	return trust.FlexiblyUnderLimit(r.AvgPrice)
}

// Validate checks the numeric fields the upstream fetch layer is contracted
// to keep in range. The ranking core itself assumes valid input; this is for
// boundary surfaces that accept records from outside.
func (r *Restaurant) Validate() error {
	if r.PriceTier < 0 || r.PriceTier > 4 {
		return ErrInvalidPriceTier
	}
	if r.Rating < 0 || r.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}

// HardFilters is a per-request constraint set. The zero value applies no
// constraints; active fields combine with logical AND, and a record must
// satisfy every active constraint to be admitted.
type HardFilters struct {
	// RequireOpen admits only records known to be open; unknown open status
	// is treated as not safely open.
	RequireOpen bool `json:"require_open"`

	// RequireVerifiedCheap admits only records with a verified sub-limit
	// price. Estimated or unknown-sourced prices never pass, however low.
	RequireVerifiedCheap bool `json:"require_verified_cheap"`

	// RequireNearTransit admits only records flagged as near transit.
	RequireNearTransit bool `json:"require_near_transit"`

	// MaxWalkMinutes, when set, rejects records whose walk time exceeds the
	// bound. A missing walk time is treated as effectively infinite.
	MaxWalkMinutes *int `json:"max_walk_minutes,omitempty"`
}

// Reason is a recommendation tag attached to a ranked result.
type Reason string

// The closed set of recommendation reason tags.
const (
	ReasonOpenNow         Reason = "open_now"
	ReasonVerifiedCheap   Reason = "verified_cheap"
	ReasonEstimatedCheap  Reason = "estimated_cheap"
	ReasonNearTransit     Reason = "near_transit"
	ReasonHighRating      Reason = "high_rating"
	ReasonQueryMatch      Reason = "query_match"
	ReasonStudentDiscount Reason = "student_discount"
	ReasonQuickService    Reason = "quick_service"
	ReasonLunchSpecial    Reason = "lunch_special"
	ReasonFastestOption   Reason = "fastest_option"
)

// reasonLabels maps each reason tag to its fixed display label.
var reasonLabels = map[Reason]string{
	ReasonOpenNow:         "Open now",
	ReasonVerifiedCheap:   "Verified cheap",
	ReasonEstimatedCheap:  "Cheap (estimated)",
	ReasonNearTransit:     "Near transit",
	ReasonHighRating:      "Highly rated",
	ReasonQueryMatch:      "Matches your search",
	ReasonStudentDiscount: "Student discount",
	ReasonQuickService:    "Quick service",
	ReasonLunchSpecial:    "Lunch special",
	ReasonFastestOption:   "Fastest option",
}

// Label returns the display label for the reason tag.
func (re Reason) Label() string {
	return reasonLabels[re]
}

// Ranked wraps a restaurant with its final score, recommendation reasons,
// a short explanation, and the record's trust label. Instances are created
// fresh on every ranking call and owned by the caller once returned.
type Ranked struct {
	Restaurant  Restaurant `json:"restaurant"`
	Score       float64    `json:"score"`
	Reasons     []Reason   `json:"reasons,omitempty"`
	Explanation string     `json:"explanation"`
	TrustLabel  string     `json:"trust_label,omitempty"`
}
