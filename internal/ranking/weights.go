package ranking

import (
	"github.com/cheapeats/cheapeats/internal/trust"
)

// Lunch window bounds, inclusive hours of day. Between 11:00 and 13:59 the
// lunch weight triple applies and transit proximity is weighted highest.
const (
	LunchStartHour = 11
	LunchEndHour   = 13
)

// FavoriteBoost is the multiplier applied to a favorite's composite score
// when the record is not closed and not clearly overpriced.
const FavoriteBoost = 1.15

// neutralComponent is the score assigned to a component whose underlying
// value is unknown. Unknowns land mid-scale rather than at either extreme.
const neutralComponent = 0.5

// transitDecayMinutes is the walk time at which the transit component
// reaches zero.
const transitDecayMinutes = 10.0

// walkingSpeedMetersPerMinute is the assumed average walking speed used to
// convert distances to walking minutes.
const walkingSpeedMetersPerMinute = 80.0

// Weights is a weight triple over the three score components.
type Weights struct {
	Value   float64 `json:"value"`   // Weight for price value (cheapness)
	Transit float64 `json:"transit"` // Weight for transit proximity
	Rating  float64 `json:"rating"`  // Weight for average rating
}

// WeightTable holds the base and lunch-hour weight triples.
type WeightTable struct {
	Base  Weights `json:"base"`  // Applied outside lunch hours
	Lunch Weights `json:"lunch"` // Applied during the lunch window
}

// DefaultWeightTable returns the default weight configuration.
//
// Base formula: composite = (value * 0.40) + (transit * 0.30) + (rating * 0.30)
// Lunch formula: composite = (value * 0.35) + (transit * 0.45) + (rating * 0.20)
//
// The lunch triple promotes transit proximity above everything else, on the
// theory that a lunch-hour diner cares most about getting there fast.
func DefaultWeightTable() *WeightTable {
	return &WeightTable{
		Base: Weights{
			Value:   0.40,
			Transit: 0.30,
			Rating:  0.30,
		},
		Lunch: Weights{
			Value:   0.35,
			Transit: 0.45,
			Rating:  0.20,
		},
	}
}

// For returns the weight triple to apply at the given hour of day.
func (t *WeightTable) For(hour int) Weights {
	if hour >= LunchStartHour && hour <= LunchEndHour {
		return t.Lunch
	}
	return t.Base
}

// ValueScore computes the price value component normalized to [0, 1].
// A known price scores linearly: free food is 1.0, a price at the limit or
// above is 0.0. An unknown price scores neutral.
func ValueScore(price *float64) float64 {
	if price == nil {
		return neutralComponent
	}
	return clamp((trust.PriceLimit - *price) / trust.PriceLimit)
}

// TransitScore computes the transit proximity component normalized to [0, 1].
// A known walk time decays linearly, reaching 0.0 at transitDecayMinutes.
// An unknown walk time scores neutral.
func TransitScore(walkMinutes *int) float64 {
	if walkMinutes == nil {
		return neutralComponent
	}
	return clamp(1.0 - float64(*walkMinutes)/transitDecayMinutes)
}

// RatingScore computes the rating component normalized to [0, 1] from a
// rating on the 0-5 scale.
func RatingScore(rating float64) float64 {
	return clamp(rating / 5.0)
}

// ScoreParams holds the component scores for a composite calculation.
type ScoreParams struct {
	Value   float64 // Price value score [0, 1]
	Transit float64 // Transit proximity score [0, 1]
	Rating  float64 // Rating score [0, 1]
}

// CompositeScore combines the component scores under the given weight triple.
func CompositeScore(params ScoreParams, w Weights) float64 {
	return params.Value*w.Value + params.Transit*w.Transit + params.Rating*w.Rating
}

// WalkingTimeMinutes converts a distance in meters to whole walking minutes
// at the assumed average walking speed, rounding down.
func WalkingTimeMinutes(distanceMeters float64) int {
	if distanceMeters <= 0 {
		return 0
	}
	return int(distanceMeters / walkingSpeedMetersPerMinute)
}

// clamp bounds a component score to the [0, 1] range.
func clamp(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
