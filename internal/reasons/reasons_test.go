package reasons

import (
	"reflect"
	"testing"

	"github.com/cheapeats/cheapeats/internal/restaurant"
	"github.com/cheapeats/cheapeats/internal/trust"
)

func boolPtr(v bool) *bool        { return &v }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestGenerateFixedPriorityOrder(t *testing.T) {
	r := restaurant.Restaurant{
		Name:        "Pho Palace",
		Cuisine:     "Vietnamese",
		AvgPrice:    floatPtr(11.0),
		PriceSource: trust.SourceVerified,
		Rating:      4.6,
		NearTransit: true,
		WalkMinutes: intPtr(3),
		IsOpenNow:   boolPtr(true),
	}

	got := Generate(r, restaurant.HardFilters{}, "")
	want := []restaurant.Reason{
		restaurant.ReasonOpenNow,
		restaurant.ReasonVerifiedCheap,
		restaurant.ReasonNearTransit,
		restaurant.ReasonHighRating,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Generate() = %v, want %v", got, want)
	}
}

func TestGenerateNeverExceedsMaxReasons(t *testing.T) {
	// Everything matches: open, verified cheap, near transit, rated, query
	// match, student discount. Only the first four survive.
	r := restaurant.Restaurant{
		Name:               "Pho Palace",
		Cuisine:            "Vietnamese",
		AvgPrice:           floatPtr(11.0),
		PriceSource:        trust.SourceVerified,
		Rating:             4.8,
		NearTransit:        true,
		WalkMinutes:        intPtr(2),
		IsOpenNow:          boolPtr(true),
		HasStudentDiscount: true,
	}

	got := Generate(r, restaurant.HardFilters{}, "pho")
	if len(got) > MaxReasons {
		t.Fatalf("Generate() returned %d tags, cap is %d", len(got), MaxReasons)
	}
	// Truncation keeps evaluation order: the later-priority query-match and
	// student-discount tags are the ones cut.
	want := []restaurant.Reason{
		restaurant.ReasonOpenNow,
		restaurant.ReasonVerifiedCheap,
		restaurant.ReasonNearTransit,
		restaurant.ReasonHighRating,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Generate() = %v, want %v", got, want)
	}
}

func TestGeneratePriceTagsMutuallyExclusive(t *testing.T) {
	tests := []struct {
		name   string
		source trust.PriceSource
		want   []restaurant.Reason
	}{
		{
			name:   "verified price gets the verified tag",
			source: trust.SourceVerified,
			want:   []restaurant.Reason{restaurant.ReasonVerifiedCheap},
		},
		{
			name:   "estimated price gets the estimated tag",
			source: trust.SourceEstimated,
			want:   []restaurant.Reason{restaurant.ReasonEstimatedCheap},
		},
		{
			name:   "user-reported price gets neither",
			source: trust.SourceUserReported,
			want:   nil,
		},
		{
			name:   "unknown source gets neither",
			source: trust.SourceUnknown,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := restaurant.Restaurant{
				AvgPrice:    floatPtr(10.0),
				PriceSource: tt.source,
			}
			got := Generate(r, restaurant.HardFilters{}, "")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Generate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateNearTransitBound(t *testing.T) {
	tests := []struct {
		name        string
		nearTransit bool
		walkMinutes *int
		want        bool
	}{
		{"within five minutes", true, intPtr(5), true},
		{"over five minutes", true, intPtr(6), false},
		{"unknown walk time never tags", true, nil, false},
		{"not near transit never tags", false, intPtr(2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := restaurant.Restaurant{
				NearTransit: tt.nearTransit,
				WalkMinutes: tt.walkMinutes,
			}
			got := Generate(r, restaurant.HardFilters{}, "")
			has := false
			for _, tag := range got {
				if tag == restaurant.ReasonNearTransit {
					has = true
				}
			}
			if has != tt.want {
				t.Errorf("near-transit tag present = %v, want %v", has, tt.want)
			}
		})
	}
}

func TestGenerateQueryMatch(t *testing.T) {
	r := restaurant.Restaurant{Name: "Banh Mi Boys", Cuisine: "Vietnamese"}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"matches name case-insensitively", "banh mi", true},
		{"matches cuisine case-insensitively", "VIETNAMESE", true},
		{"no match", "ramen", false},
		{"blank query never matches", "   ", false},
		{"empty query never matches", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(r, restaurant.HardFilters{}, tt.query)
			has := false
			for _, tag := range got {
				if tag == restaurant.ReasonQueryMatch {
					has = true
				}
			}
			if has != tt.want {
				t.Errorf("query-match tag present = %v, want %v", has, tt.want)
			}
		})
	}
}

func TestGenerateStudentDiscount(t *testing.T) {
	r := restaurant.Restaurant{HasStudentDiscount: true}
	got := Generate(r, restaurant.HardFilters{}, "")
	if !reflect.DeepEqual(got, []restaurant.Reason{restaurant.ReasonStudentDiscount}) {
		t.Errorf("Generate() = %v, want the student-discount tag alone", got)
	}
}

func TestExplanation(t *testing.T) {
	tests := []struct {
		name string
		tags []restaurant.Reason
		want string
	}{
		{
			name: "empty tags yield the fallback",
			tags: nil,
			want: "Nearby option",
		},
		{
			name: "single tag",
			tags: []restaurant.Reason{restaurant.ReasonOpenNow},
			want: "Open now",
		},
		{
			name: "two tags joined and capitalized once",
			tags: []restaurant.Reason{restaurant.ReasonVerifiedCheap, restaurant.ReasonNearTransit},
			want: "Verified cheap, steps from transit",
		},
		{
			name: "only the first two tags are rendered",
			tags: []restaurant.Reason{
				restaurant.ReasonOpenNow,
				restaurant.ReasonHighRating,
				restaurant.ReasonVerifiedCheap,
			},
			want: "Open now, highly rated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Explanation(tt.tags); got != tt.want {
				t.Errorf("Explanation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRankWithReasons(t *testing.T) {
	r := restaurant.Restaurant{
		ID:          "r1",
		Name:        "Pho Palace",
		AvgPrice:    floatPtr(11.0),
		PriceSource: trust.SourceVerified,
		IsOpenNow:   boolPtr(true),
		Freshness:   trust.FreshnessVerified,
	}

	ranked := RankWithReasons(r, 0.72, restaurant.HardFilters{}, "")

	if ranked.Restaurant.ID != "r1" {
		t.Errorf("restaurant ID = %q, want %q", ranked.Restaurant.ID, "r1")
	}
	if ranked.Score != 0.72 {
		t.Errorf("score = %f, want 0.72", ranked.Score)
	}
	want := []restaurant.Reason{restaurant.ReasonOpenNow, restaurant.ReasonVerifiedCheap}
	if !reflect.DeepEqual(ranked.Reasons, want) {
		t.Errorf("reasons = %v, want %v", ranked.Reasons, want)
	}
	if ranked.Explanation != "Open now, verified cheap" {
		t.Errorf("explanation = %q, want %q", ranked.Explanation, "Open now, verified cheap")
	}
	if ranked.TrustLabel != "Verified" {
		t.Errorf("trust label = %q, want %q", ranked.TrustLabel, "Verified")
	}
}
