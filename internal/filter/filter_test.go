package filter

import (
	"reflect"
	"testing"

	"github.com/cheapeats/cheapeats/internal/restaurant"
	"github.com/cheapeats/cheapeats/internal/trust"
)

func boolPtr(v bool) *bool        { return &v }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestAdmitRequireOpen(t *testing.T) {
	f := restaurant.HardFilters{RequireOpen: true}

	tests := []struct {
		name      string
		isOpenNow *bool
		want      bool
	}{
		{"known open is admitted", boolPtr(true), true},
		{"known closed is rejected", boolPtr(false), false},
		{"unknown status is rejected", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := restaurant.Restaurant{ID: "r1", IsOpenNow: tt.isOpenNow}
			if _, ok := Admit(r, f); ok != tt.want {
				t.Errorf("Admit() = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestAdmitRequireVerifiedCheap(t *testing.T) {
	f := restaurant.HardFilters{RequireVerifiedCheap: true}

	tests := []struct {
		name   string
		price  *float64
		source trust.PriceSource
		want   bool
	}{
		{"verified cheap is admitted", floatPtr(12.0), trust.SourceVerified, true},
		{"verified at limit is rejected", floatPtr(15.0), trust.SourceVerified, false},
		{"estimated cheap is rejected", floatPtr(9.0), trust.SourceEstimated, false},
		{"unknown source is rejected", floatPtr(9.0), trust.SourceUnknown, false},
		{"missing price is rejected", nil, trust.SourceVerified, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := restaurant.Restaurant{ID: "r1", AvgPrice: tt.price, PriceSource: tt.source}
			if _, ok := Admit(r, f); ok != tt.want {
				t.Errorf("Admit() = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestAdmitRequireNearTransit(t *testing.T) {
	f := restaurant.HardFilters{RequireNearTransit: true}

	r := restaurant.Restaurant{ID: "r1", NearTransit: false}
	if _, ok := Admit(r, f); ok {
		t.Error("record with near_transit=false must be rejected")
	}

	r.NearTransit = true
	if _, ok := Admit(r, f); !ok {
		t.Error("record with near_transit=true must be admitted")
	}
}

func TestAdmitMaxWalkMinutes(t *testing.T) {
	f := restaurant.HardFilters{MaxWalkMinutes: intPtr(10)}

	tests := []struct {
		name        string
		walkMinutes *int
		want        bool
	}{
		{"under the bound", intPtr(5), true},
		{"at the bound", intPtr(10), true},
		{"over the bound", intPtr(11), false},
		{"missing walk time is effectively infinite", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := restaurant.Restaurant{ID: "r1", NearTransit: true, WalkMinutes: tt.walkMinutes}
			if _, ok := Admit(r, f); ok != tt.want {
				t.Errorf("Admit() = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestAdmitCombinesWithAND(t *testing.T) {
	f := restaurant.HardFilters{
		RequireOpen:        true,
		RequireNearTransit: true,
		MaxWalkMinutes:     intPtr(8),
	}

	// Satisfies everything.
	r := restaurant.Restaurant{
		ID:          "r1",
		IsOpenNow:   boolPtr(true),
		NearTransit: true,
		WalkMinutes: intPtr(4),
	}
	if _, ok := Admit(r, f); !ok {
		t.Error("record satisfying all constraints must be admitted")
	}

	// Fails exactly one constraint.
	r.WalkMinutes = intPtr(9)
	if _, ok := Admit(r, f); ok {
		t.Error("failing any single active constraint must reject the record")
	}
}

func TestAdmitZeroValueFiltersAdmitEverything(t *testing.T) {
	r := restaurant.Restaurant{ID: "r1"} // closed-ish, unpriced, far from transit
	if _, ok := Admit(r, restaurant.HardFilters{}); !ok {
		t.Error("zero-value filters must admit any record")
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	list := []restaurant.Restaurant{
		{ID: "a", IsOpenNow: boolPtr(true)},
		{ID: "b", IsOpenNow: boolPtr(false)},
		{ID: "c", IsOpenNow: boolPtr(true)},
		{ID: "d"},
		{ID: "e", IsOpenNow: boolPtr(true)},
	}

	got := Apply(list, restaurant.HardFilters{RequireOpen: true})

	wantIDs := []string{"a", "c", "e"}
	gotIDs := make([]string, 0, len(got))
	for _, r := range got {
		gotIDs = append(gotIDs, r.ID)
	}
	if !reflect.DeepEqual(gotIDs, wantIDs) {
		t.Errorf("Apply() order = %v, want %v", gotIDs, wantIDs)
	}
}

func TestApplyIdempotent(t *testing.T) {
	f := restaurant.HardFilters{
		RequireOpen:    true,
		MaxWalkMinutes: intPtr(6),
	}
	list := []restaurant.Restaurant{
		{ID: "a", IsOpenNow: boolPtr(true), WalkMinutes: intPtr(3)},
		{ID: "b", IsOpenNow: boolPtr(true)},
		{ID: "c", IsOpenNow: nil, WalkMinutes: intPtr(2)},
		{ID: "d", IsOpenNow: boolPtr(true), WalkMinutes: intPtr(6)},
	}

	once := Apply(list, f)
	twice := Apply(once, f)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Apply is not idempotent: first %v, second %v", once, twice)
	}
}

func TestApplyEmptyInput(t *testing.T) {
	got := Apply(nil, restaurant.HardFilters{RequireOpen: true})
	if got == nil {
		t.Fatal("Apply(nil) must return an empty slice, not nil")
	}
	if len(got) != 0 {
		t.Errorf("Apply(nil) returned %d records, want 0", len(got))
	}
}
