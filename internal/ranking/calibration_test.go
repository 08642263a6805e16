package ranking

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCalibrationEmptyPath(t *testing.T) {
	table, err := LoadCalibration("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *table != *DefaultWeightTable() {
		t.Errorf("empty path should yield defaults, got %+v", table)
	}
}

func TestLoadCalibrationMissingFile(t *testing.T) {
	table, err := LoadCalibration("/nonexistent/ranking.calibration.json")
	if err == nil {
		t.Error("expected an error for a missing file")
	}
	if table == nil || *table != *DefaultWeightTable() {
		t.Errorf("missing file should degrade to defaults, got %+v", table)
	}
}

func TestLoadCalibrationMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calibration.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	table, err := LoadCalibration(path)
	if err == nil {
		t.Error("expected an error for malformed JSON")
	}
	if table == nil || *table != *DefaultWeightTable() {
		t.Errorf("malformed file should degrade to defaults, got %+v", table)
	}
}

func TestLoadCalibrationPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calibration.json")
	content := `{
		"version": "1",
		"weights": {
			"base": {"value": 0.5},
			"lunch": {"transit": 0.6}
		}
	}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	table, err := LoadCalibration(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defaults := DefaultWeightTable()
	if table.Base.Value != 0.5 {
		t.Errorf("base.value = %f, want override 0.5", table.Base.Value)
	}
	if table.Base.Transit != defaults.Base.Transit {
		t.Errorf("base.transit = %f, want default %f", table.Base.Transit, defaults.Base.Transit)
	}
	if table.Lunch.Transit != 0.6 {
		t.Errorf("lunch.transit = %f, want override 0.6", table.Lunch.Transit)
	}
	if table.Lunch.Rating != defaults.Lunch.Rating {
		t.Errorf("lunch.rating = %f, want default %f", table.Lunch.Rating, defaults.Lunch.Rating)
	}
}

func TestMergeCalibration(t *testing.T) {
	tests := []struct {
		name     string
		base     *WeightTable
		override *WeightTable
		want     WeightTable
	}{
		{
			name:     "nil base falls back to defaults",
			base:     nil,
			override: nil,
			want:     *DefaultWeightTable(),
		},
		{
			name:     "nil override copies base",
			base:     &WeightTable{Base: Weights{Value: 0.9}},
			override: nil,
			want:     WeightTable{Base: Weights{Value: 0.9}},
		},
		{
			name:     "zero fields in override are ignored",
			base:     DefaultWeightTable(),
			override: &WeightTable{Base: Weights{Rating: 0.5}},
			want: WeightTable{
				Base:  Weights{Value: 0.40, Transit: 0.30, Rating: 0.5},
				Lunch: Weights{Value: 0.35, Transit: 0.45, Rating: 0.20},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeCalibration(tt.base, tt.override)
			if *got != tt.want {
				t.Errorf("MergeCalibration() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}
