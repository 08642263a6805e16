package ranking

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// CalibrationConfig represents the JSON structure of the calibration file.
type CalibrationConfig struct {
	Version string      `json:"version"` // Config version for future compatibility
	Weights WeightTable `json:"weights"` // Weight table configuration
}

// LoadCalibration loads ranking weight tables from a JSON calibration file.
// If no path is given, returns the defaults. If the file can't be read or
// parsed, returns the defaults together with the error so callers degrade
// gracefully. Partial configurations are merged with defaults.
func LoadCalibration(filePath string) (*WeightTable, error) {
	if filePath == "" {
		return DefaultWeightTable(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		slog.Warn("failed to read calibration file, using defaults",
			"path", filePath,
			"error", err)
		return DefaultWeightTable(), fmt.Errorf("failed to read calibration file: %w", err)
	}

	var config CalibrationConfig
	if err := json.Unmarshal(data, &config); err != nil {
		slog.Warn("failed to parse calibration file, using defaults",
			"path", filePath,
			"error", err)
		return DefaultWeightTable(), fmt.Errorf("failed to parse calibration file: %w", err)
	}

	defaults := DefaultWeightTable()
	merged := MergeCalibration(defaults, &config.Weights)
	logCalibrationOverrides(defaults, merged)

	return merged, nil
}

// MergeCalibration merges override weights with base weights. Only non-zero
// values from the override are applied, allowing partial overrides in the
// calibration file.
func MergeCalibration(base *WeightTable, override *WeightTable) *WeightTable {
	if base == nil {
		return DefaultWeightTable()
	}
	if override == nil {
		result := *base
		return &result
	}

	result := *base

	if override.Base.Value != 0 {
		result.Base.Value = override.Base.Value
	}
	if override.Base.Transit != 0 {
		result.Base.Transit = override.Base.Transit
	}
	if override.Base.Rating != 0 {
		result.Base.Rating = override.Base.Rating
	}

	if override.Lunch.Value != 0 {
		result.Lunch.Value = override.Lunch.Value
	}
	if override.Lunch.Transit != 0 {
		result.Lunch.Transit = override.Lunch.Transit
	}
	if override.Lunch.Rating != 0 {
		result.Lunch.Rating = override.Lunch.Rating
	}

	return &result
}

// logCalibrationOverrides logs which weights were overridden from defaults.
func logCalibrationOverrides(defaults *WeightTable, loaded *WeightTable) {
	var overrides []string

	if loaded.Base.Value != defaults.Base.Value {
		overrides = append(overrides, fmt.Sprintf("base.value: %.2f -> %.2f",
			defaults.Base.Value, loaded.Base.Value))
	}
	if loaded.Base.Transit != defaults.Base.Transit {
		overrides = append(overrides, fmt.Sprintf("base.transit: %.2f -> %.2f",
			defaults.Base.Transit, loaded.Base.Transit))
	}
	if loaded.Base.Rating != defaults.Base.Rating {
		overrides = append(overrides, fmt.Sprintf("base.rating: %.2f -> %.2f",
			defaults.Base.Rating, loaded.Base.Rating))
	}

	if loaded.Lunch.Value != defaults.Lunch.Value {
		overrides = append(overrides, fmt.Sprintf("lunch.value: %.2f -> %.2f",
			defaults.Lunch.Value, loaded.Lunch.Value))
	}
	if loaded.Lunch.Transit != defaults.Lunch.Transit {
		overrides = append(overrides, fmt.Sprintf("lunch.transit: %.2f -> %.2f",
			defaults.Lunch.Transit, loaded.Lunch.Transit))
	}
	if loaded.Lunch.Rating != defaults.Lunch.Rating {
		overrides = append(overrides, fmt.Sprintf("lunch.rating: %.2f -> %.2f",
			defaults.Lunch.Rating, loaded.Lunch.Rating))
	}

	if len(overrides) > 0 {
		slog.Info("loaded ranking calibration with overrides",
			"overrides", overrides)
	} else {
		slog.Info("loaded ranking calibration (using all defaults)")
	}
}
