// Package ranking scores, orders, and annotates restaurant candidates for
// cheap-eats discovery, with calibration support for deploy-time tuning.
//
// Basic Usage:
//
//	// Load calibration (typically at startup)
//	table, err := ranking.LoadCalibration("configs/ranking.calibration.json")
//	if err != nil {
//		slog.Warn("using default weights", "error", err)
//	}
//
//	// Rank candidates
//	opts := ranking.DefaultOptions()
//	opts.Table = table
//	ranked := ranking.Rank(candidates, opts)
//
// Scoring:
//
// Each candidate's composite score combines three [0, 1] components (price
// value, transit proximity, and rating) under a weight triple selected by
// hour of day. During lunch hours transit proximity is weighted highest.
// Favorites that are not closed and not clearly overpriced receive a bounded
// multiplicative boost. After sorting, a trust guard keeps an unverified
// record out of the #1 slot whenever a verified alternative exists.
//
// The wall clock is the only non-deterministic input; callers needing
// reproducible output inject a clock through Options.Now.
//
// Calibration:
//
// The calibration system allows deploy-time tuning of the weight tables via
// JSON configuration files loaded at startup. This enables A/B testing and
// optimization without code changes (but requires a redeploy or restart to
// pick up new configuration). See configs/ranking.calibration.json for the
// default configuration.
package ranking
