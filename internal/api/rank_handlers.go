package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cheapeats/cheapeats/internal/filter"
	"github.com/cheapeats/cheapeats/internal/ranking"
	"github.com/cheapeats/cheapeats/internal/reasons"
	"github.com/cheapeats/cheapeats/internal/restaurant"
)

// Explanation strategy names accepted in rank requests.
const (
	ExplainSummary = "summary" // Canned-phrase summary from the scoring engine
	ExplainReasons = "reasons" // Structured reason tags plus tag-based sentence
)

// MaxRankCandidates bounds a single rank request.
const MaxRankCandidates = 500

// RankHandlers holds dependencies for ranking HTTP handlers.
type RankHandlers struct {
	table               *ranking.WeightTable
	metrics             *ranking.Metrics
	lunchWeightsEnabled bool
}

// NewRankHandlers creates a new RankHandlers instance. A nil table means
// default weights; a nil metrics instance disables ranking counters.
func NewRankHandlers(table *ranking.WeightTable, metrics *ranking.Metrics, lunchWeightsEnabled bool) *RankHandlers {
	return &RankHandlers{
		table:               table,
		metrics:             metrics,
		lunchWeightsEnabled: lunchWeightsEnabled,
	}
}

// RankRequest is the body of POST /v1/rank. Restaurants are validated
// records from the upstream fetch layer; filters and query describe the
// user's active constraints and search.
type RankRequest struct {
	Restaurants []restaurant.Restaurant `json:"restaurants"`
	Filters     restaurant.HardFilters  `json:"filters"`
	Query       string                  `json:"query,omitempty"`

	// ExcludeClosed defaults to true when omitted.
	ExcludeClosed *bool `json:"exclude_closed,omitempty"`

	// RequireCheap keeps only flexibly-cheap candidates before scoring.
	RequireCheap bool `json:"require_cheap,omitempty"`

	// Explain selects the explanation strategy: "summary" (default) or
	// "reasons".
	Explain string `json:"explain,omitempty"`

	// Sort overrides the composite-score ordering: "score" (default),
	// "price", "rating", or "walk". Attribute sorts place unknown values last.
	Sort string `json:"sort,omitempty"`
}

// RankResponse is the body returned by POST /v1/rank.
type RankResponse struct {
	Results []restaurant.Ranked `json:"results"`
	Count   int                 `json:"count"`
}

// Rank handles POST /v1/rank: apply hard filters, score and order the
// survivors, and decorate each result with an explanation. An empty input
// list returns an empty result with status 200 so clients can render
// "no restaurants match your filters" without special-casing.
func (h *RankHandlers) Rank(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, http.StatusMethodNotAllowed, ErrCodeBadRequest, "Method not allowed")
		return
	}

	var req RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid JSON body")
		return
	}

	if len(req.Restaurants) > MaxRankCandidates {
		WriteError(w, http.StatusBadRequest, ErrCodeValidation,
			fmt.Sprintf("Too many candidates: max %d per request", MaxRankCandidates))
		return
	}

	switch req.Explain {
	case "", ExplainSummary, ExplainReasons:
	default:
		WriteError(w, http.StatusBadRequest, ErrCodeValidation,
			`explain must be "summary" or "reasons"`)
		return
	}

	switch ranking.SortOption(req.Sort) {
	case "", ranking.SortByScore, ranking.SortByPrice, ranking.SortByRating, ranking.SortByWalk:
	default:
		WriteError(w, http.StatusBadRequest, ErrCodeValidation,
			`sort must be "score", "price", "rating", or "walk"`)
		return
	}

	for i := range req.Restaurants {
		if err := req.Restaurants[i].Validate(); err != nil {
			WriteError(w, http.StatusBadRequest, ErrCodeValidation,
				fmt.Sprintf("Restaurant %q: %v", req.Restaurants[i].ID, err))
			return
		}
	}

	opts := ranking.DefaultOptions()
	if req.ExcludeClosed != nil {
		opts.ExcludeClosed = *req.ExcludeClosed
	}
	opts.RequireCheap = req.RequireCheap
	opts.DisableLunchWeights = !h.lunchWeightsEnabled
	opts.Table = h.table
	opts.Metrics = h.metrics

	admitted := filter.Apply(req.Restaurants, req.Filters)
	ranked := ranking.Rank(admitted, opts)

	if req.Explain == ExplainReasons {
		for i := range ranked {
			ranked[i] = reasons.RankWithReasons(
				ranked[i].Restaurant, ranked[i].Score, req.Filters, req.Query)
		}
	}

	if opt := ranking.SortOption(req.Sort); opt != "" && opt != ranking.SortByScore {
		ranked = ranking.ReorderRanked(ranked, opt)
	}

	writeJSON(w, http.StatusOK, RankResponse{
		Results: ranked,
		Count:   len(ranked),
	})
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Headers are already written; nothing left to do but log.
		slog.Error("failed to write JSON response", "error", err)
	}
}
