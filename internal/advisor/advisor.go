// Package advisor integrates the generative text-completion service that
// backs investment recommendations and the chat assistant. The upstream is
// treated as a black box behind TextCompleter; every consumer must fall
// back to static content when it fails.
package advisor

import "context"

// TextCompleter generates a text reply for a prompt. Implementations call
// an external generative service and should honor ctx cancellation.
type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Option is a single investment suggestion within a risk bucket.
type Option struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	ExpectedReturn string   `json:"expectedReturn"`
	MinAmount      float64  `json:"minAmount,omitempty"`
	Considerations []string `json:"considerations,omitempty"`
}

// RecommendationSet groups suggestions by risk level. All three buckets
// are always populated; a set with a missing bucket is malformed.
type RecommendationSet struct {
	LowRisk      []Option `json:"lowRisk"`
	ModerateRisk []Option `json:"moderateRisk"`
	HighRisk     []Option `json:"highRisk"`
}

// Valid reports whether all three risk buckets are present.
func (r *RecommendationSet) Valid() bool {
	return len(r.LowRisk) > 0 && len(r.ModerateRisk) > 0 && len(r.HighRisk) > 0
}
