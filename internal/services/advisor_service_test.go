package services

import (
	"context"
	"errors"
	"testing"

	"pennywise/internal/advisor"
)

// stubCompleter returns a canned reply or error.
type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) Complete(_ context.Context, _ string) (string, error) {
	return s.reply, s.err
}

const validRecommendationJSON = `{
	"lowRisk": [{"title": "Bonds", "description": "d", "expectedReturn": "2-5%", "minAmount": 1000}],
	"moderateRisk": [{"title": "Index Funds", "description": "d", "expectedReturn": "7-10%", "minAmount": 1000}],
	"highRisk": [{"title": "Growth Stocks", "description": "d", "expectedReturn": "10-15%", "minAmount": 1000}]
}`

func TestRecommendations(t *testing.T) {
	ctx := context.Background()

	t.Run("parses a live reply", func(t *testing.T) {
		svc := NewAdvisorService(&stubCompleter{reply: validRecommendationJSON})

		set := svc.Recommendations(ctx, 5000)
		if set.LowRisk[0].Title != "Bonds" {
			t.Errorf("expected live content, got %+v", set.LowRisk)
		}
	})

	t.Run("strips markdown fences", func(t *testing.T) {
		svc := NewAdvisorService(&stubCompleter{reply: "```json\n" + validRecommendationJSON + "\n```"})

		set := svc.Recommendations(ctx, 5000)
		if set.LowRisk[0].Title != "Bonds" {
			t.Errorf("expected fenced JSON to parse, got %+v", set.LowRisk)
		}
	})

	t.Run("falls back on completion error", func(t *testing.T) {
		svc := NewAdvisorService(&stubCompleter{err: errors.New("connection refused")})

		set := svc.Recommendations(ctx, 5000)
		assertFallbackSet(t, set)
	})

	t.Run("falls back on unparseable reply", func(t *testing.T) {
		svc := NewAdvisorService(&stubCompleter{reply: "Sure! Here are some ideas: buy low, sell high."})

		set := svc.Recommendations(ctx, 5000)
		assertFallbackSet(t, set)
	})

	t.Run("falls back when a risk bucket is missing", func(t *testing.T) {
		svc := NewAdvisorService(&stubCompleter{reply: `{"lowRisk": [{"title": "Bonds"}]}`})

		set := svc.Recommendations(ctx, 5000)
		assertFallbackSet(t, set)
	})

	t.Run("falls back when unconfigured", func(t *testing.T) {
		svc := NewAdvisorService(nil)

		set := svc.Recommendations(ctx, 5000)
		assertFallbackSet(t, set)
	})
}

// assertFallbackSet checks the set is the well-shaped static fallback.
func assertFallbackSet(t *testing.T, set *advisor.RecommendationSet) {
	t.Helper()

	if set == nil {
		t.Fatal("expected a recommendation set, got nil")
	}
	if !set.Valid() {
		t.Fatalf("expected all risk buckets populated, got %+v", set)
	}
	want := advisor.FallbackRecommendations()
	if set.LowRisk[0].Title != want.LowRisk[0].Title {
		t.Errorf("expected fallback content, got %+v", set.LowRisk[0])
	}
}

func TestChat(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the live reply trimmed", func(t *testing.T) {
		svc := NewAdvisorService(&stubCompleter{reply: "  Save 20% of your income.  \n"})

		if got := svc.Chat(ctx, "how much should I save?"); got != "Save 20% of your income." {
			t.Errorf("unexpected reply %q", got)
		}
	})

	t.Run("falls back on error", func(t *testing.T) {
		svc := NewAdvisorService(&stubCompleter{err: errors.New("timeout")})

		if got := svc.Chat(ctx, "hello"); got != advisor.FallbackChatReply {
			t.Errorf("expected fallback reply, got %q", got)
		}
	})

	t.Run("falls back on empty reply", func(t *testing.T) {
		svc := NewAdvisorService(&stubCompleter{reply: "   "})

		if got := svc.Chat(ctx, "hello"); got != advisor.FallbackChatReply {
			t.Errorf("expected fallback reply, got %q", got)
		}
	})

	t.Run("falls back when unconfigured", func(t *testing.T) {
		svc := NewAdvisorService(nil)

		if got := svc.Chat(ctx, "hello"); got != advisor.FallbackChatReply {
			t.Errorf("expected fallback reply, got %q", got)
		}
	})
}
