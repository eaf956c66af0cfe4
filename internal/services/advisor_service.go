package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"pennywise/internal/advisor"
	"pennywise/internal/logger"
)

// advisorService proxies investment suggestions through a text-completion
// service. All failures are absorbed: the upstream being down, slow, or
// incoherent is never the caller's problem.
type advisorService struct {
	completer advisor.TextCompleter
}

// NewAdvisorService creates a new AdvisorServicer. A nil completer is
// valid and means the generative service is unconfigured; every call then
// serves fallback content.
func NewAdvisorService(completer advisor.TextCompleter) AdvisorServicer {
	return &advisorService{completer: completer}
}

const recommendationPrompt = `Generate investment recommendations for $%.2f in savings.
Return ONLY a JSON object with NO markdown formatting or code blocks.
The object should have three arrays: lowRisk, moderateRisk, and highRisk.
Each investment option should have:
{
  "title": "investment name",
  "description": "brief description",
  "expectedReturn": "return range as string",
  "minAmount": number,
  "considerations": ["point 1", "point 2", "point 3"]
}
Each risk category should have 2-3 investment options.`

const chatPrompt = `You are a friendly personal-finance assistant inside a budgeting app.
Answer the user's question in 2-4 short sentences of plain text, no markdown.
Question: %s`

// Recommendations generates risk-bucketed investment suggestions for the
// given savings amount, falling back to the static set on any failure.
func (s *advisorService) Recommendations(ctx context.Context, savings float64) *advisor.RecommendationSet {
	if s.completer == nil {
		logger.Get().Info("generative service unconfigured, serving fallback recommendations")
		return advisor.FallbackRecommendations()
	}

	text, err := s.completer.Complete(ctx, fmt.Sprintf(recommendationPrompt, savings))
	if err != nil {
		logger.Get().Warnw("recommendation completion failed, serving fallback", "error", err)
		return advisor.FallbackRecommendations()
	}

	var set advisor.RecommendationSet
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &set); err != nil {
		logger.Get().Warnw("unparseable recommendation reply, serving fallback", "error", err)
		return advisor.FallbackRecommendations()
	}

	if !set.Valid() {
		logger.Get().Warn("recommendation reply missing a risk bucket, serving fallback")
		return advisor.FallbackRecommendations()
	}

	return &set
}

// Chat answers a free-text question, falling back to a static reply on any
// failure.
func (s *advisorService) Chat(ctx context.Context, message string) string {
	if s.completer == nil {
		return advisor.FallbackChatReply
	}

	text, err := s.completer.Complete(ctx, fmt.Sprintf(chatPrompt, message))
	if err != nil {
		logger.Get().Warnw("chat completion failed, serving fallback", "error", err)
		return advisor.FallbackChatReply
	}

	reply := strings.TrimSpace(text)
	if reply == "" {
		return advisor.FallbackChatReply
	}
	return reply
}

// stripCodeFences removes markdown code fences the model sometimes wraps
// around JSON despite being told not to.
func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
