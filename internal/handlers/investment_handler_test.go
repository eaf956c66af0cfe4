package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"pennywise/internal/advisor"
	"pennywise/internal/services"
)

// --- mock advisor service ---

type mockAdvisorService struct {
	recommendationsFn func(ctx context.Context, savings float64) *advisor.RecommendationSet
	chatFn            func(ctx context.Context, message string) string
}

func (m *mockAdvisorService) Recommendations(ctx context.Context, savings float64) *advisor.RecommendationSet {
	if m.recommendationsFn != nil {
		return m.recommendationsFn(ctx, savings)
	}
	return advisor.FallbackRecommendations()
}

func (m *mockAdvisorService) Chat(ctx context.Context, message string) string {
	if m.chatFn != nil {
		return m.chatFn(ctx, message)
	}
	return advisor.FallbackChatReply
}

// verify interface compliance
var _ services.AdvisorServicer = (*mockAdvisorService)(nil)

func setupInvestmentRouter(handler *InvestmentHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/investments/recommendations", handler.Recommendations)
	auth.POST("/investments/chat", handler.Chat)
	return r
}

// --- tests ---

func TestInvestmentHandler_Recommendations(t *testing.T) {
	t.Run("returns 200 with risk buckets", func(t *testing.T) {
		var gotSavings float64
		advisorSvc := &mockAdvisorService{
			recommendationsFn: func(_ context.Context, savings float64) *advisor.RecommendationSet {
				gotSavings = savings
				return &advisor.RecommendationSet{
					LowRisk: []advisor.Option{{
						Title:          "Treasury Ladder",
						Description:    "Staggered short-term treasuries",
						ExpectedReturn: "4-5%",
						MinAmount:      100,
					}},
					ModerateRisk: []advisor.Option{{Title: "Index Fund"}},
					HighRisk:     []advisor.Option{{Title: "Growth Stocks"}},
				}
			},
		}
		handler := NewInvestmentHandler(advisorSvc)
		r := setupInvestmentRouter(handler)

		rec := doRequest(r, "POST", "/investments/recommendations", `{"savings":2500.50}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotSavings != 2500.50 {
			t.Errorf("expected savings 2500.50 passed to the service, got %v", gotSavings)
		}
		result := parseJSON(t, rec)
		low := result["lowRisk"].([]interface{})
		if len(low) != 1 {
			t.Fatalf("expected 1 low-risk option, got %d", len(low))
		}
		opt := low[0].(map[string]interface{})
		if opt["title"] != "Treasury Ladder" {
			t.Errorf("expected title Treasury Ladder, got %v", opt["title"])
		}
		if result["moderateRisk"] == nil || result["highRisk"] == nil {
			t.Error("expected moderateRisk and highRisk buckets in the response")
		}
	})

	t.Run("defaults savings to zero when omitted", func(t *testing.T) {
		var gotSavings float64 = -1
		advisorSvc := &mockAdvisorService{
			recommendationsFn: func(_ context.Context, savings float64) *advisor.RecommendationSet {
				gotSavings = savings
				return advisor.FallbackRecommendations()
			},
		}
		handler := NewInvestmentHandler(advisorSvc)
		r := setupInvestmentRouter(handler)

		rec := doRequest(r, "POST", "/investments/recommendations", `{}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotSavings != 0 {
			t.Errorf("expected savings 0, got %v", gotSavings)
		}
	})

	t.Run("returns 400 on negative savings", func(t *testing.T) {
		handler := NewInvestmentHandler(&mockAdvisorService{})
		r := setupInvestmentRouter(handler)

		rec := doRequest(r, "POST", "/investments/recommendations", `{"savings":-100}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 401 without authenticated user", func(t *testing.T) {
		handler := NewInvestmentHandler(&mockAdvisorService{})
		r := gin.New()
		r.POST("/investments/recommendations", handler.Recommendations)

		rec := doRequest(r, "POST", "/investments/recommendations", `{"savings":100}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestInvestmentHandler_Chat(t *testing.T) {
	t.Run("returns the assistant reply", func(t *testing.T) {
		advisorSvc := &mockAdvisorService{
			chatFn: func(_ context.Context, message string) string {
				if message != "Should I pay off debt first?" {
					t.Errorf("unexpected message passed to the service: %q", message)
				}
				return "Generally, pay down high-interest debt before investing."
			},
		}
		handler := NewInvestmentHandler(advisorSvc)
		r := setupInvestmentRouter(handler)

		rec := doRequest(r, "POST", "/investments/chat", `{"message":"Should I pay off debt first?"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["reply"] != "Generally, pay down high-interest debt before investing." {
			t.Errorf("unexpected reply: %v", result["reply"])
		}
	})

	t.Run("returns 400 on missing message", func(t *testing.T) {
		handler := NewInvestmentHandler(&mockAdvisorService{})
		r := setupInvestmentRouter(handler)

		rec := doRequest(r, "POST", "/investments/chat", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on oversized message", func(t *testing.T) {
		handler := NewInvestmentHandler(&mockAdvisorService{})
		r := setupInvestmentRouter(handler)

		long := make([]byte, 2100)
		for i := range long {
			long[i] = 'a'
		}
		rec := doRequest(r, "POST", "/investments/chat", `{"message":"`+string(long)+`"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
