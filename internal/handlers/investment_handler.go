package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/services"
)

// InvestmentHandler handles investment suggestion and chat requests.
type InvestmentHandler struct {
	advisorService services.AdvisorServicer
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(advisorService services.AdvisorServicer) *InvestmentHandler {
	return &InvestmentHandler{advisorService: advisorService}
}

// RecommendationsRequest represents the request payload for investment
// recommendations.
type RecommendationsRequest struct {
	Savings float64 `json:"savings" binding:"min=0"`
}

// ChatRequest represents the request payload for the chat assistant.
type ChatRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

// ChatResponse represents the chat assistant's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Recommendations handles generating investment recommendations.
// Upstream failures are absorbed into the static fallback set, so this
// endpoint always responds 200 with a well-shaped payload.
// @Summary     Investment recommendations
// @Description Get risk-bucketed investment recommendations for a savings amount
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       request body RecommendationsRequest true "Savings amount"
// @Success     200 {object} advisor.RecommendationSet "Recommendations (live or fallback)"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /investments/recommendations [post]
func (h *InvestmentHandler) Recommendations(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	var req RecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	set := h.advisorService.Recommendations(c.Request.Context(), req.Savings)
	c.JSON(http.StatusOK, set)
}

// Chat handles a free-text question to the assistant. Like recommendations,
// it always responds 200 with either a live or a fallback reply.
// @Summary     Chat with the investment assistant
// @Description Ask the assistant a free-text personal-finance question
// @Tags        investments
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       request body ChatRequest true "Question"
// @Success     200 {object} ChatResponse "Assistant reply (live or fallback)"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /investments/chat [post]
func (h *InvestmentHandler) Chat(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	reply := h.advisorService.Chat(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
