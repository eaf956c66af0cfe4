package advisor

// FallbackChatReply is returned by the chat assistant whenever the
// generative service is unavailable or unconfigured.
const FallbackChatReply = "I'm having trouble reaching the investment assistant right now. " +
	"In the meantime: keep an emergency fund of 3-6 months of expenses, " +
	"and consider low-cost index funds for long-term savings."

// FallbackRecommendations returns the static recommendation set used when
// the generative service fails, is unconfigured, or returns unusable
// output. The UI always expects a well-shaped response, so this payload is
// part of the contract rather than an error path.
func FallbackRecommendations() *RecommendationSet {
	return &RecommendationSet{
		LowRisk: []Option{
			{
				Title:          "High-Yield Savings Account",
				Description:    "FDIC-insured savings account with competitive interest rates",
				ExpectedReturn: "3-4% annually",
				MinAmount:      100,
				Considerations: []string{
					"Highly liquid - easy access to funds",
					"FDIC insured up to $250,000",
					"Interest rates may vary with market conditions",
				},
			},
			{
				Title:          "Government Bonds",
				Description:    "Government-backed securities with fixed interest rates",
				ExpectedReturn: "2-5% annually",
				MinAmount:      1000,
				Considerations: []string{
					"Backed by full faith of US government",
					"Interest payments every 6 months",
					"Can be sold before maturity in secondary market",
				},
			},
		},
		ModerateRisk: []Option{
			{
				Title:          "Index Funds",
				Description:    "Diversified portfolio tracking major market indices",
				ExpectedReturn: "7-10% annually",
				MinAmount:      1000,
				Considerations: []string{
					"Broad market exposure",
					"Lower fees than active funds",
					"Long-term growth potential",
				},
			},
			{
				Title:          "Blue-Chip Dividend Stocks",
				Description:    "Stable companies with regular dividend payments",
				ExpectedReturn: "6-8% annually",
				MinAmount:      500,
				Considerations: []string{
					"Regular dividend income",
					"Potential for capital appreciation",
					"Individual stock market risk",
				},
			},
		},
		HighRisk: []Option{
			{
				Title:          "Growth Stocks",
				Description:    "Companies with high growth potential",
				ExpectedReturn: "10-15% or more annually",
				MinAmount:      1000,
				Considerations: []string{
					"Higher potential returns",
					"Greater volatility",
					"Requires market research",
				},
			},
			{
				Title:          "Emerging Market Funds",
				Description:    "Investments in developing economies",
				ExpectedReturn: "8-12% annually",
				MinAmount:      2000,
				Considerations: []string{
					"High growth potential",
					"Political and currency risks",
					"Market volatility",
				},
			},
		},
	}
}
