package observability

import (
	"strconv"

	"github.com/Conceptual-Machines/hirepulse-api/internal/llm"
)

// Pricing constants
const (
	tokensPerKilo       = 1000.0
	costFormatPrecision = 6

	// Gemini 1.5 Flash pricing
	gemini15FlashInputPrice  = 0.000075
	gemini15FlashOutputPrice = 0.0003

	// Gemini 1.5 Pro pricing
	gemini15ProInputPrice  = 0.00125
	gemini15ProOutputPrice = 0.005

	defaultPricingModel = "gemini-1.5-pro"
)

// ModelPricing contains pricing information per 1K tokens
type ModelPricing struct {
	InputPricePer1K  float64 // Price per 1K input tokens in USD
	OutputPricePer1K float64 // Price per 1K output tokens in USD
}

// PricingTable contains pricing for all models
var PricingTable = map[string]ModelPricing{
	"gemini-1.5-flash": {
		InputPricePer1K:  gemini15FlashInputPrice,
		OutputPricePer1K: gemini15FlashOutputPrice,
	},
	"gemini-1.5-pro": {
		InputPricePer1K:  gemini15ProInputPrice,
		OutputPricePer1K: gemini15ProOutputPrice,
	},
}

// CalculateGeminiCost calculates the cost in USD for a Gemini call.
// Unknown models are priced as gemini-1.5-pro.
func CalculateGeminiCost(model string, usage llm.Usage) float64 {
	pricing, exists := PricingTable[model]
	if !exists {
		pricing = PricingTable[defaultPricingModel]
	}

	inputCost := (float64(usage.InputTokens) / tokensPerKilo) * pricing.InputPricePer1K
	outputCost := (float64(usage.OutputTokens) / tokensPerKilo) * pricing.OutputPricePer1K

	return inputCost + outputCost
}

// FormatCost formats a cost value as a USD string
func FormatCost(cost float64) string {
	return "$" + strconv.FormatFloat(cost, 'f', costFormatPrecision, 64)
}
