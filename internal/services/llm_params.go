package services

// Mode selects between the two preset model/token configurations
type Mode string

const (
	// ModeStandard selects the cheaper, faster model
	ModeStandard Mode = "standard"
)

// Model identifiers and token caps per mode
const (
	StandardModel           = "gemini-1.5-flash"
	StandardMaxOutputTokens = 2500

	PremiumModel           = "gemini-1.5-pro"
	PremiumMaxOutputTokens = 5000

	// Temperature is the same for every mode
	Temperature float32 = 0.7
)

// LLMParameters contains the configuration for a generation call
type LLMParameters struct {
	Model           string
	MaxOutputTokens int32
	Temperature     float32
}

// GetLLMParameters returns the parameters for the requested mode.
// Only the exact value "standard" selects the cheaper model; anything else,
// including an empty mode, gets the higher-capability one.
func GetLLMParameters(mode string) LLMParameters {
	switch Mode(mode) {
	case ModeStandard:
		return LLMParameters{
			Model:           StandardModel,
			MaxOutputTokens: StandardMaxOutputTokens,
			Temperature:     Temperature,
		}
	default:
		return LLMParameters{
			Model:           PremiumModel,
			MaxOutputTokens: PremiumMaxOutputTokens,
			Temperature:     Temperature,
		}
	}
}
