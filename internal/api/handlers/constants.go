package handlers

const (
	// Fixed client-facing messages; internal error detail is never returned
	msgMissingFields    = "Missing required fields."
	msgGenerationFailed = "Generation failed."
	msgMethodNotAllowed = "Method Not Allowed"

	livenessMessage = "HirePulse Backend is running."
)
