package handlers

import (
	"errors"
	"net/http"

	"github.com/Conceptual-Machines/hirepulse-api/internal/logger"
	"github.com/Conceptual-Machines/hirepulse-api/internal/services"
	"github.com/gin-gonic/gin"
)

type GenerateHandler struct {
	genService *services.GenerationService
}

func NewGenerateHandler(genService *services.GenerationService) *GenerateHandler {
	return &GenerateHandler{genService: genService}
}

// GenerateResponse is the success body; output is the provider text unchanged
type GenerateResponse struct {
	Output string `json:"output"`
}

// ErrorResponse is the failure body
type ErrorResponse struct {
	Error string `json:"error"`
}

// Generate handles job application generation
// POST /generate
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req services.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug("Generate: request body rejected", withError(logger.WithContext(c), err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgMissingFields})
		return
	}

	result, err := h.genService.Generate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgMissingFields})
			return
		}

		fields := logger.WithContext(c)
		fields["mode"] = req.Mode
		fields["model"] = services.GetLLMParameters(req.Mode).Model
		logger.Error("Generation failed", err, fields)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgGenerationFailed})
		return
	}

	logger.Info("Generation completed", logger.Fields{
		"request_id":    c.GetString("request_id"),
		"model":         result.Parameters.Model,
		"duration_ms":   result.Duration.Milliseconds(),
		"input_tokens":  result.Usage.InputTokens,
		"output_tokens": result.Usage.OutputTokens,
		"output_length": len(result.Output),
	})

	c.JSON(http.StatusOK, GenerateResponse{Output: result.Output})
}

// Function is the single-route platform entry point: POST only, any path
func (h *GenerateHandler) Function(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.String(http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}
	h.Generate(c)
}

func withError(fields logger.Fields, err error) logger.Fields {
	fields["error"] = err.Error()
	return fields
}
