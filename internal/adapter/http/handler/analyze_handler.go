package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atasolouki/DX-Solutions-sentiment-analysis/internal/usecase"
)

// AnalyzeHandler handles sentiment analysis HTTP requests
type AnalyzeHandler struct {
	analyzeUC usecase.AnalyzeUsecase
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(analyzeUC usecase.AnalyzeUsecase) *AnalyzeHandler {
	return &AnalyzeHandler{analyzeUC: analyzeUC}
}

// Analyze handles POST /analyze.
//
// The success body is flat ({"feedback", "sentiment", "score"}) with the
// model's raw label, not the envelope used elsewhere. Existing clients
// depend on this exact shape.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var input usecase.AnalyzeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if input.Text == nil {
		HandleAnalyzeError(c, usecase.ErrMissingText)
		return
	}

	output, err := h.analyzeUC.AnalyzeText(c.Request.Context(), *input.Text)
	if err != nil {
		HandleAnalyzeError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}
