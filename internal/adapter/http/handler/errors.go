package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atasolouki/DX-Solutions-sentiment-analysis/internal/domain/entity"
	"github.com/atasolouki/DX-Solutions-sentiment-analysis/internal/usecase"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// MapAnalyzeError maps analysis errors to HTTP error responses.
// Contract violations by the sentiment model surface as bad-gateway
// responses rather than being coerced into a success.
func MapAnalyzeError(err error) ErrorResponse {
	switch {
	case errors.Is(err, usecase.ErrMissingText):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       "INVALID_REQUEST",
			Message:    "text field is required",
		}
	case errors.Is(err, entity.ErrUnrecognizedLabel):
		return ErrorResponse{
			StatusCode: http.StatusBadGateway,
			Code:       "CLASSIFIER_ERROR",
			Message:    "sentiment model returned an unrecognized label",
		}
	case errors.Is(err, entity.ErrInvalidScore):
		return ErrorResponse{
			StatusCode: http.StatusBadGateway,
			Code:       "CLASSIFIER_ERROR",
			Message:    "sentiment model returned an out-of-range score",
		}
	default:
		return ErrorResponse{
			StatusCode: http.StatusBadGateway,
			Code:       "CLASSIFIER_ERROR",
			Message:    "sentiment model unavailable",
		}
	}
}

// HandleAnalyzeError handles an analysis error by sending an appropriate
// HTTP response. It maps the error to an HTTP status and sends a JSON
// error response.
func HandleAnalyzeError(c *gin.Context, err error) {
	errResp := MapAnalyzeError(err)
	respondError(c, errResp.StatusCode, errResp.Code, errResp.Message)
}
