package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/atasolouki/DX-Solutions-sentiment-analysis/internal/domain/entity"
	"github.com/atasolouki/DX-Solutions-sentiment-analysis/internal/domain/service"
)

// Error definitions for the analyze usecase
var (
	ErrMissingText = errors.New("missing text field")
)

// AnalyzeInput represents the input for single-text analysis
type AnalyzeInput struct {
	Text *string `json:"text"`
}

// AnalyzeOutput represents the single-text analysis result returned to API
// clients. Sentiment carries the model's raw label; the wire contract
// predates the normalized batch labels and existing clients depend on it.
type AnalyzeOutput struct {
	Feedback  string  `json:"feedback"`
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
}

// AnalyzeUsecase defines the interface for feedback sentiment analysis
type AnalyzeUsecase interface {
	// AnalyzeText classifies a single feedback text
	AnalyzeText(ctx context.Context, text string) (*AnalyzeOutput, error)

	// AnalyzeBatch classifies an ordered sequence of feedback texts
	AnalyzeBatch(ctx context.Context, texts []string) (entity.FeedbackTable, error)
}

type analyzeUsecase struct {
	classifier service.Classifier
}

// NewAnalyzeUsecase creates a new analyze usecase
func NewAnalyzeUsecase(classifier service.Classifier) AnalyzeUsecase {
	return &analyzeUsecase{classifier: classifier}
}

// AnalyzeText classifies one text and returns the echoed input, the model's
// raw label and the confidence. The raw label and score are still validated
// against the model contract before they reach the caller.
func (u *analyzeUsecase) AnalyzeText(ctx context.Context, text string) (*AnalyzeOutput, error) {
	result, err := u.classifier.Classify(ctx, text)
	if err != nil {
		return nil, err
	}

	if err := entity.ValidateRawLabel(result.Label); err != nil {
		return nil, err
	}
	if err := entity.ValidateScore(result.Score); err != nil {
		return nil, err
	}

	return &AnalyzeOutput{
		Feedback:  text,
		Sentiment: result.Label,
		Score:     result.Score,
	}, nil
}

// AnalyzeBatch classifies each text independently and in order. The output
// table has the same length and ordering as the input; row i corresponds to
// input i. The first failing row aborts the batch and no partial table is
// returned.
func (u *analyzeUsecase) AnalyzeBatch(ctx context.Context, texts []string) (entity.FeedbackTable, error) {
	table := make(entity.FeedbackTable, 0, len(texts))

	for i, text := range texts {
		result, err := u.classifier.Classify(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		record, err := entity.NewFeedbackRecord(text, result.Label, result.Score)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		table = append(table, *record)
	}

	return table, nil
}
