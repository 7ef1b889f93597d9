package service

import "context"

// RawResult is the untouched output of the sentiment model for one text:
// the raw two-valued label and the confidence in the chosen label.
type RawResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classifier defines the interface for the pre-trained sentiment model.
// Implementations are stateless per call and safe for concurrent use.
type Classifier interface {
	// Classify classifies a single text
	Classify(ctx context.Context, text string) (*RawResult, error)
}
