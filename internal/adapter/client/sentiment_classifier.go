package client

import (
	"context"

	"github.com/atasolouki/DX-Solutions-sentiment-analysis/internal/domain/service"
)

// SentimentClassifier adapts ModelClient to the Classifier interface
type SentimentClassifier struct {
	client *ModelClient
}

// NewSentimentClassifier creates a new SentimentClassifier
func NewSentimentClassifier(client *ModelClient) service.Classifier {
	return &SentimentClassifier{client: client}
}

// Classify classifies a single text. The raw label and score pass through
// unchanged; contract validation belongs to the consumer.
func (c *SentimentClassifier) Classify(ctx context.Context, text string) (*service.RawResult, error) {
	resp, err := c.client.Classify(ctx, text)
	if err != nil {
		return nil, err
	}

	return &service.RawResult{
		Label: resp.Label,
		Score: resp.Score,
	}, nil
}
