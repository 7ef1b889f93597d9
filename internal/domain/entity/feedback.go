package entity

import (
	"errors"
	"fmt"
)

// Raw label values emitted by the sentiment model
const (
	RawLabelPositive = "POSITIVE"
	RawLabelNegative = "NEGATIVE"
)

// Label represents the normalized sentiment label
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNegative Label = "Negative"
)

// Error definitions for classifier contract violations
var (
	ErrUnrecognizedLabel = errors.New("unrecognized sentiment label")
	ErrInvalidScore      = errors.New("confidence score out of range")
)

// ParseLabel maps the model's raw label onto the normalized enum.
// The mapping is total over exactly the two raw values; anything else
// is a contract violation by the model and returns ErrUnrecognizedLabel.
func ParseLabel(raw string) (Label, error) {
	switch raw {
	case RawLabelPositive:
		return LabelPositive, nil
	case RawLabelNegative:
		return LabelNegative, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedLabel, raw)
	}
}

// ValidateRawLabel checks that raw is one of the two expected model labels
func ValidateRawLabel(raw string) error {
	_, err := ParseLabel(raw)
	return err
}

// ValidateScore checks that the confidence is within [0, 1] inclusive
func ValidateScore(score float64) error {
	if score < 0 || score > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidScore, score)
	}
	return nil
}

// FeedbackRecord is one unit of customer feedback plus its derived
// sentiment label and confidence
type FeedbackRecord struct {
	Text  string  `json:"text"`
	Label Label   `json:"label"`
	Score float64 `json:"score"`
}

// NewFeedbackRecord builds a validated record from the model's raw output
func NewFeedbackRecord(text, rawLabel string, score float64) (*FeedbackRecord, error) {
	label, err := ParseLabel(rawLabel)
	if err != nil {
		return nil, err
	}
	if err := ValidateScore(score); err != nil {
		return nil, err
	}
	return &FeedbackRecord{
		Text:  text,
		Label: label,
		Score: score,
	}, nil
}

// FeedbackTable is an ordered sequence of feedback records.
// Row i of the table corresponds to row i of the input it was built from.
type FeedbackTable []FeedbackRecord

// Texts returns the original input texts in table order
func (t FeedbackTable) Texts() []string {
	texts := make([]string, len(t))
	for i, r := range t {
		texts[i] = r.Text
	}
	return texts
}

// CountByLabel returns the number of records per normalized label
func (t FeedbackTable) CountByLabel() map[Label]int {
	counts := make(map[Label]int)
	for _, r := range t {
		counts[r.Label]++
	}
	return counts
}
