package models

import "time"

// Sentiment labels assigned by the scorer.
const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)

// Review is a single normalized customer review as handed over by the
// ingestion layer. Immutable once ingested.
type Review struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Rating    *float64   `json:"rating,omitempty"`
	Category  string     `json:"category,omitempty"`
}

// ScoredReview is a Review plus its VADER-derived sentiment scores.
// AspectSentiments is filled by the aspect attributor and maps aspect
// keys to the review-level compound attributed to that aspect.
// Downstream stages treat ScoredReview as read-only.
type ScoredReview struct {
	Review
	Compound         float64            `json:"compound"`
	Positive         float64            `json:"positive"`
	Negative         float64            `json:"negative"`
	Neutral          float64            `json:"neutral"`
	Label            string             `json:"label"`
	AspectSentiments map[string]float64 `json:"aspect_sentiments,omitempty"`
}
