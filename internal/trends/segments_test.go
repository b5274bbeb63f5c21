package trends

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/reviewpulse/config"
	"github.com/spacesedan/reviewpulse/internal/models"
)

func ratedReview(rating float64, compound float64, label string) models.ScoredReview {
	r := rating
	return models.ScoredReview{
		Review:   models.Review{Rating: &r},
		Compound: compound,
		Label:    label,
	}
}

func TestSegmentByRating(t *testing.T) {
	engine := NewEngine(config.Default().Trends)

	scored := []models.ScoredReview{
		ratedReview(5, 0.8, models.LabelPositive),
		ratedReview(5, 0.6, models.LabelPositive),
		ratedReview(1, -0.7, models.LabelNegative),
		{Review: models.Review{}, Compound: 0.2, Label: models.LabelPositive}, // unrated
	}

	segments := engine.SegmentByRating(scored)

	require.Len(t, segments, 2)
	assert.InDelta(t, 1.0, segments[0].Rating, 1e-9)
	assert.Equal(t, 1, segments[0].Count)
	assert.InDelta(t, -0.7, segments[0].AvgSentiment, 1e-9)
	assert.InDelta(t, 100.0, segments[0].NegativePct, 1e-9)

	assert.InDelta(t, 5.0, segments[1].Rating, 1e-9)
	assert.Equal(t, 2, segments[1].Count)
	assert.InDelta(t, 0.7, segments[1].AvgSentiment, 1e-9)
	assert.InDelta(t, 100.0, segments[1].PositivePct, 1e-9)
}

func TestSegmentByCategory(t *testing.T) {
	engine := NewEngine(config.Default().Trends)

	scored := []models.ScoredReview{
		{Review: models.Review{Category: "shoes"}, Compound: 0.9, Label: models.LabelPositive},
		{Review: models.Review{Category: "shoes"}, Compound: 0.5, Label: models.LabelPositive},
		{Review: models.Review{Category: "bags"}, Compound: -0.4, Label: models.LabelNegative},
		{Review: models.Review{}, Compound: 0.1, Label: models.LabelPositive}, // uncategorized
	}

	segments := engine.SegmentByCategory(scored)

	require.Len(t, segments, 2)
	assert.Equal(t, "shoes", segments[0].Category)
	assert.Equal(t, 2, segments[0].Count)
	assert.InDelta(t, 0.7, segments[0].AvgSentiment, 1e-9)
	assert.InDelta(t, 100.0, segments[0].PositivePct, 1e-9)

	assert.Equal(t, "bags", segments[1].Category)
	assert.InDelta(t, -0.4, segments[1].AvgSentiment, 1e-9)
}

func TestSegmentByCategoryTieBreaksAlphabetically(t *testing.T) {
	engine := NewEngine(config.Default().Trends)

	scored := []models.ScoredReview{
		{Review: models.Review{Category: "watches"}, Compound: 0.5},
		{Review: models.Review{Category: "belts"}, Compound: 0.5},
	}

	segments := engine.SegmentByCategory(scored)
	require.Len(t, segments, 2)
	assert.Equal(t, "belts", segments[0].Category)
	assert.Equal(t, "watches", segments[1].Category)
}

func TestRatingCorrelation(t *testing.T) {
	engine := NewEngine(config.Default().Trends)

	scored := []models.ScoredReview{
		ratedReview(1, -0.8, models.LabelNegative),
		ratedReview(2, -0.4, models.LabelNegative),
		ratedReview(3, 0.0, models.LabelNeutral),
		ratedReview(4, 0.4, models.LabelPositive),
		ratedReview(5, 0.8, models.LabelPositive),
	}

	corr := engine.RatingCorrelation(scored)
	require.NotNil(t, corr)
	assert.InDelta(t, 1.0, *corr, 1e-9)
}

func TestRatingCorrelationTooFewPairs(t *testing.T) {
	engine := NewEngine(config.Default().Trends)

	assert.Nil(t, engine.RatingCorrelation(nil))
	assert.Nil(t, engine.RatingCorrelation([]models.ScoredReview{
		ratedReview(5, 0.8, models.LabelPositive),
	}))
}

func TestRatingCorrelationNoVariance(t *testing.T) {
	engine := NewEngine(config.Default().Trends)

	scored := []models.ScoredReview{
		ratedReview(5, 0.8, models.LabelPositive),
		ratedReview(5, 0.2, models.LabelPositive),
	}
	assert.Nil(t, engine.RatingCorrelation(scored))
}
