package trends

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/reviewpulse/config"
	"github.com/spacesedan/reviewpulse/internal/models"
)

func timestamped(id string, day time.Time, compound float64) models.ScoredReview {
	ts := day
	return models.ScoredReview{
		Review:   models.Review{ID: id, Text: "review " + id, Timestamp: &ts},
		Compound: compound,
	}
}

func TestComputeTrendsNoTimestamps(t *testing.T) {
	engine := NewEngine(config.Default().Trends)

	series, anomalies := engine.ComputeTrends([]models.ScoredReview{
		{Review: models.Review{ID: "1", Text: "no timestamp"}, Compound: 0.5},
	})
	assert.Nil(t, series)
	assert.Empty(t, anomalies)
}

func TestComputeTrendsDailyBucketsKeepGaps(t *testing.T) {
	engine := NewEngine(config.Default().Trends)

	day1 := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	day3 := time.Date(2026, 1, 3, 22, 30, 0, 0, time.UTC)

	series, _ := engine.ComputeTrends([]models.ScoredReview{
		timestamped("1", day1, 0.4),
		timestamped("2", day1, 0.6),
		timestamped("3", day3, -0.2),
	})

	require.NotNil(t, series)
	assert.Equal(t, []string{"2026-01-01", "2026-01-02", "2026-01-03"}, series.Periods)
	assert.Equal(t, []int{2, 0, 1}, series.Volume)

	require.Len(t, series.Sentiment, 3)
	require.NotNil(t, series.Sentiment[0])
	assert.InDelta(t, 0.5, *series.Sentiment[0], 1e-9)
	assert.Nil(t, series.Sentiment[1])
	require.NotNil(t, series.Sentiment[2])
	assert.InDelta(t, -0.2, *series.Sentiment[2], 1e-9)
}

func TestComputeTrendsWeeklyBucketsStartMonday(t *testing.T) {
	cfg := config.Default().Trends
	cfg.Granularity = "week"
	engine := NewEngine(cfg)

	// Wednesday Jan 7 falls in the week of Monday Jan 5; Tuesday
	// Jan 13 in the week of Monday Jan 12.
	series, _ := engine.ComputeTrends([]models.ScoredReview{
		timestamped("1", time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC), 0.3),
		timestamped("2", time.Date(2026, 1, 13, 12, 0, 0, 0, time.UTC), 0.1),
	})

	require.NotNil(t, series)
	assert.Equal(t, []string{"2026-01-05", "2026-01-12"}, series.Periods)
}

func TestComputeTrendsMonthlyLabels(t *testing.T) {
	cfg := config.Default().Trends
	cfg.Granularity = "month"
	engine := NewEngine(cfg)

	series, _ := engine.ComputeTrends([]models.ScoredReview{
		timestamped("1", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), 0.3),
		timestamped("2", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), 0.1),
	})

	require.NotNil(t, series)
	assert.Equal(t, []string{"2026-01", "2026-02", "2026-03"}, series.Periods)
	assert.Equal(t, []int{1, 0, 1}, series.Volume)
}

func TestMovingAverageTrailingWindow(t *testing.T) {
	engine := NewEngine(config.Default().Trends)

	v := func(f float64) *float64 { return &f }
	out := engine.movingAverage([]*float64{v(0.2), v(0.4), nil, v(0.6)})

	require.Len(t, out, 4)
	require.NotNil(t, out[0])
	assert.InDelta(t, 0.2, *out[0], 1e-9)
	require.NotNil(t, out[1])
	assert.InDelta(t, 0.3, *out[1], 1e-9)
	require.NotNil(t, out[2])
	assert.InDelta(t, 0.3, *out[2], 1e-9)
	require.NotNil(t, out[3])
	assert.InDelta(t, 0.5, *out[3], 1e-9)
}

func TestDetectAnomaliesConstantSeries(t *testing.T) {
	engine := NewEngine(config.Default().Trends)

	reviews := make([]models.ScoredReview, 0, 10)
	for i := 0; i < 10; i++ {
		day := time.Date(2026, 1, 1+i, 0, 0, 0, 0, time.UTC)
		reviews = append(reviews, timestamped(fmt.Sprintf("%d", i), day, 0.2))
	}

	_, anomalies := engine.ComputeTrends(reviews)
	assert.Empty(t, anomalies)
}

func TestDetectAnomaliesFlagsNegativeSpike(t *testing.T) {
	engine := NewEngine(config.Default().Trends)

	reviews := make([]models.ScoredReview, 0, 10)
	for i := 0; i < 10; i++ {
		day := time.Date(2026, 1, 1+i, 0, 0, 0, 0, time.UTC)
		compound := 0.5
		if i == 5 {
			compound = -0.9
		}
		reviews = append(reviews, timestamped(fmt.Sprintf("%d", i), day, compound))
	}

	_, anomalies := engine.ComputeTrends(reviews)

	require.Len(t, anomalies, 1)
	assert.Equal(t, "2026-01-06", anomalies[0].Period)
	assert.Equal(t, models.AnomalyNegativeSpike, anomalies[0].Type)
	assert.Less(t, anomalies[0].ZScore, -2.0)
}

func TestComputeTrendsSingleBucket(t *testing.T) {
	engine := NewEngine(config.Default().Trends)

	series, anomalies := engine.ComputeTrends([]models.ScoredReview{
		timestamped("1", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 0.9),
	})

	require.NotNil(t, series)
	assert.Equal(t, []string{"2026-01-01"}, series.Periods)
	assert.Empty(t, anomalies)
}

func TestComputeAspectTrends(t *testing.T) {
	engine := NewEngine(config.Default().Trends)

	tagAt := func(id string, day time.Time, aspects map[string]float64) models.ScoredReview {
		r := timestamped(id, day, 0)
		r.AspectSentiments = aspects
		return r
	}

	day1 := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)

	trends := engine.ComputeAspectTrends([]models.ScoredReview{
		tagAt("1", day1, map[string]float64{"shipping": -0.4}),
		tagAt("2", day1, map[string]float64{"shipping": -0.2, "value": 0.6}),
		tagAt("3", day2, map[string]float64{"shipping": 0.5}),
		tagAt("4", day2, nil),
		{Review: models.Review{ID: "5", Text: "no timestamp"}, AspectSentiments: map[string]float64{"value": 0.1}},
	})

	require.Len(t, trends, 3)
	assert.Equal(t, models.AspectTrend{Period: "2026-01-01", AspectKey: "shipping", AvgSentiment: -0.3, MentionCount: 2}, trends[0])
	assert.Equal(t, models.AspectTrend{Period: "2026-01-01", AspectKey: "value", AvgSentiment: 0.6, MentionCount: 1}, trends[1])
	assert.Equal(t, models.AspectTrend{Period: "2026-01-02", AspectKey: "shipping", AvgSentiment: 0.5, MentionCount: 1}, trends[2])
}

func TestComputeAspectTrendsEmpty(t *testing.T) {
	engine := NewEngine(config.Default().Trends)

	assert.Empty(t, engine.ComputeAspectTrends(nil))
}
