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

func labeledAt(id string, day time.Time, compound float64, label string) models.ScoredReview {
	ts := day
	return models.ScoredReview{
		Review:   models.Review{ID: id, Text: "review " + id, Timestamp: &ts},
		Compound: compound,
		Label:    label,
	}
}

func TestComparePeriods(t *testing.T) {
	engine := NewEngine(config.Default().Trends)

	jan := func(day int) time.Time {
		return time.Date(2026, 1, day, 12, 0, 0, 0, time.UTC)
	}
	feb := func(day int) time.Time {
		return time.Date(2026, 2, day, 12, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name    string
		prevAvg float64
		curAvg  float64
		trend   string
	}{
		{name: "improving", prevAvg: 0.1, curAvg: 0.5, trend: models.TrendImproving},
		{name: "declining", prevAvg: 0.5, curAvg: 0.3, trend: models.TrendDeclining},
		{name: "stable", prevAvg: 0.5, curAvg: 0.52, trend: models.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scored := []models.ScoredReview{
				labeledAt("p1", jan(1), tt.prevAvg, models.LabelPositive),
				labeledAt("p2", jan(2), tt.prevAvg, models.LabelPositive),
				labeledAt("c1", feb(1), tt.curAvg, models.LabelPositive),
				labeledAt("c2", feb(2), tt.curAvg, models.LabelPositive),
			}

			cmp := engine.ComparePeriods(scored,
				jan(1), jan(31), feb(1), feb(28))

			require.NotNil(t, cmp)
			assert.Equal(t, 2, cmp.Previous.ReviewCount)
			assert.Equal(t, 2, cmp.Current.ReviewCount)
			assert.InDelta(t, tt.prevAvg, cmp.Previous.AvgSentiment, 1e-9)
			assert.InDelta(t, tt.curAvg, cmp.Current.AvgSentiment, 1e-9)
			assert.InDelta(t, tt.curAvg-tt.prevAvg, cmp.Changes.SentimentChange, 1e-3)
			assert.Equal(t, tt.trend, cmp.Changes.Trend)
		})
	}
}

func TestComparePeriodsChangePct(t *testing.T) {
	engine := NewEngine(config.Default().Trends)

	jan1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	feb1 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	scored := []models.ScoredReview{
		labeledAt("p", jan1, 0.1, models.LabelPositive),
		labeledAt("c", feb1, 0.5, models.LabelPositive),
	}

	cmp := engine.ComparePeriods(scored,
		jan1, jan1.AddDate(0, 0, 30), feb1, feb1.AddDate(0, 0, 27))

	require.NotNil(t, cmp)
	assert.InDelta(t, 0.4, cmp.Changes.SentimentChange, 1e-9)
	assert.InDelta(t, 400.0, cmp.Changes.SentimentChangePct, 1e-9)
	assert.InDelta(t, 0.0, cmp.Changes.PositivePctChange, 1e-9)
}

func TestComparePeriodsEmptyWindow(t *testing.T) {
	engine := NewEngine(config.Default().Trends)

	jan1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	scored := []models.ScoredReview{
		labeledAt("1", jan1, 0.5, models.LabelPositive),
	}

	cmp := engine.ComparePeriods(scored,
		jan1, jan1.AddDate(0, 0, 10),
		jan1.AddDate(0, 1, 0), jan1.AddDate(0, 1, 10))
	assert.Nil(t, cmp)
}

func TestCompareHalvesSplitsRangeAtMidpoint(t *testing.T) {
	engine := NewEngine(config.Default().Trends)

	scored := make([]models.ScoredReview, 0, 10)
	for i := 0; i < 10; i++ {
		day := time.Date(2026, 1, 1+i, 0, 0, 0, 0, time.UTC)
		compound, label := 0.6, models.LabelPositive
		if i < 5 {
			compound, label = -0.2, models.LabelNegative
		}
		scored = append(scored, labeledAt(fmt.Sprintf("%d", i), day, compound, label))
	}

	cmp := engine.CompareHalves(scored)

	require.NotNil(t, cmp)
	assert.Equal(t, 5, cmp.Previous.ReviewCount)
	assert.Equal(t, 5, cmp.Current.ReviewCount)
	assert.InDelta(t, -0.2, cmp.Previous.AvgSentiment, 1e-9)
	assert.InDelta(t, 0.6, cmp.Current.AvgSentiment, 1e-9)
	assert.Equal(t, models.TrendImproving, cmp.Changes.Trend)
	assert.InDelta(t, 100.0, cmp.Changes.PositivePctChange, 1e-9)
}

func TestCompareHalvesNeedsARange(t *testing.T) {
	engine := NewEngine(config.Default().Trends)

	assert.Nil(t, engine.CompareHalves(nil))
	assert.Nil(t, engine.CompareHalves([]models.ScoredReview{
		{Review: models.Review{ID: "1", Text: "no timestamp"}, Compound: 0.5},
	}))

	// a single instant has no halves to compare
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Nil(t, engine.CompareHalves([]models.ScoredReview{
		labeledAt("1", day, 0.5, models.LabelPositive),
		labeledAt("2", day, 0.3, models.LabelPositive),
	}))
}

func TestRecentTrendCoversConfiguredWindow(t *testing.T) {
	cfg := config.Default().Trends
	cfg.RecentWindow = 3
	engine := NewEngine(cfg)

	scored := make([]models.ScoredReview, 0, 6)
	for i := 0; i < 6; i++ {
		day := time.Date(2026, 1, 1+i, 0, 0, 0, 0, time.UTC)
		compound, label := 0.6, models.LabelPositive
		if i < 3 {
			compound, label = -0.5, models.LabelNegative
		}
		scored = append(scored, labeledAt(fmt.Sprintf("%d", i), day, compound, label))
	}

	trend := engine.RecentTrend(scored)

	require.NotNil(t, trend)
	assert.Equal(t, 3, trend.ReviewCount)
	assert.InDelta(t, 0.6, trend.AvgSentiment, 1e-9)
	assert.InDelta(t, 100.0, trend.PositivePct, 1e-9)
}

func TestRecentTrendNoTimestamps(t *testing.T) {
	engine := NewEngine(config.Default().Trends)

	assert.Nil(t, engine.RecentTrend(nil))
	assert.Nil(t, engine.RecentTrend([]models.ScoredReview{
		{Review: models.Review{ID: "1", Text: "no timestamp"}, Compound: 0.9},
	}))
}
