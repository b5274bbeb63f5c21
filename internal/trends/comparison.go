package trends

import (
	"math"
	"sort"
	"time"

	"github.com/spacesedan/reviewpulse/internal/models"
)

// ComparePeriods summarizes sentiment movement between two inclusive
// time windows. Returns nil when either window holds no timestamped
// review; there is nothing meaningful to compare against.
func (e *Engine) ComparePeriods(scored []models.ScoredReview, prevStart, prevEnd, curStart, curEnd time.Time) *models.PeriodComparison {
	prev, okPrev := windowStats(scored, prevStart, prevEnd)
	cur, okCur := windowStats(scored, curStart, curEnd)
	if !okPrev || !okCur {
		return nil
	}

	change := cur.AvgSentiment - prev.AvgSentiment
	changePct := 0.0
	if prev.AvgSentiment != 0 {
		changePct = round1(change / math.Abs(prev.AvgSentiment) * 100)
	}

	trend := models.TrendStable
	switch {
	case change > e.cfg.TrendChangeThreshold:
		trend = models.TrendImproving
	case change < -e.cfg.TrendChangeThreshold:
		trend = models.TrendDeclining
	}

	return &models.PeriodComparison{
		Previous: prev,
		Current:  cur,
		Changes: models.PeriodChanges{
			SentimentChange:    round3(change),
			SentimentChangePct: changePct,
			PositivePctChange:  round1(cur.PositivePct - prev.PositivePct),
			Trend:              trend,
		},
	}
}

// CompareHalves splits the observed timestamp range at its midpoint and
// compares the later half against the earlier one. Nil when fewer than
// two distinct timestamps exist.
func (e *Engine) CompareHalves(scored []models.ScoredReview) *models.PeriodComparison {
	var first, last time.Time
	for _, r := range scored {
		if r.Timestamp == nil {
			continue
		}
		ts := r.Timestamp.UTC()
		if first.IsZero() || ts.Before(first) {
			first = ts
		}
		if last.IsZero() || ts.After(last) {
			last = ts
		}
	}
	if first.IsZero() || !first.Before(last) {
		return nil
	}

	mid := first.Add(last.Sub(first) / 2)
	return e.ComparePeriods(scored, first, mid, mid.Add(time.Nanosecond), last)
}

func windowStats(scored []models.ScoredReview, start, end time.Time) (models.PeriodWindow, bool) {
	var sum float64
	count, positive := 0, 0
	for _, r := range scored {
		if r.Timestamp == nil {
			continue
		}
		ts := r.Timestamp.UTC()
		if ts.Before(start) || ts.After(end) {
			continue
		}
		sum += r.Compound
		count++
		if r.Label == models.LabelPositive {
			positive++
		}
	}
	if count == 0 {
		return models.PeriodWindow{}, false
	}

	total := float64(count)
	return models.PeriodWindow{
		Start:        start.Format("2006-01-02"),
		End:          end.Format("2006-01-02"),
		ReviewCount:  count,
		AvgSentiment: round3(sum / total),
		PositivePct:  round1(float64(positive) / total * 100),
	}, true
}

// RecentTrend summarizes the most recent timestamped reviews, up to the
// configured window, for the executive summary. Nil when no review
// carries a timestamp.
func (e *Engine) RecentTrend(scored []models.ScoredReview) *models.RecentTrend {
	timestamped := make([]models.ScoredReview, 0, len(scored))
	for _, r := range scored {
		if r.Timestamp != nil {
			timestamped = append(timestamped, r)
		}
	}
	if len(timestamped) == 0 {
		return nil
	}

	sort.SliceStable(timestamped, func(i, j int) bool {
		if !timestamped[i].Timestamp.Equal(*timestamped[j].Timestamp) {
			return timestamped[i].Timestamp.Before(*timestamped[j].Timestamp)
		}
		return timestamped[i].ID < timestamped[j].ID
	})

	window := e.cfg.RecentWindow
	if window < 1 || window > len(timestamped) {
		window = len(timestamped)
	}
	recent := timestamped[len(timestamped)-window:]

	var sum float64
	positive := 0
	for _, r := range recent {
		sum += r.Compound
		if r.Label == models.LabelPositive {
			positive++
		}
	}

	total := float64(len(recent))
	return &models.RecentTrend{
		ReviewCount:  len(recent),
		AvgSentiment: round3(sum / total),
		PositivePct:  round1(float64(positive) / total * 100),
	}
}
