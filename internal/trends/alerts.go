package trends

import (
	"fmt"

	"github.com/spacesedan/reviewpulse/internal/models"
)

// AlertConditions runs rule checks over the finished overview and trend
// series and returns the conditions worth surfacing to an operator.
func (e *Engine) AlertConditions(overview models.Overview, series *models.TrendSeries) []models.Alert {
	alerts := []models.Alert{}

	avg := overview.AvgSentiment
	switch {
	case avg < 0:
		alerts = append(alerts, models.Alert{
			Severity: models.AlertCritical,
			Metric:   "avg_sentiment",
			Message:  fmt.Sprintf("Overall sentiment is negative (%.2f)", avg),
			Value:    avg,
		})
	case avg < 0.2:
		alerts = append(alerts, models.Alert{
			Severity: models.AlertWarning,
			Metric:   "avg_sentiment",
			Message:  fmt.Sprintf("Overall sentiment is below healthy threshold (%.2f)", avg),
			Value:    avg,
		})
	}

	switch negPct := overview.NegativePct; {
	case negPct > 30:
		alerts = append(alerts, models.Alert{
			Severity: models.AlertCritical,
			Metric:   "negative_percentage",
			Message:  fmt.Sprintf("High percentage of negative reviews (%.1f%%)", negPct),
			Value:    negPct,
		})
	case negPct > 20:
		alerts = append(alerts, models.Alert{
			Severity: models.AlertWarning,
			Metric:   "negative_percentage",
			Message:  fmt.Sprintf("Elevated negative review rate (%.1f%%)", negPct),
			Value:    negPct,
		})
	}

	if change, ok := recentChange(series); ok && change < -e.cfg.SentimentDropAlert {
		alerts = append(alerts, models.Alert{
			Severity: models.AlertWarning,
			Metric:   "recent_change",
			Message:  fmt.Sprintf("Significant sentiment drop in recent period (%.2f)", change),
			Value:    round3(change),
		})
	}

	return alerts
}

// recentChange is the difference between the last two non-empty periods.
func recentChange(series *models.TrendSeries) (float64, bool) {
	if series == nil {
		return 0, false
	}

	var last, prev *float64
	for i := len(series.Sentiment) - 1; i >= 0; i-- {
		if series.Sentiment[i] == nil {
			continue
		}
		if last == nil {
			last = series.Sentiment[i]
			continue
		}
		prev = series.Sentiment[i]
		break
	}
	if last == nil || prev == nil {
		return 0, false
	}
	return *last - *prev, true
}
