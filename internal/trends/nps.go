package trends

import (
	"math"

	"github.com/spacesedan/reviewpulse/internal/models"
)

// ComputeNPSProxy derives a Net-Promoter-style score from sentiment
// thresholds instead of survey responses. The result is rounded and
// always lands in [-100, 100]. An empty corpus yields all zeros.
func (e *Engine) ComputeNPSProxy(scored []models.ScoredReview) models.NPSMetrics {
	metrics := models.NPSMetrics{Total: len(scored)}
	if metrics.Total == 0 {
		return metrics
	}

	for _, r := range scored {
		switch {
		case r.Compound > e.cfg.PromoterThreshold:
			metrics.Promoters++
		case r.Compound < e.cfg.DetractorThreshold:
			metrics.Detractors++
		default:
			metrics.Passives++
		}
	}

	total := float64(metrics.Total)
	metrics.PromotersPct = round1(float64(metrics.Promoters) / total * 100)
	metrics.PassivesPct = round1(float64(metrics.Passives) / total * 100)
	metrics.DetractorsPct = round1(float64(metrics.Detractors) / total * 100)
	metrics.NPSProxy = math.Round(float64(metrics.Promoters-metrics.Detractors) / total * 100)

	return metrics
}
