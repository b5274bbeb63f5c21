package trends

import (
	"math"
	"sort"

	"github.com/spacesedan/reviewpulse/internal/models"
)

// ComputeDrivers estimates how strongly each aspect's presence moves
// overall sentiment: the gap between mean compound of reviews
// mentioning the aspect and those not mentioning it, scaled into
// [0,1]. Aspects below the configured mention floor are skipped.
func (e *Engine) ComputeDrivers(summaries []models.AspectSummary, tagged []models.ScoredReview) []models.KeyDriver {
	drivers := []models.KeyDriver{}

	for _, summary := range summaries {
		if summary.Mentions < e.cfg.MinDriverMentions {
			continue
		}

		drivers = append(drivers, models.KeyDriver{
			Aspect:       summary.AspectKey,
			AvgSentiment: summary.AvgSentiment,
			MentionCount: summary.Mentions,
			ImpactScore:  e.impactScore(summary.AspectKey, tagged),
		})
	}
	if len(drivers) == 0 {
		return drivers
	}

	split := e.cfg.ImpactSplit
	if split < 0 {
		split = medianImpact(drivers)
	}
	for i := range drivers {
		drivers[i].Priority = e.priority(drivers[i].ImpactScore >= split, drivers[i].AvgSentiment >= e.cfg.SentimentSplit)
	}

	sort.SliceStable(drivers, func(i, j int) bool {
		if drivers[i].ImpactScore != drivers[j].ImpactScore {
			return drivers[i].ImpactScore > drivers[j].ImpactScore
		}
		return drivers[i].Aspect < drivers[j].Aspect
	})
	return drivers
}

// impactScore compares reviews mentioning the aspect against the rest.
// The raw mean gap lives in [-2,2], so half its magnitude lands in [0,1].
// When every review mentions the aspect there is no contrast group and
// the impact is zero.
func (e *Engine) impactScore(aspectKey string, tagged []models.ScoredReview) float64 {
	var withSum, withoutSum float64
	withCount, withoutCount := 0, 0

	for _, r := range tagged {
		if _, ok := r.AspectSentiments[aspectKey]; ok {
			withSum += r.Compound
			withCount++
		} else {
			withoutSum += r.Compound
			withoutCount++
		}
	}
	if withCount == 0 || withoutCount == 0 {
		return 0
	}

	gap := withSum/float64(withCount) - withoutSum/float64(withoutCount)
	impact := math.Abs(gap) / 2
	if impact > 1 {
		impact = 1
	}
	return round3(impact)
}

func (e *Engine) priority(highImpact, highSentiment bool) string {
	switch {
	case highImpact && !highSentiment:
		return models.PriorityFixNow
	case highImpact && highSentiment:
		return models.PriorityMaintain
	case !highImpact && !highSentiment:
		return models.PriorityMonitor
	default:
		return models.PriorityDeprioritize
	}
}

func medianImpact(drivers []models.KeyDriver) float64 {
	impacts := make([]float64, len(drivers))
	for i, d := range drivers {
		impacts[i] = d.ImpactScore
	}
	sort.Float64s(impacts)

	mid := len(impacts) / 2
	if len(impacts)%2 == 1 {
		return impacts[mid]
	}
	return (impacts[mid-1] + impacts[mid]) / 2
}
