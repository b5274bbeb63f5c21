package sentiment

import (
	"math"
	"sort"

	"github.com/spacesedan/reviewpulse/internal/models"
)

// Distribution summarizes label counts and the average compound across
// a scored corpus. All three label keys are always present so the
// counts sum to the review count.
func Distribution(scored []models.ScoredReview) models.Overview {
	counts := map[string]int{
		models.LabelPositive: 0,
		models.LabelNeutral:  0,
		models.LabelNegative: 0,
	}

	var sum float64
	for _, r := range scored {
		counts[r.Label]++
		sum += r.Compound
	}

	overview := models.Overview{Counts: counts}
	if len(scored) == 0 {
		return overview
	}

	total := float64(len(scored))
	overview.AvgSentiment = round3(sum / total)
	overview.PositivePct = round1(float64(counts[models.LabelPositive]) / total * 100)
	overview.NegativePct = round1(float64(counts[models.LabelNegative]) / total * 100)
	overview.NeutralPct = round1(float64(counts[models.LabelNeutral]) / total * 100)
	return overview
}

// ExtremeReviews picks the strongest positive and negative reviews as
// illustrative samples for the report.
func ExtremeReviews(scored []models.ScoredReview, threshold float64, n int) models.SampleReviews {
	byCompound := make([]models.ScoredReview, len(scored))
	copy(byCompound, scored)
	sort.SliceStable(byCompound, func(i, j int) bool {
		if byCompound[i].Compound != byCompound[j].Compound {
			return byCompound[i].Compound > byCompound[j].Compound
		}
		return byCompound[i].ID < byCompound[j].ID
	})

	samples := models.SampleReviews{
		Positive: []models.SampleReview{},
		Negative: []models.SampleReview{},
	}

	for _, r := range byCompound {
		if r.Compound < threshold || len(samples.Positive) >= n {
			break
		}
		samples.Positive = append(samples.Positive, models.SampleReview{
			Text:  r.Text,
			Score: round3(r.Compound),
		})
	}

	for i := len(byCompound) - 1; i >= 0; i-- {
		r := byCompound[i]
		if r.Compound > -threshold || len(samples.Negative) >= n {
			break
		}
		samples.Negative = append(samples.Negative, models.SampleReview{
			Text:  r.Text,
			Score: round3(r.Compound),
		})
	}

	return samples
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
