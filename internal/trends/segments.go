package trends

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/spacesedan/reviewpulse/internal/models"
)

// SegmentByRating groups reviews carrying a rating by rating level,
// ascending. Reviews without a rating are left out.
func (e *Engine) SegmentByRating(scored []models.ScoredReview) []models.RatingSegment {
	type agg struct {
		sum      float64
		count    int
		positive int
		negative int
	}
	byRating := make(map[float64]*agg)

	for _, r := range scored {
		if r.Rating == nil {
			continue
		}
		a := byRating[*r.Rating]
		if a == nil {
			a = &agg{}
			byRating[*r.Rating] = a
		}
		a.sum += r.Compound
		a.count++
		switch r.Label {
		case models.LabelPositive:
			a.positive++
		case models.LabelNegative:
			a.negative++
		}
	}

	ratings := make([]float64, 0, len(byRating))
	for rating := range byRating {
		ratings = append(ratings, rating)
	}
	sort.Float64s(ratings)

	segments := make([]models.RatingSegment, 0, len(ratings))
	for _, rating := range ratings {
		a := byRating[rating]
		total := float64(a.count)
		segments = append(segments, models.RatingSegment{
			Rating:       rating,
			Count:        a.count,
			AvgSentiment: round3(a.sum / total),
			PositivePct:  round1(float64(a.positive) / total * 100),
			NegativePct:  round1(float64(a.negative) / total * 100),
		})
	}
	return segments
}

// SegmentByCategory summarizes sentiment per product category, sorted
// by average sentiment descending.
func (e *Engine) SegmentByCategory(scored []models.ScoredReview) []models.CategorySegment {
	type agg struct {
		sum      float64
		count    int
		positive int
	}
	byCategory := make(map[string]*agg)

	for _, r := range scored {
		if r.Category == "" {
			continue
		}
		a := byCategory[r.Category]
		if a == nil {
			a = &agg{}
			byCategory[r.Category] = a
		}
		a.sum += r.Compound
		a.count++
		if r.Label == models.LabelPositive {
			a.positive++
		}
	}

	segments := make([]models.CategorySegment, 0, len(byCategory))
	for category, a := range byCategory {
		total := float64(a.count)
		segments = append(segments, models.CategorySegment{
			Category:     category,
			Count:        a.count,
			AvgSentiment: round3(a.sum / total),
			PositivePct:  round1(float64(a.positive) / total * 100),
		})
	}

	sort.SliceStable(segments, func(i, j int) bool {
		if segments[i].AvgSentiment != segments[j].AvgSentiment {
			return segments[i].AvgSentiment > segments[j].AvgSentiment
		}
		return segments[i].Category < segments[j].Category
	})
	return segments
}

// RatingCorrelation is the Pearson correlation between rating and
// compound over reviews carrying both. Nil when fewer than two pairs
// exist or either side has no variance.
func (e *Engine) RatingCorrelation(scored []models.ScoredReview) *float64 {
	var ratings, compounds []float64
	for _, r := range scored {
		if r.Rating == nil {
			continue
		}
		ratings = append(ratings, *r.Rating)
		compounds = append(compounds, r.Compound)
	}
	if len(ratings) < 2 {
		return nil
	}

	corr := stat.Correlation(ratings, compounds, nil)
	if math.IsNaN(corr) {
		return nil
	}
	rounded := round3(corr)
	return &rounded
}
